package config

import (
	"fmt"
	"image/color"
)

// ProjectileConfig contains trajectory simulation tunables
type ProjectileConfig struct {
	DefaultSpeed       float64 `yaml:"defaultSpeed"`       // world units per second when the spawner gives none
	CollisionRadius    float64 `yaml:"collisionRadius"`    // distance at which a homing projectile counts as arrived
	ParabolaArcFactor  float64 `yaml:"parabolaArcFactor"`  // arc velocity per unit of horizontal distance
	TargetHeightOffset float64 `yaml:"targetHeightOffset"` // aim point above the target's feet
	ObstructionSize    float64 `yaml:"obstructionSize"`    // side of the resolv box used for obstruction checks
}

// PendingDamageConfig contains deferred damage release tunables
type PendingDamageConfig struct {
	FallbackTimeout float64 `yaml:"fallbackTimeout"` // seconds before an unmatched entry is released anyway
	ListCapacity    int     `yaml:"listCapacity"`    // growth hint for new lists
	WarnListLength  int     `yaml:"warnListLength"`  // log once a single list grows past this
}

// DamageDigitsConfig contains floating damage number tunables
type DamageDigitsConfig struct {
	GlyphScale         float64 `yaml:"glyphScale"`         // glyph size in world units at scale 1
	DefaultModelHeight float64 `yaml:"defaultModelHeight"` // used when a target has no ModelHeight
	MotionDuration     float64 `yaml:"motionDuration"`     // seconds a popup stays visible, 0 = single frame
	RiseHeight         float64 `yaml:"riseHeight"`         // world units a popup floats up over its motion
	PopScale           float64 `yaml:"popScale"`           // starting scale, eases down to 1
	BufferCapacity     int     `yaml:"bufferCapacity"`     // initial glyph capacity of the render buffer
}

// AttackAnimationConfig contains the timing of the stand-in attack swing
type AttackAnimationConfig struct {
	HitFrame float64 `yaml:"hitFrame"` // seconds from swing start to the hit keyframe
	Duration float64 `yaml:"duration"`
}

// DeathConfig contains killed character tunables
type DeathConfig struct {
	RemoveAfter float64 `yaml:"removeAfter"` // seconds a killed character stays before removal
}

// CameraConfig contains camera follow and shake tunables
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // fraction of the gap closed per frame
	ShakeIntensity  float64 `yaml:"shakeIntensity"`  // world units, when the player is hit
	ShakeDuration   float64 `yaml:"shakeDuration"`   // seconds
	CritShakeScale  float64 `yaml:"critShakeScale"`
}

// ZoneConfig contains collision space configuration
type ZoneConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
}

// RenderConfig contains sandbox renderer configuration
type RenderConfig struct {
	PixelsPerUnit  float64    `yaml:"pixelsPerUnit"`
	GlyphCellSize  int        `yaml:"glyphCellSize"` // atlas cell size in pixels
	ProjectileSize float64    `yaml:"projectileSize"`
	ProjectileTint color.RGBA `yaml:"-"`
	CharacterTint  color.RGBA `yaml:"-"`
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Projectile ProjectileConfig
var PendingDamage PendingDamageConfig
var DamageDigits DamageDigitsConfig
var AttackAnimation AttackAnimationConfig
var Zone ZoneConfig
var Camera CameraConfig
var Death DeathConfig
var Render RenderConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 100, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}
	Reset()
}

// Reset restores every tunable to its compiled-in default.
func Reset() {
	Projectile = ProjectileConfig{
		DefaultSpeed:       10.0,
		CollisionRadius:    0.1,
		ParabolaArcFactor:  0.5,
		TargetHeightOffset: 1.0,
		ObstructionSize:    0.2,
	}

	PendingDamage = PendingDamageConfig{
		FallbackTimeout: 5.0,
		ListCapacity:    32,
		WarnListLength:  256,
	}

	DamageDigits = DamageDigitsConfig{
		GlyphScale:         0.25,
		DefaultModelHeight: 1.8,
		MotionDuration:     1.0,
		RiseHeight:         0.75,
		PopScale:           1.6,
		BufferCapacity:     64,
	}

	AttackAnimation = AttackAnimationConfig{
		HitFrame: 0.35,
		Duration: 0.6,
	}

	Death = DeathConfig{
		RemoveAfter: 1.5,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		ShakeIntensity:  0.08,
		ShakeDuration:   0.25,
		CritShakeScale:  2,
	}

	Zone = ZoneConfig{
		Width:      512,
		Height:     512,
		CellWidth:  4,
		CellHeight: 4,
	}

	Render = RenderConfig{
		PixelsPerUnit:  24,
		GlyphCellSize:  32,
		ProjectileSize: 4,
		ProjectileTint: Orange,
		CharacterTint:  Blue,
	}
}

// Validate checks the tunables for values the simulation cannot work with.
func Validate() error {
	if Projectile.CollisionRadius < 0 {
		return fmt.Errorf("projectile collisionRadius must not be negative, got %v", Projectile.CollisionRadius)
	}
	if Projectile.DefaultSpeed <= 0 {
		return fmt.Errorf("projectile defaultSpeed must be positive, got %v", Projectile.DefaultSpeed)
	}
	if PendingDamage.FallbackTimeout <= 0 {
		return fmt.Errorf("pendingDamage fallbackTimeout must be positive, got %v", PendingDamage.FallbackTimeout)
	}
	if PendingDamage.ListCapacity < 0 {
		return fmt.Errorf("pendingDamage listCapacity must not be negative, got %d", PendingDamage.ListCapacity)
	}
	if DamageDigits.GlyphScale <= 0 {
		return fmt.Errorf("damageDigits glyphScale must be positive, got %v", DamageDigits.GlyphScale)
	}
	if DamageDigits.MotionDuration < 0 {
		return fmt.Errorf("damageDigits motionDuration must not be negative, got %v", DamageDigits.MotionDuration)
	}
	if AttackAnimation.HitFrame < 0 || AttackAnimation.Duration < AttackAnimation.HitFrame {
		return fmt.Errorf("attackAnimation hitFrame must be within [0, duration], got %v of %v", AttackAnimation.HitFrame, AttackAnimation.Duration)
	}
	if Death.RemoveAfter < 0 {
		return fmt.Errorf("death removeAfter must not be negative, got %v", Death.RemoveAfter)
	}
	if Zone.CellWidth <= 0 || Zone.CellHeight <= 0 {
		return fmt.Errorf("zone cell size must be positive, got %dx%d", Zone.CellWidth, Zone.CellHeight)
	}
	return nil
}
