package systems

import (
	"math"

	"github.com/automoto/hitsync/components"
	cfg "github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the camera toward the local player's character and
// shakes it when that character takes a hit this frame.
func UpdateCamera(w donburi.World, f *Frame) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	id, ok := f.Directory.Player()
	if !ok {
		updateScreenShake(cameraEntry, camera, f.Delta)
		return
	}
	for _, r := range f.Released.Items() {
		if r.TargetID != id || r.Damage.IsMiss() {
			continue
		}
		intensity := cfg.Camera.ShakeIntensity
		if r.Damage.IsCritical {
			intensity *= cfg.Camera.CritShakeScale
		}
		TriggerScreenShake(cameraEntry, intensity, cfg.Camera.ShakeDuration)
	}
	updateScreenShake(cameraEntry, camera, f.Delta)

	player, ok := f.Directory.Resolve(w, id)
	if !ok {
		return // dead or despawned, hold position
	}
	pos := components.Transform.Get(player).Position

	targetX := gamemath.Clamp(pos.X, 0, camera.Bounds.X)
	targetY := gamemath.Clamp(pos.Z, 0, camera.Bounds.Y)
	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// updateScreenShake sets the camera offset from a decaying shake and removes
// the shake once it has run out.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dt float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		camera.Offset.X, camera.Offset.Y = 0, 0
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt

	progress := 0.0
	if shake.Duration > 0 {
		progress = math.Max(0, (shake.Duration-shake.Elapsed)/shake.Duration)
	}
	current := shake.Intensity * progress

	// oscillate on both axes at slightly different rates
	phase := shake.Elapsed * 60
	camera.Offset.X = math.Sin(phase*1.1) * current
	camera.Offset.Y = math.Cos(phase*1.3) * current

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
		camera.Offset.X, camera.Offset.Y = 0, 0
	}
}

// TriggerScreenShake starts a shake, or restarts the running one if the new
// shake is stronger.
func TriggerScreenShake(cameraEntry *donburi.Entry, intensity, duration float64) {
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
