package tags

import "github.com/yohamta/donburi"

var (
	Character   = donburi.NewTag().SetName("Character")
	Projectile  = donburi.NewTag().SetName("Projectile")
	Obstruction = donburi.NewTag().SetName("Obstruction")
	DigitPopup  = donburi.NewTag().SetName("DigitPopup")
	Dead        = donburi.NewTag().SetName("Dead")
)

// Resolv tags for collision checks
const (
	ResolvSolid      = "solid"
	ResolvProjectile = "Projectile"
)
