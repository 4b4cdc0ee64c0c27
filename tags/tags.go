package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Solid          = donburi.NewTag().SetName("Solid")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Enemy          = donburi.NewTag().SetName("Enemy")
	Hazard         = donburi.NewTag().SetName("Hazard")
	Pickup         = donburi.NewTag().SetName("Pickup")
	Door           = donburi.NewTag().SetName("Door")
	Checkpoint     = donburi.NewTag().SetName("Checkpoint")
	Effect         = donburi.NewTag().SetName("Effect")
	Laser          = donburi.NewTag().SetName("Laser")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlatform   = "platform" // one-way, blocks only from above
	ResolvCharacter  = "character"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvFeet       = "feet"
	ResolvHead       = "head"
	ResolvProbe      = "probe"
	ResolvHazard     = "hazard"
	ResolvPickup     = "pickup"
	ResolvDoor       = "door"
	ResolvCheckpoint = "checkpoint"
	ResolvDeadZone   = "deadzone"
	ResolvLaser      = "laser"
)

// GroundTags are the tags a feet probe treats as ground by default.
var GroundTags = []string{ResolvSolid, ResolvPlatform}
