package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	dt := clockOf(ecs).Delta
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)

		if !alive(e) {
			enemy.State = cfg.EnemyDead
			return
		}

		switch enemy.Kind {
		case components.EnemyWalking:
			followEnemyProbes(enemy, obj)
			enemy.DetermineWalkDirection()
			if dx := enemy.WalkStep(dt); dx != 0 {
				obj.Translate(gamemath.V2(dx, 0))
				followEnemyProbes(enemy, obj)
			}
		case components.EnemyFlying:
			if e.HasComponent(components.Waypoint) {
				enemy.FollowPath(components.Waypoint.Get(e))
			}
		}

		if e.HasComponent(components.Head) {
			components.Head.Get(e).Follow(obj.X, obj.Y)
		}
	})
}

func followEnemyProbes(enemy *components.EnemyData, obj *components.ObjectData) {
	for _, probe := range enemy.Probes() {
		probe.Follow(obj.X, obj.Y)
	}
}
