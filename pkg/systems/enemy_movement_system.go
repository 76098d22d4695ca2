package systems

import (
	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/ecs"
)

// EnemyMovementSystem 敌人朝玩家直线追踪
// 没有玩家时不做任何事
type EnemyMovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewEnemyMovementSystem 创建敌人移动系统
func NewEnemyMovementSystem(em *ecs.EntityManager) *EnemyMovementSystem {
	return &EnemyMovementSystem{
		entityManager: em,
	}
}

// Update 把每个敌人朝玩家移动 speed*dt
func (s *EnemyMovementSystem) Update(deltaTime float64) {
	_, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	target := positionVec(playerPos)

	ids := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		// 与玩家重合时方向为零，原地不动
		dir, ok := target.Sub(positionVec(pos)).Normalize()
		if !ok {
			continue
		}
		pos.X += dir.X * enemy.Speed * deltaTime
		pos.Y += dir.Y * enemy.Speed * deltaTime
	}
}
