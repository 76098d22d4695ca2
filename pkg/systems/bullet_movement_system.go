package systems

import (
	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/ecs"
)

// BulletMovementSystem 子弹匀速直线运动
// 移动后距世界原点超过 MaxDistance 的子弹在同一帧被标记删除。
// 不受游戏状态限制，GameOver 期间也会运行。
type BulletMovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewBulletMovementSystem 创建子弹移动系统
func NewBulletMovementSystem(em *ecs.EntityManager) *BulletMovementSystem {
	return &BulletMovementSystem{
		entityManager: em,
	}
}

// Update 移动所有子弹并剔除越界子弹
func (s *BulletMovementSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](s.entityManager)

	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.X += bullet.DirX * bullet.Speed * deltaTime
		pos.Y += bullet.DirY * bullet.Speed * deltaTime

		if positionVec(pos).Length() > bullet.MaxDistance {
			s.entityManager.DestroyEntity(id)
		}
	}
}
