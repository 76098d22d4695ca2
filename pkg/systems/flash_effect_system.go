package systems

import (
	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/ecs"
)

// FlashEffectSystem 管理受击闪白效果的生命周期
// 纯表现层效果，不影响碰撞和计分
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪烁效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{
		entityManager: em,
	}
}

// Update 推进所有闪烁效果，到期后移除组件
func (s *FlashEffectSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager) {
		flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id)
		if !ok {
			continue
		}

		flash.Elapsed += dt
		if flash.Elapsed >= flash.Duration {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, id)
		}
	}
}
