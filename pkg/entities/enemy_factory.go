package entities

import (
	"fmt"

	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/types"
)

// NewEnemyEntity 创建敌人实体
// 速度、生命值、击杀奖励、半径和字形都取自配置表中对应类型的条目
//
// 参数:
//   - em: 实体管理器
//   - cfg: 竞技场配置
//   - kind: 敌人类型
//   - x, y: 生成位置（世界坐标）
//
// 返回:
//   - ecs.EntityID: 敌人实体ID，失败返回 0
//   - error: 参数无效或类型未配置时返回错误
func NewEnemyEntity(em *ecs.EntityManager, cfg *config.ArenaConfig, kind types.EnemyKind, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("arena config cannot be nil")
	}

	stats, ok := cfg.GetEnemyStats(kind)
	if !ok {
		return 0, fmt.Errorf("enemy kind %s is not configured", kind)
	}
	if stats.Health < 1 {
		return 0, fmt.Errorf("enemy kind %s has non-positive health %d", kind, stats.Health)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Kind:   kind,
		Speed:  stats.Speed,
		Reward: stats.Reward,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: stats.Radius})
	ecs.AddComponent(em, id, &components.SpriteComponent{Glyph: stats.Glyph, Tag: types.TagEnemy})
	ecs.AddComponent(em, id, &components.RoundScopedComponent{})

	return id, nil
}
