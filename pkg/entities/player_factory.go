package entities

import (
	"fmt"
	"log"

	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/types"
)

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 竞技场配置（速度、半径、字形）
//   - x, y: 出生点世界坐标
//
// 返回:
//   - ecs.EntityID: 玩家实体ID，失败返回 0
//   - error: 参数无效时返回错误
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.ArenaConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("arena config cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.PlayerComponent{Speed: cfg.Player.Speed})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: cfg.Player.Radius})
	ecs.AddComponent(em, id, &components.SpriteComponent{Glyph: cfg.Player.Glyph, Tag: types.TagPlayer})
	ecs.AddComponent(em, id, &components.RoundScopedComponent{})

	log.Printf("[PlayerFactory] Created player %d at (%.1f, %.1f)", id, x, y)
	return id, nil
}
