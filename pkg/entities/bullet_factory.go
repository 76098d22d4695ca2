package entities

import (
	"fmt"
	"math"

	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/types"
)

// NewBulletEntity 创建子弹实体
// 子弹从 (x, y) 出发，沿单位方向 (dirX, dirY) 以配置速度匀速飞行
//
// 参数:
//   - em: 实体管理器
//   - cfg: 竞技场配置
//   - x, y: 发射位置（世界坐标，通常是玩家位置）
//   - dirX, dirY: 飞行方向，必须是单位向量
//
// 返回:
//   - ecs.EntityID: 子弹实体ID，失败返回 0
//   - error: 参数无效时返回错误
func NewBulletEntity(em *ecs.EntityManager, cfg *config.ArenaConfig, x, y, dirX, dirY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("arena config cannot be nil")
	}
	if length := math.Hypot(dirX, dirY); math.Abs(length-1) > 1e-6 {
		return 0, fmt.Errorf("bullet direction must be a unit vector, got length %.6f", length)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.BulletComponent{
		DirX:        dirX,
		DirY:        dirY,
		Speed:       cfg.Bullet.Speed,
		MaxDistance: cfg.Bullet.MaxDistance,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: cfg.Bullet.Radius})
	ecs.AddComponent(em, id, &components.SpriteComponent{Glyph: cfg.Bullet.Glyph, Tag: types.TagBullet})
	ecs.AddComponent(em, id, &components.RoundScopedComponent{})

	return id, nil
}
