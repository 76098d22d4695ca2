package systems

import (
	"log"

	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/entities"
	"github.com/decker502/arena/pkg/game"
	"github.com/decker502/arena/pkg/utils"
)

// ShootingSystem 处理鼠标左键/触摸射击
//
// 每个左键按下事件生成一颗子弹，从玩家位置朝点击点的世界坐标飞行。
// 屏幕到世界的坐标转换由 Viewport 提供。
type ShootingSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.ArenaConfig
	viewport      game.Viewport

	bulletsFired int
}

// NewShootingSystem 创建射击系统
// viewport 为 nil 时使用 IdentityViewport
func NewShootingSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.ArenaConfig, viewport game.Viewport) *ShootingSystem {
	if viewport == nil {
		viewport = game.IdentityViewport{}
	}
	return &ShootingSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		viewport:      viewport,
	}
}

// Update 处理本帧的指针按下队列
func (s *ShootingSystem) Update(input *game.FrameInput) {
	if input == nil || len(input.Presses) == 0 || !s.gameState.IsPlaying() {
		return
	}

	_, pos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	origin := positionVec(pos)

	for _, press := range input.Presses {
		if press.Button != game.PointerLeft {
			continue
		}

		wx, wy, ok := s.viewport.ScreenToWorld(press.X, press.Y)
		if !ok {
			continue
		}

		// 点击点与玩家重合时没有方向，跳过
		dir, ok := utils.NewVec2(wx, wy).Sub(origin).Normalize()
		if !ok {
			continue
		}

		if _, err := entities.NewBulletEntity(s.entityManager, s.config, origin.X, origin.Y, dir.X, dir.Y); err != nil {
			log.Printf("[ShootingSystem] Failed to create bullet: %v", err)
			continue
		}
		s.bulletsFired++
	}
}

// BulletsFired 返回累计发射的子弹数
func (s *ShootingSystem) BulletsFired() int {
	return s.bulletsFired
}
