package systems

import (
	"log"

	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/entities"
	"github.com/decker502/arena/pkg/game"
)

// LifecycleSystem 驱动 Playing 与 GameOver 之间的状态切换
//
// Playing -> GameOver：存在待处理的 GameOver 请求时触发。
// 清理所有回合实体，显示游戏结束提示。
//
// GameOver -> Playing：本帧按住重启键时触发。
// 分数清零，移除提示，在原点生成新玩家。
type LifecycleSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	score         *game.ScoreTracker
	config        *config.ArenaConfig

	gameOverTextID ecs.EntityID
}

// NewLifecycleSystem 创建生命周期系统
func NewLifecycleSystem(em *ecs.EntityManager, gs *game.GameState, score *game.ScoreTracker, cfg *config.ArenaConfig) *LifecycleSystem {
	return &LifecycleSystem{
		entityManager: em,
		gameState:     gs,
		score:         score,
		config:        cfg,
	}
}

// Update 根据当前状态和本帧输入执行状态切换
func (s *LifecycleSystem) Update(input *game.FrameInput) {
	switch s.gameState.Phase() {
	case game.PhasePlaying:
		if s.gameState.GameOverPending() {
			s.enterGameOver()
		}
	case game.PhaseGameOver:
		// GameOver 状态下的重复请求直接丢弃
		s.gameState.ClearGameOverRequest()
		if input != nil && input.Restart {
			s.enterPlaying()
		}
	}
}

func (s *LifecycleSystem) enterGameOver() {
	if !s.gameState.EnterGameOver() {
		return
	}

	cleared := s.clearRound()

	id, err := entities.NewGameOverTextEntity(s.entityManager)
	if err != nil {
		log.Printf("[LifecycleSystem] Failed to create game over message: %v", err)
	} else {
		s.gameOverTextID = id
	}

	log.Printf("[LifecycleSystem] Game over, final score %d (best %d), cleared %d entities",
		s.score.Value(), s.score.Best(), cleared)
}

func (s *LifecycleSystem) enterPlaying() {
	if !s.gameState.EnterPlaying() {
		return
	}

	s.score.Reset()

	if s.gameOverTextID != 0 {
		s.entityManager.DestroyEntity(s.gameOverTextID)
		s.gameOverTextID = 0
	}

	if _, err := entities.NewPlayerEntity(s.entityManager, s.config, 0, 0); err != nil {
		log.Printf("[LifecycleSystem] Failed to create player: %v", err)
		return
	}
	log.Printf("[LifecycleSystem] Round %d started", s.gameState.RoundsPlayed())
}

// clearRound 标记删除所有回合实体，返回标记数量
func (s *LifecycleSystem) clearRound() int {
	ids := ecs.GetEntitiesWith1[*components.RoundScopedComponent](s.entityManager)
	for _, id := range ids {
		s.entityManager.DestroyEntity(id)
	}
	return len(ids)
}

// GameOverTextID 返回当前游戏结束提示实体ID，不存在时返回 0
func (s *LifecycleSystem) GameOverTextID() ecs.EntityID {
	return s.gameOverTextID
}
