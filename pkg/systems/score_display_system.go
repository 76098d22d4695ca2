package systems

import (
	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/entities"
	"github.com/decker502/arena/pkg/game"
)

// ScoreDisplaySystem 分数变化时刷新 HUD 文本
type ScoreDisplaySystem struct {
	entityManager *ecs.EntityManager
	score         *game.ScoreTracker
	textID        ecs.EntityID
}

// NewScoreDisplaySystem 创建分数显示系统
// textID 是 HUD 分数文本实体
func NewScoreDisplaySystem(em *ecs.EntityManager, score *game.ScoreTracker, textID ecs.EntityID) *ScoreDisplaySystem {
	return &ScoreDisplaySystem{
		entityManager: em,
		score:         score,
		textID:        textID,
	}
}

// Update 仅在分数变化时重写文本
func (s *ScoreDisplaySystem) Update() {
	value, changed := s.score.TakeChanged()
	if !changed {
		return
	}
	if text, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, s.textID); ok {
		text.Text = entities.FormatScore(value)
	}
}
