package entities

import (
	"fmt"

	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
)

// GameOverMessage 游戏结束提示文本
const GameOverMessage = "GAME OVER\nPress R to Restart"

// FormatScore 生成 HUD 分数文本
func FormatScore(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// NewScoreTextEntity 创建左上角的 HUD 分数文本实体
// 文本实体不带 RoundScopedComponent，回合清理不会移除它
func NewScoreTextEntity(em *ecs.EntityManager, score int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TextComponent{
		Text:     FormatScore(score),
		Anchor:   components.AnchorTopLeft,
		Role:     components.TextRoleScore,
		FontSize: config.HUDFontSize,
	})
	return id, nil
}

// NewGameOverTextEntity 创建屏幕中央的游戏结束提示实体
func NewGameOverTextEntity(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TextComponent{
		Text:     GameOverMessage,
		Anchor:   components.AnchorCenter,
		Role:     components.TextRoleGameOver,
		FontSize: config.GameOverFontSize,
	})
	return id, nil
}
