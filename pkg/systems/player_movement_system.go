package systems

import (
	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/game"
	"github.com/decker502/arena/pkg/utils"
)

// PlayerMovementSystem 根据方向键意图移动玩家
//
// 世界坐标 y 轴向上：Up 对应 +y。对角移动先归一化，保证各方向速度一致。
// 仅在 Playing 状态下生效。
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, gs *game.GameState) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 按本帧输入移动玩家
func (s *PlayerMovementSystem) Update(deltaTime float64, input *game.FrameInput) {
	if input == nil || !s.gameState.IsPlaying() || !input.HasMovement() {
		return
	}

	id, pos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok {
		return
	}

	intent := utils.Zero
	if input.Up {
		intent.Y++
	}
	if input.Down {
		intent.Y--
	}
	if input.Left {
		intent.X--
	}
	if input.Right {
		intent.X++
	}

	// 相反方向同时按下时意图为零，不移动
	dir, ok := intent.Normalize()
	if !ok {
		return
	}

	step := dir.Scale(player.Speed * deltaTime)
	pos.X += step.X
	pos.Y += step.Y
}
