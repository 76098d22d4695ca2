package game

import "log"

// Phase 游戏生命周期阶段
type Phase int

const (
	// PhasePlaying 游戏进行中（初始阶段）
	PhasePlaying Phase = iota
	// PhaseGameOver 游戏结束，等待玩家按键重开
	PhaseGameOver
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState 存储一局竞技场的全局状态
// 由 arena.World 持有并显式传给各系统，不是进程级单例
type GameState struct {
	phase            Phase
	gameOverPending  bool // 碰撞系统请求进入 GameOver，由生命周期系统处理
	roundsPlayed     int  // 已开始的回合数（包括当前回合）
	transitionsCount int  // 阶段切换次数
}

// NewGameState 创建处于 Playing 阶段的游戏状态
func NewGameState() *GameState {
	return &GameState{
		phase:        PhasePlaying,
		roundsPlayed: 1,
	}
}

// Phase 返回当前阶段
func (gs *GameState) Phase() Phase {
	return gs.phase
}

// IsPlaying 当前是否处于 Playing 阶段
func (gs *GameState) IsPlaying() bool {
	return gs.phase == PhasePlaying
}

// RequestGameOver 请求切换到 GameOver
// 幂等：同一帧内多次请求与一次请求效果相同
func (gs *GameState) RequestGameOver() {
	gs.gameOverPending = true
}

// GameOverPending 是否有待处理的 GameOver 请求
func (gs *GameState) GameOverPending() bool {
	return gs.gameOverPending
}

// ClearGameOverRequest 清除待处理的 GameOver 请求
func (gs *GameState) ClearGameOverRequest() {
	gs.gameOverPending = false
}

// EnterGameOver 切换到 GameOver 阶段
// 只允许从 Playing 切换，返回是否真正发生了切换
func (gs *GameState) EnterGameOver() bool {
	gs.gameOverPending = false
	if gs.phase != PhasePlaying {
		return false
	}
	gs.phase = PhaseGameOver
	gs.transitionsCount++
	log.Printf("[GameState] Playing -> GameOver")
	return true
}

// EnterPlaying 从 GameOver 切换回 Playing（重开）
// 返回是否真正发生了切换
func (gs *GameState) EnterPlaying() bool {
	if gs.phase != PhaseGameOver {
		return false
	}
	gs.phase = PhasePlaying
	gs.gameOverPending = false
	gs.roundsPlayed++
	gs.transitionsCount++
	log.Printf("[GameState] GameOver -> Playing (round %d)", gs.roundsPlayed)
	return true
}

// RoundsPlayed 返回已开始的回合数
func (gs *GameState) RoundsPlayed() int {
	return gs.roundsPlayed
}

// Transitions 返回阶段切换次数
func (gs *GameState) Transitions() int {
	return gs.transitionsCount
}
