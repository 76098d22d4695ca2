// Package arena 组装竞技场模拟：实体存储、状态、分数和按固定顺序执行的系统。
//
// World 是唯一的模拟上下文，渲染前端只通过 Update 输入帧数据、通过 Snapshot 读取结果。
package arena

import (
	"fmt"
	"log"

	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/entities"
	"github.com/decker502/arena/pkg/game"
	"github.com/decker502/arena/pkg/systems"
)

// phase 调度表中的一个阶段
type phase struct {
	name string
	run  func(dt float64, input *game.FrameInput)
}

// World 竞技场模拟上下文
type World struct {
	config        *config.ArenaConfig
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	score         *game.ScoreTracker

	playerMovement *systems.PlayerMovementSystem
	shooting       *systems.ShootingSystem
	spawner        *systems.EnemySpawnSystem
	bulletMovement *systems.BulletMovementSystem
	enemyMovement  *systems.EnemyMovementSystem
	collision      *systems.CollisionSystem
	lifecycle      *systems.LifecycleSystem
	scoreDisplay   *systems.ScoreDisplaySystem
	flashEffect    *systems.FlashEffectSystem

	phases []phase

	scoreTextID ecs.EntityID
	frame       uint64
}

// NewWorld 创建竞技场世界
//
// 参数:
//   - cfg: 已校验的竞技场配置
//   - rng: 随机数源（*rand.Rand 满足接口）
//   - viewport: 屏幕到世界坐标转换，nil 时使用 IdentityViewport
//
// 创建时会生成 HUD 分数文本和位于原点的初始玩家。
func NewWorld(cfg *config.ArenaConfig, rng game.RandomSource, viewport game.Viewport) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("arena config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	score := game.NewScoreTracker()

	scoreTextID, err := entities.NewScoreTextEntity(em, score.Value())
	if err != nil {
		return nil, fmt.Errorf("failed to create score text: %w", err)
	}
	if _, err := entities.NewPlayerEntity(em, cfg, 0, 0); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	w := &World{
		config:        cfg,
		entityManager: em,
		gameState:     gs,
		score:         score,

		playerMovement: systems.NewPlayerMovementSystem(em, gs),
		shooting:       systems.NewShootingSystem(em, gs, cfg, viewport),
		spawner:        systems.NewEnemySpawnSystem(em, gs, cfg, rng),
		bulletMovement: systems.NewBulletMovementSystem(em),
		enemyMovement:  systems.NewEnemyMovementSystem(em),
		collision:      systems.NewCollisionSystem(em, gs, score),
		lifecycle:      systems.NewLifecycleSystem(em, gs, score, cfg),
		scoreDisplay:   systems.NewScoreDisplaySystem(em, score, scoreTextID),
		flashEffect:    systems.NewFlashEffectSystem(em),

		scoreTextID: scoreTextID,
	}

	w.phases = []phase{
		{"player-movement", func(dt float64, in *game.FrameInput) { w.playerMovement.Update(dt, in) }},
		{"shooting", func(_ float64, in *game.FrameInput) { w.shooting.Update(in) }},
		{"enemy-spawn", func(dt float64, _ *game.FrameInput) { w.spawner.Update(dt) }},
		{"bullet-movement", func(dt float64, _ *game.FrameInput) { w.bulletMovement.Update(dt) }},
		{"enemy-movement", func(dt float64, _ *game.FrameInput) { w.enemyMovement.Update(dt) }},
		{"collision", func(_ float64, _ *game.FrameInput) { w.collision.Update() }},
		{"lifecycle", func(_ float64, in *game.FrameInput) { w.lifecycle.Update(in) }},
		{"score-display", func(_ float64, _ *game.FrameInput) { w.scoreDisplay.Update() }},
		{"hit-flash", func(dt float64, _ *game.FrameInput) { w.flashEffect.Update(dt) }},
	}

	log.Printf("[World] Arena initialized with %d phases", len(w.phases))
	return w, nil
}

// Update 推进一帧模拟
// input 为 nil 时视为空输入；负的 dt 按 0 处理。
func (w *World) Update(dt float64, input *game.FrameInput) {
	if dt < 0 {
		dt = 0
	}
	if input == nil {
		input = &game.FrameInput{}
	}

	for _, p := range w.phases {
		p.run(dt, input)
	}

	// 帧末统一清理本帧标记删除的实体
	w.entityManager.RemoveMarkedEntities()
	w.frame++
}

// PhaseNames 返回调度顺序中的阶段名称
func (w *World) PhaseNames() []string {
	names := make([]string, len(w.phases))
	for i, p := range w.phases {
		names[i] = p.name
	}
	return names
}

// EntityManager 返回实体管理器
func (w *World) EntityManager() *ecs.EntityManager {
	return w.entityManager
}

// GameState 返回游戏状态
func (w *World) GameState() *game.GameState {
	return w.gameState
}

// Score 返回分数记录器
func (w *World) Score() *game.ScoreTracker {
	return w.score
}

// Config 返回竞技场配置
func (w *World) Config() *config.ArenaConfig {
	return w.config
}

// Frame 返回已执行的帧数
func (w *World) Frame() uint64 {
	return w.frame
}

// Spawner 返回敌人生成系统（调试与统计工具使用）
func (w *World) Spawner() *systems.EnemySpawnSystem {
	return w.spawner
}
