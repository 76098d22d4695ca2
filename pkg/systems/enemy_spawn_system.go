package systems

import (
	"log"
	"math"

	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/entities"
	"github.com/decker502/arena/pkg/game"
	"github.com/decker502/arena/pkg/types"
	"github.com/decker502/arena/pkg/utils"
)

// EnemySpawnSystem 周期性地在玩家周围的环形区域生成敌人
//
// 计时器每帧都推进（与游戏状态无关）。累计时间达到周期时按周期取模保留余数，
// 每帧最多尝试一次生成；只有在 Playing 状态且玩家存在时才真正生成，否则本次计时被消耗。
//
// 生成位置 = 玩家位置 + (cos θ, sin θ)·r，θ ∈ [0, 2π)，r ∈ [MinDistance, MaxDistance)。
// 敌人类型按配置权重随机选择。
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.ArenaConfig
	rng           game.RandomSource

	elapsed     float64
	spawnCount  int
	lastSpawnID ecs.EntityID
}

// NewEnemySpawnSystem 创建敌人生成系统
func NewEnemySpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.ArenaConfig, rng game.RandomSource) *EnemySpawnSystem {
	return &EnemySpawnSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		rng:           rng,
	}
}

// Update 推进计时器，到期时尝试生成一个敌人
func (s *EnemySpawnSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.elapsed < s.config.Spawn.Interval {
		return
	}
	// 一帧跨越多个周期时只计一次，余数按周期取模，不积压到后续帧
	s.elapsed = math.Mod(s.elapsed, s.config.Spawn.Interval)

	if !s.gameState.IsPlaying() {
		return
	}
	_, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}

	theta, distance := s.samplePolar()
	kind := s.chooseKind()
	spawn := positionVec(playerPos).Add(utils.FromAngle(theta, distance))

	id, err := entities.NewEnemyEntity(s.entityManager, s.config, kind, spawn.X, spawn.Y)
	if err != nil {
		log.Printf("[EnemySpawnSystem] Failed to spawn %s enemy: %v", kind, err)
		return
	}
	s.spawnCount++
	s.lastSpawnID = id
}

// samplePolar 采样生成角度和距离
func (s *EnemySpawnSystem) samplePolar() (theta, distance float64) {
	theta = s.rng.Float64() * 2 * math.Pi
	if theta >= 2*math.Pi {
		theta = 0
	}

	minD, maxD := s.config.Spawn.MinDistance, s.config.Spawn.MaxDistance
	distance = minD + s.rng.Float64()*(maxD-minD)
	// 浮点舍入可能得到上界，上界不含
	if distance >= maxD {
		distance = math.Nextafter(maxD, minD)
	}
	return theta, distance
}

// chooseKind 按权重选择敌人类型
func (s *EnemySpawnSystem) chooseKind() types.EnemyKind {
	total := s.config.TotalEnemyWeight()
	if total <= 0 {
		return types.EnemyBasic
	}

	pick := s.rng.Intn(total)
	for _, kind := range types.AllEnemyKinds {
		stats, _ := s.config.GetEnemyStats(kind)
		if pick < stats.Weight {
			return kind
		}
		pick -= stats.Weight
	}
	return types.AllEnemyKinds[len(types.AllEnemyKinds)-1]
}

// Reset 清零计时器
func (s *EnemySpawnSystem) Reset() {
	s.elapsed = 0
}

// Elapsed 返回计时器当前累计时间
func (s *EnemySpawnSystem) Elapsed() float64 {
	return s.elapsed
}

// SpawnCount 返回累计生成的敌人数
func (s *EnemySpawnSystem) SpawnCount() int {
	return s.spawnCount
}

// LastSpawnID 返回最近一次生成的敌人ID，从未生成时返回 0
func (s *EnemySpawnSystem) LastSpawnID() ecs.EntityID {
	return s.lastSpawnID
}
