package systems

import (
	"testing"

	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/entities"
	"github.com/decker502/arena/pkg/game"
	"github.com/decker502/arena/pkg/types"
)

// scriptedRandom 按顺序返回预设值的随机源
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

// testWorld 测试用的最小上下文
type testWorld struct {
	em    *ecs.EntityManager
	state *game.GameState
	score *game.ScoreTracker
	cfg   *config.ArenaConfig
}

func newTestWorld() *testWorld {
	return &testWorld{
		em:    ecs.NewEntityManager(),
		state: game.NewGameState(),
		score: game.NewScoreTracker(),
		cfg:   config.DefaultArenaConfig(),
	}
}

func (w *testWorld) spawnPlayer(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayerEntity(w.em, w.cfg, x, y)
	if err != nil {
		t.Fatalf("NewPlayerEntity() error = %v", err)
	}
	return id
}

func (w *testWorld) spawnEnemy(t *testing.T, kind types.EnemyKind, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyEntity(w.em, w.cfg, kind, x, y)
	if err != nil {
		t.Fatalf("NewEnemyEntity() error = %v", err)
	}
	return id
}

func (w *testWorld) spawnBullet(t *testing.T, x, y, dirX, dirY float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewBulletEntity(w.em, w.cfg, x, y, dirX, dirY)
	if err != nil {
		t.Fatalf("NewBulletEntity() error = %v", err)
	}
	return id
}

func (w *testWorld) position(t *testing.T, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if !ok {
		t.Fatalf("entity %d has no position", id)
	}
	return pos
}

func countWith[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	d := a - b
	return d < epsilon && d > -epsilon
}

func withWeight(stats config.EnemyStats, weight int) config.EnemyStats {
	stats.Weight = weight
	return stats
}
