package systems

import (
	"math"
	"testing"

	"github.com/decker502/arena/pkg/game"
	"github.com/decker502/arena/pkg/types"
)

// TestPlayerMovement 测试方向键驱动的玩家移动
func TestPlayerMovement(t *testing.T) {
	diag := 300 * 0.1 / math.Sqrt2

	tests := []struct {
		name  string
		input game.FrameInput
		wantX float64
		wantY float64
	}{
		{"无输入不移动", game.FrameInput{}, 0, 0},
		{"向上移动（y 轴向上）", game.FrameInput{Up: true}, 0, 30},
		{"向下移动", game.FrameInput{Down: true}, 0, -30},
		{"向左移动", game.FrameInput{Left: true}, -30, 0},
		{"向右移动", game.FrameInput{Right: true}, 30, 0},
		{"对角线移动归一化", game.FrameInput{Up: true, Right: true}, diag, diag},
		{"相反方向抵消", game.FrameInput{Left: true, Right: true}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			id := w.spawnPlayer(t, 0, 0)
			sys := NewPlayerMovementSystem(w.em, w.state)

			input := tt.input
			sys.Update(0.1, &input)

			pos := w.position(t, id)
			if !approxEqual(pos.X, tt.wantX) || !approxEqual(pos.Y, tt.wantY) {
				t.Errorf("position = (%.6f, %.6f), want (%.6f, %.6f)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlayerMovementSuppressedInGameOver(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer(t, 0, 0)
	w.state.RequestGameOver()
	w.state.EnterGameOver()

	NewPlayerMovementSystem(w.em, w.state).Update(1, &game.FrameInput{Right: true})

	if pos := w.position(t, id); pos.X != 0 || pos.Y != 0 {
		t.Errorf("player moved during GameOver: (%.1f, %.1f)", pos.X, pos.Y)
	}
}

func TestPlayerMovementWithoutPlayer(t *testing.T) {
	w := newTestWorld()
	// 不应 panic
	NewPlayerMovementSystem(w.em, w.state).Update(1, &game.FrameInput{Up: true})
	NewPlayerMovementSystem(w.em, w.state).Update(1, nil)
}

// TestBulletMovement 测试子弹匀速运动与越界剔除
func TestBulletMovement(t *testing.T) {
	w := newTestWorld()
	sys := NewBulletMovementSystem(w.em)

	moving := w.spawnBullet(t, 0, 0, 1, 0)
	edge := w.spawnBullet(t, 4990, 0, 1, 0)
	inward := w.spawnBullet(t, 0, 4999, 0, -1)

	sys.Update(0.5)

	if pos := w.position(t, moving); !approxEqual(pos.X, 300) || pos.Y != 0 {
		t.Errorf("bullet position = (%.3f, %.3f), want (300, 0)", pos.X, pos.Y)
	}
	if !w.em.IsMarkedForDestroy(edge) {
		t.Error("bullet beyond 5000 units should be destroyed")
	}
	if w.em.IsMarkedForDestroy(inward) {
		t.Error("bullet moving toward origin should survive")
	}
	if w.em.IsMarkedForDestroy(moving) {
		t.Error("bullet inside range should survive")
	}
}

func TestBulletMovementExactlyAtLimitSurvives(t *testing.T) {
	w := newTestWorld()
	id := w.spawnBullet(t, 4700, 0, 1, 0)

	NewBulletMovementSystem(w.em).Update(0.5)

	if w.em.IsMarkedForDestroy(id) {
		t.Error("bullet exactly at 5000 should not be destroyed")
	}
}

// TestEnemyMovement 测试各类型敌人的追踪速度
func TestEnemyMovement(t *testing.T) {
	tests := []struct {
		name  string
		kind  types.EnemyKind
		speed float64
	}{
		{"普通敌人", types.EnemyBasic, 150},
		{"快速敌人", types.EnemyFast, 300},
		{"坦克敌人", types.EnemyTank, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			w.spawnPlayer(t, 0, 0)
			id := w.spawnEnemy(t, tt.kind, 0, 400)

			NewEnemyMovementSystem(w.em).Update(1)

			pos := w.position(t, id)
			if !approxEqual(pos.X, 0) || !approxEqual(pos.Y, 400-tt.speed) {
				t.Errorf("enemy position = (%.3f, %.3f), want (0, %.3f)", pos.X, pos.Y, 400-tt.speed)
			}
		})
	}
}

func TestEnemyMovementWithoutPlayer(t *testing.T) {
	w := newTestWorld()
	id := w.spawnEnemy(t, types.EnemyFast, 100, 100)

	NewEnemyMovementSystem(w.em).Update(1)

	if pos := w.position(t, id); pos.X != 100 || pos.Y != 100 {
		t.Errorf("enemy moved without player: (%.1f, %.1f)", pos.X, pos.Y)
	}
}

func TestEnemyMovementOnPlayerPosition(t *testing.T) {
	w := newTestWorld()
	w.spawnPlayer(t, 5, 5)
	id := w.spawnEnemy(t, types.EnemyBasic, 5, 5)

	NewEnemyMovementSystem(w.em).Update(1)

	pos := w.position(t, id)
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || pos.X != 5 || pos.Y != 5 {
		t.Errorf("enemy on player should stay put, got (%.3f, %.3f)", pos.X, pos.Y)
	}
}
