package systems

import (
	"log"

	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/game"
)

// CollisionSystem 圆形碰撞检测
//
// 子弹与敌人：按实体ID升序扫描，每颗子弹只命中第一个存活且重叠的敌人，
// 命中后子弹销毁、敌人生命值减 1，生命值归零时敌人销毁并计分。
// 同一次扫描中已被击杀的敌人不会再被命中或计分。
//
// 敌人与玩家：任何存活敌人与玩家重叠时请求 GameOver。
//
// 重叠判定为中心距离严格小于半径之和。不受游戏状态限制。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	score         *game.ScoreTracker
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, score *game.ScoreTracker) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		gameState:     gs,
		score:         score,
	}
}

// Update 执行一次完整的碰撞扫描
func (s *CollisionSystem) Update() {
	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent, *components.PositionComponent](s.entityManager)

	s.resolveBulletHits(enemies)
	s.checkPlayerContact(enemies)
}

// resolveBulletHits 处理子弹命中敌人
func (s *CollisionSystem) resolveBulletHits(enemies []ecs.EntityID) {
	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](s.entityManager)

	for _, bulletID := range bullets {
		if s.entityManager.IsMarkedForDestroy(bulletID) {
			continue
		}
		bulletPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bulletID)
		bulletRadius := radiusOf(s.entityManager, bulletID)

		for _, enemyID := range enemies {
			if s.entityManager.IsMarkedForDestroy(enemyID) {
				continue
			}
			enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
			if positionVec(bulletPos).Distance(positionVec(enemyPos)) >= bulletRadius+radiusOf(s.entityManager, enemyID) {
				continue
			}

			s.entityManager.DestroyEntity(bulletID)

			health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemyID)
			health.CurrentHealth--
			if health.CurrentHealth <= 0 {
				enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, enemyID)
				s.entityManager.DestroyEntity(enemyID)
				s.score.Add(enemy.Reward)
				log.Printf("[CollisionSystem] Enemy %d (%s) killed, +%d (score %d)", enemyID, enemy.Kind, enemy.Reward, s.score.Value())
			} else {
				ecs.AddComponent(s.entityManager, enemyID, &components.FlashEffectComponent{
					Duration:  config.HitFlashDuration,
					Intensity: 1,
				})
			}
			break
		}
	}
}

// checkPlayerContact 检测敌人是否碰到玩家
func (s *CollisionSystem) checkPlayerContact(enemies []ecs.EntityID) {
	playerID, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	playerRadius := radiusOf(s.entityManager, playerID)

	for _, enemyID := range enemies {
		// 本次扫描中已被子弹击杀的敌人不再算作接触
		if s.entityManager.IsMarkedForDestroy(enemyID) {
			continue
		}
		enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
		if positionVec(playerPos).Distance(positionVec(enemyPos)) < playerRadius+radiusOf(s.entityManager, enemyID) {
			s.gameState.RequestGameOver()
			return
		}
	}
}
