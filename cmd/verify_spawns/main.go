// verify_spawns 无头验证敌人生成分布
//
// 在固定种子下连续触发生成计时器，统计生成距离、角度和敌人类型频率，
// 与配置表的权重比较。
//
// 用法:
//
//	go run ./cmd/verify_spawns [-n 10000] [-seed 1] [-config arena.yaml]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/decker502/arena/pkg/arena"
	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/game"
	"github.com/decker502/arena/pkg/types"
)

var (
	samples    = flag.Int("n", 10000, "生成次数")
	seed       = flag.Int64("seed", 1, "随机种子")
	configPath = flag.String("config", "", "外部调参文件路径")
	tolerance  = flag.Float64("tolerance", 0.03, "类型频率允许的绝对误差")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.ResolveArenaConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	world, err := arena.NewWorld(cfg, rand.New(rand.NewSource(*seed)), game.IdentityViewport{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create world: %v\n", err)
		os.Exit(1)
	}

	if !report(world, *samples, *tolerance) {
		os.Exit(1)
	}
}

// report 直接驱动生成系统，避免敌人移动和碰撞干扰统计
func report(world *arena.World, n int, tol float64) bool {
	em := world.EntityManager()
	spawner := world.Spawner()
	cfg := world.Config()

	counts := make(map[types.EnemyKind]int)
	minD, maxD := math.Inf(1), math.Inf(-1)
	minA, maxA := math.Inf(1), math.Inf(-1)
	var sectors [angleSectors]int

	for i := 0; i < n; i++ {
		spawner.Update(cfg.Spawn.Interval)
		id := spawner.LastSpawnID()
		if id == 0 {
			fmt.Println("FAIL: spawner produced no enemy")
			return false
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)

		d := math.Hypot(pos.X, pos.Y)
		a := angleOf(pos.X, pos.Y)
		minD, maxD = math.Min(minD, d), math.Max(maxD, d)
		minA, maxA = math.Min(minA, a), math.Max(maxA, a)
		counts[enemy.Kind]++
		sectors[sectorOf(a)]++

		em.DestroyEntity(id)
		em.RemoveMarkedEntities()
	}

	ok := true
	fmt.Printf("Samples:  %d\n", n)
	fmt.Printf("Distance: [%.3f, %.3f]  (want [%.0f, %.0f))\n", minD, maxD, cfg.Spawn.MinDistance, cfg.Spawn.MaxDistance)
	fmt.Printf("Angle:    [%.4f, %.4f]  (want [0, 2π))\n", minA, maxA)
	if minD < cfg.Spawn.MinDistance-1e-9 || maxD >= cfg.Spawn.MaxDistance {
		fmt.Println("FAIL: distance out of range")
		ok = false
	}
	if !anglesInRange(minA, maxA) {
		fmt.Println("FAIL: angle out of range")
		ok = false
	}
	for i, c := range sectors {
		got := float64(c) / float64(n)
		if math.Abs(got-1.0/angleSectors) > tol {
			fmt.Printf("FAIL: sector %d freq=%.4f want=%.4f\n", i, got, 1.0/angleSectors)
			ok = false
		}
	}

	total := cfg.TotalEnemyWeight()
	for _, kind := range types.AllEnemyKinds {
		stats, _ := cfg.GetEnemyStats(kind)
		want := float64(stats.Weight) / float64(total)
		got := float64(counts[kind]) / float64(n)
		status := "OK"
		if math.Abs(got-want) > tol {
			status = "FAIL"
			ok = false
		}
		fmt.Printf("%-6s %6d  freq=%.4f want=%.4f  %s\n", kind, counts[kind], got, want, status)
	}

	if ok {
		fmt.Println("PASS")
	}
	return ok
}

// angleSectors 角度均匀性统计的扇区数
const angleSectors = 8

// angleOf 返回点相对原点的极角，范围 [0, 2π]
// 只把 atan2 的负值平移到正区间，不做其他修正，越界由 anglesInRange 报告
func angleOf(x, y float64) float64 {
	a := math.Atan2(y, x)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// anglesInRange 角度范围是否落在 [0, 2π)
func anglesInRange(minA, maxA float64) bool {
	return minA >= 0 && maxA < 2*math.Pi
}

// sectorOf 返回角度所在扇区
func sectorOf(a float64) int {
	i := int(a / (2 * math.Pi) * angleSectors)
	if i < 0 {
		return 0
	}
	if i >= angleSectors {
		return angleSectors - 1
	}
	return i
}
