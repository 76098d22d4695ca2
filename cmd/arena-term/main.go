// arena-term 终端版竞技场
//
// 用法:
//
//	go run ./cmd/arena-term [-config arena.yaml] [-seed N] [-verbose] [-follow] [-tps 30]
//
// 方向键/WASD 移动，鼠标左键射击，R 重启，Esc 或 Ctrl-C 退出。
// 终端被游戏占用，-verbose 日志写入 arena-term.log。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/arena/pkg/arena"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/termui"
	"github.com/gdamore/tcell/v2"
)

const logFile = "arena-term.log"

func main() {
	env := config.LoadEnv()

	defaultSeed := time.Now().UnixNano()
	if env.HasSeed {
		defaultSeed = env.Seed
	}

	configPath := flag.String("config", env.ConfigPath, "外部调参文件路径（为空使用内置默认值）")
	seed := flag.Int64("seed", defaultSeed, "随机种子")
	verbose := flag.Bool("verbose", env.Verbose, "把详细日志写入 "+logFile)
	follow := flag.Bool("follow", false, "摄像机跟随玩家")
	tps := flag.Int("tps", 30, "每秒模拟帧数")
	flag.Parse()

	if err := run(*configPath, *seed, *verbose, *follow, *tps); err != nil {
		fmt.Fprintf(os.Stderr, "arena-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, verbose, follow bool, tps int) error {
	if verbose {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if tps <= 0 {
		return fmt.Errorf("tps must be positive, got %d", tps)
	}

	cfg, err := config.ResolveArenaConfig(configPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	camera := termui.NewTerminalCamera(cols, rows)
	world, err := arena.NewWorld(cfg, rand.New(rand.NewSource(seed)), camera)
	if err != nil {
		return err
	}
	log.Printf("[Main] Terminal arena started (seed=%d, %dx%d)", seed, cols, rows)

	term := termui.NewTerminal(screen, world, camera, follow)
	return term.Run(context.Background(), time.Second/time.Duration(tps))
}
