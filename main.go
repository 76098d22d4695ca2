package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/decker502/arena/pkg/app"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	env := config.LoadEnv()

	defaultSeed := time.Now().UnixNano()
	if env.HasSeed {
		defaultSeed = env.Seed
	}

	configPath := flag.String("config", env.ConfigPath, "外部调参文件路径（为空使用内置 data/arena.yaml）")
	seed := flag.Int64("seed", defaultSeed, "随机种子")
	verbose := flag.Bool("verbose", env.Verbose, "显示详细调试信息")
	follow := flag.Bool("follow", false, "摄像机跟随玩家")
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		ConfigPath: *configPath,
		Follow:     *follow,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已被丢弃，错误直接写 stderr
		fmt.Fprintf(os.Stderr, "Failed to start arena: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := runError(ebiten.RunGame(game)); err != nil {
		fmt.Fprintf(os.Stderr, "Arena exited with error: %v\n", err)
		os.Exit(1)
	}
}

// runError 过滤正常退出（Esc 触发的 ebiten.Termination）
func runError(err error) error {
	if err == nil || errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
