// Package app 提供桌面版的 ebiten.Game 包装器
//
// 启动逻辑从 main 包提取出来：main 只负责解析参数和初始化嵌入资源，
// 其余（配置加载、世界构建、场景切换）都在 NewApp 中完成。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/decker502/arena/pkg/arena"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/scenes"
	"github.com/decker502/arena/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，相同种子和输入会得到相同的对局
	Seed int64
	// ConfigPath 外部调参文件路径，为空时使用内置 data/arena.yaml
	ConfigPath string
	// Follow 摄像机跟随玩家
	Follow bool
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	world                    *arena.World
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	arenaConfig, err := config.ResolveArenaConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("竞技场配置加载失败: %w", err)
	}

	camera := utils.NewCamera(config.GameWindowWidth, config.GameWindowHeight, 1)
	world, err := arena.NewWorld(arenaConfig, rand.New(rand.NewSource(cfg.Seed)), camera)
	if err != nil {
		return nil, fmt.Errorf("竞技场初始化失败: %w", err)
	}
	log.Printf("[App] World created (seed=%d, follow=%v)", cfg.Seed, cfg.Follow)

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewArenaScene(world, camera, cfg.Follow))

	return &App{
		sceneManager: sceneManager,
		world:        world,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，dt 固定为 1/TPS
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧留黑，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// World 返回竞技场世界
func (a *App) World() *arena.World {
	return a.world
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
