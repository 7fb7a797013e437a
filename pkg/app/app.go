// Package app 提供游戏应用的核心包装器
//
// 该包把启动流程（日志、数值配置、音频、设置存储、场景）从 main 包中提取出来，
// main.go 只负责解析命令行参数和窗口设置。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName 设置存储使用的应用名
const AppName = "crystalslime"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// BalancePath 外部数值配置文件，为空时使用内置的 data/balance.yaml
	BalancePath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// NoPersist 不读写本地设置存储
	NoPersist bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameState                *game.GameState
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	balance, err := loadBalance(cfg.BalancePath)
	if err != nil {
		return nil, fmt.Errorf("数值配置加载失败: %w", err)
	}

	settingsManager := game.NewSettingsManager(openStore(cfg.NoPersist))
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	audioContext := audio.NewContext(game.AudioSampleRate)
	resourceManager := game.NewResourceManager(audioContext)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	gameState := game.NewGameState(balance, game.NewGameClock(nil), rand.New(rand.NewSource(seed)), audioManager)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(gameState, settingsManager))

	return &App{
		sceneManager: sceneManager,
		gameState:    gameState,
		settings:     settingsManager,
		verbose:      cfg.Verbose,
	}, nil
}

func loadBalance(path string) (*config.BalanceConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载数值配置: %s", path)
		return config.LoadBalanceConfig(path)
	}
	return config.LoadEmbeddedBalance()
}

// openStore 打开设置存储；失败时降级为仅内存设置
func openStore(disabled bool) game.SettingsStore {
	if disabled {
		return nil
	}
	store, err := game.OpenSettingsStore(AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
		return nil
	}
	return store
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(WindowWidth, WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", WindowWidth, WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settings.SetFullscreen(false)
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
			a.settings.SetFullscreen(true)
		}
	}

	return a.sceneManager.Update(config.FrameDeltaTime)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色，并用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// WindowWidth / WindowHeight 逻辑屏幕尺寸（与战场一致）
const (
	WindowWidth  = int(config.BoardWidth)
	WindowHeight = int(config.BoardHeight)
)

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

// Close 程序退出前保存设置
func (a *App) Close() {
	a.sceneManager.Close()
	log.Printf("[App] Closed (high score %d)", a.gameState.HighScore)
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
