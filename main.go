package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/decker502/crystalslime/pkg/app"
	"github.com/decker502/crystalslime/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	balancePath := flag.String("config", "", "外部数值配置文件（默认使用内置 data/balance.yaml）")
	assetsDir := flag.String("assets", "assets", "音效资源目录，不存在时静音运行")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	noPersist := flag.Bool("no-persist", false, "不读写本地设置")
	flag.Parse()

	var assets fs.FS
	if info, err := os.Stat(*assetsDir); err == nil && info.IsDir() {
		assets = os.DirFS(*assetsDir)
	}
	embedded.Init(assets, dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		BalancePath: *balancePath,
		Seed:        *seed,
		NoPersist:   *noPersist,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("Crystal Slime Chronicles")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏异常退出: %v", err)
	}
}
