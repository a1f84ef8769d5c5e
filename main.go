package main

import (
	"flag"
	"log"

	"github.com/athakkar/portfolio/pkg/app"
	"github.com/athakkar/portfolio/pkg/config"
	"github.com/athakkar/portfolio/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细日志")
	configDir = flag.String("config-dir", app.DefaultConfigDir, "配置文件目录（默认使用嵌入的 data/）")
	envFile   = flag.String("env", ".env", "环境变量文件（不存在时忽略）")
)

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Fatalf("环境变量加载失败: %v", err)
	}

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		ConfigDir: *configDir,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	window := gameApp.Window()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	if window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	// 动画按帧推进，Update 与显示器刷新同步
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
