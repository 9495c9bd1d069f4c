package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/tinyrange/glwin/internal/config"
	"github.com/tinyrange/glwin/internal/gl"
	"github.com/tinyrange/glwin/internal/graphics"
	"github.com/tinyrange/glwin/internal/input"
	"github.com/tinyrange/glwin/internal/window"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("config", "glwin.yaml", "path to the YAML configuration")
	screenshot := fs.String("screenshot", "", "write the first frame to this PNG file and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(cfg, *screenshot); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(cfg config.Config, screenshotPath string) error {
	win := window.New(cfg.Window())
	if err := win.Create(); err != nil {
		return err
	}
	defer win.Destroy()

	win.SetSwapInterval(cfg.SwapInterval)
	if cfg.FullScreen {
		win.FullScreen(true)
	}

	opengl, err := gl.Load()
	if err != nil {
		return err
	}
	info := gl.QueryInfo(opengl)
	slog.Info("OpenGL", "vendor", info.Vendor, "renderer", info.Renderer, "version", info.Version,
		"extensions", len(info.Extensions))

	quit := false
	win.OnKey(func(key input.Key, pressed bool) {
		if !pressed {
			return
		}
		switch key {
		case input.KeyF11:
			win.FullScreen(!win.IsFullScreen())
		case input.KeyEscape:
			quit = true
		}
	})
	win.OnResize(func(width, height int) {
		slog.Debug("Resize", "width", width, "height", height)
	})
	win.OnDestroy(func() {
		slog.Info("Close requested")
	})

	loop := graphics.New(win, opengl)
	loop.SetClearColor(graphics.Color{0.1, 0.12, 0.16, 1.0})

	return loop.Run(func(f graphics.Frame) error {
		if quit {
			return graphics.ErrStop
		}
		if screenshotPath == "" {
			return nil
		}

		img, err := f.Screenshot()
		if err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		file, err := os.Create(screenshotPath)
		if err != nil {
			return fmt.Errorf("create screenshot file: %w", err)
		}
		defer file.Close()

		if err := png.Encode(file, img); err != nil {
			return fmt.Errorf("encode screenshot: %w", err)
		}
		slog.Info("Screenshot written", "path", screenshotPath)
		return graphics.ErrStop
	})
}
