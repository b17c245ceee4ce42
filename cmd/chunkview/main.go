package main

import (
	"log/slog"
	"os"
	"runtime"

	"chunkview/internal/config"
	"chunkview/internal/game"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	settings, err := config.Load(config.DefaultPath)
	if err != nil {
		slog.Error("load settings", "err", err)
		return 1
	}
	level, _ := settings.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := glfw.Init(); err != nil {
		slog.Error("init GLFW", "err", err)
		return 1
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(settings.Window)
	if err != nil {
		slog.Error("setup window", "err", err)
		return 1
	}
	defer window.Destroy()

	app, err := game.NewApp(window, settings)
	if err != nil {
		slog.Error("initialize scene", "err", err)
		return 1
	}
	defer app.Close()

	app.Run()
	slog.Info("window closed")
	return 0
}
