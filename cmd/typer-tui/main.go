package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"typer3d/internal/audio"
	"typer3d/internal/config"
	"typer3d/internal/scene"
	"typer3d/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/xlab/closer"
)

var (
	configPath = flag.String("config", "typer.yaml", "settings file")
	logPath    = flag.String("log", "typer-tui.log", "log file; the terminal is busy drawing")
)

func main() {
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %v\n", err)
		os.Exit(1)
	}
	log.SetOutput(logFile)

	st, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	config.Apply(st)

	player := audio.NewPlayer()
	if st.Audio {
		if err := player.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	s, err := scene.Load(st, scene.WithListener(player.OnEvent))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}

	closer.Bind(func() {
		screen.Fini()
		player.Close()
		logFile.Close()
	})
	defer closer.Close()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "typer-tui crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	tui.NewApp(screen, s).Run()
}
