package main

import (
	"flag"
	"log"
	"runtime"

	"typer3d/internal/audio"
	"typer3d/internal/config"
	"typer3d/internal/graphics"

	"github.com/xlab/closer"
)

var (
	configPath = flag.String("config", "typer.yaml", "settings file")
	shaderDir  = flag.String("shaders", graphics.ShadersDir, "shader directory")
	fpsFlag    = flag.Int("fps", -1, "frame cap override, 0 for uncapped")
	profile    = flag.Bool("profile", false, "show frame timings in the HUD")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	st, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.Apply(st)
	if *fpsFlag >= 0 {
		config.SetFPSLimit(*fpsFlag)
	}
	config.SetProfiling(*profile)

	player := audio.NewPlayer()
	if st.Audio {
		if err := player.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	closer.Bind(player.Close)
	defer closer.Close()

	if err := run(st, player); err != nil {
		closer.Fatalln(err)
	}
}
