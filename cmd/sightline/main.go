package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/FinleyDavies/sightline/geometry"
	"github.com/FinleyDavies/sightline/internal/app"
	ebitenrender "github.com/FinleyDavies/sightline/renderer/ebiten"
	"github.com/FinleyDavies/sightline/scenario"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario YAML file (random field when empty)")
	seed := flag.Int64("seed", 0, "random seed for obstacle generation (0 = time-based)")
	obstacleCount := flag.Int("obstacles", 10, "number of random obstacles")
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	flag.Parse()

	cfg := app.Config{
		ScreenWidth:  *width,
		ScreenHeight: *height,
		Target:       geometry.C(200, 200, 100),
	}

	if *scenarioPath != "" {
		scene, err := scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatalf("Failed to load scenario: %v", err)
		}
		log.Printf("Loaded scenario %q with %d obstacles", scene.Name, len(scene.Obstacles))
		cfg.ScreenWidth = scene.Width
		cfg.ScreenHeight = scene.Height
		cfg.Target = scene.Target.Circle()
		cfg.Obstacles = scene.ObstacleCircles()
	} else {
		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(*seed))
		genCfg := scenario.DefaultGenerateConfig()
		genCfg.Count = *obstacleCount
		genCfg.Width = float64(cfg.ScreenWidth)
		genCfg.Height = float64(cfg.ScreenHeight)
		cfg.Obstacles = scenario.Generate(rng, genCfg)
		log.Printf("Generated %d obstacles with seed %d", len(cfg.Obstacles), *seed)
	}

	demo := app.New(cfg, ebitenrender.NewRenderer(), ebitenrender.NewInputManager())

	engine := ebitenrender.NewEngine()
	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("Sightline")

	if err := engine.RunGame(demo); err != nil {
		log.Fatal(err)
	}
}
