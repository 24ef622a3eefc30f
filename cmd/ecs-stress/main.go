package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/naxaras/gaemstone/ecs"
	"github.com/naxaras/gaemstone/ecs/debugui/term"
	"github.com/pkg/profile"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu or mem.")
	tui := flag.Bool("tui", false, "Show live universe statistics in the terminal. Press q to stop early.")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for entity generation.")
	flag.Parse()

	if p := startProfile(*profileMode); p != nil {
		defer p.Stop()
	}

	log.Println("Starting ECS stress test...")

	// 1. Setup the universe and its processors
	rng := rand.New(rand.NewSource(*seed))
	u := ecs.NewUniverse()
	if err := registerComponents(u); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}
	processors := []ecs.Processor{
		MovementProcessor{},
		DecayProcessor{},
		ScoreProcessor{},
		&RespawnProcessor{Target: *entityCount, Rng: rng},
	}
	for _, p := range processors {
		if err := u.Processors.Start(p); err != nil {
			log.Fatalf("Failed to start processor: %v", err)
		}
	}

	// 2. Populate the universe with initial entities
	log.Printf("Populating universe with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		if _, err := spawnRandomEntity(u, rng, componentCount); err != nil {
			log.Fatalf("Failed to spawn entity: %v", err)
		}
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentCount,
		Processors:     u.Processors.Len(),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var screen tcell.Screen
	if *tui {
		var err error
		if screen, err = startInspector(ctx, cancel, u); err != nil {
			log.Fatalf("Failed to start terminal inspector: %v", err)
		}
	}

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			u.Processors.Update(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Universe = u.CollectStats()
	report.ProcessorStats = u.Processors.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	if screen != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
	}
	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "":
		return nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		log.Fatalf("Unknown profile mode %q, want cpu or mem", mode)
		return nil
	}
}

// startInspector takes over the terminal and redraws statistics twice a
// second. Log output is silenced while the screen is active.
func startInspector(ctx context.Context, cancel context.CancelFunc, u *ecs.Universe) (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	log.SetOutput(io.Discard)

	inspector := term.NewInspector(screen, "ecs-stress (q to stop)")
	if err := u.Processors.Start(term.NewInspectorProcessor(inspector, 500*time.Millisecond)); err != nil {
		screen.Fini()
		return nil, err
	}
	go inspector.WatchQuit(ctx, cancel)
	return screen, nil
}
