package ecs_test

import (
	"fmt"

	"github.com/naxaras/gaemstone/ecs"
)

type GameConfig struct {
	MaxPlayers int
	Difficulty string
}

type GameScore struct {
	Points int
	Level  int
}

// ExampleNewSingleton demonstrates creating and accessing singleton components.
// A singleton lives on a dedicated entity, which makes it useful for game
// state, configuration, or other application-wide data.
func ExampleNewSingleton() {
	u := ecs.NewUniverse()

	// Create singleton with initializer
	config, err := ecs.NewSingleton(u, GameConfig{
		MaxPlayers: 4,
		Difficulty: "Normal",
	})
	if err != nil {
		panic(err)
	}

	current, _ := config.Get()
	fmt.Printf("Config: %d players, %s difficulty\n", current.MaxPlayers, current.Difficulty)

	// Values are copies; write changes back with Set
	current.Difficulty = "Hard"
	_ = config.Set(current)

	// Create another reference to the same singleton
	sameConfig, _ := ecs.NewSingleton[GameConfig](u)
	same, _ := sameConfig.Get()
	fmt.Printf("Same config: %s difficulty\n", same.Difficulty)
	fmt.Println("Same entity:", config.Entity() == sameConfig.Entity())

	// Output:
	// Config: 4 players, Normal difficulty
	// Same config: Hard difficulty
	// Same entity: true
}

// ExampleSingleton_Exists shows that destroying the holding entity ends
// the singleton.
func ExampleSingleton_Exists() {
	u := ecs.NewUniverse()

	score, _ := ecs.NewSingleton(u, GameScore{Points: 0, Level: 1})
	fmt.Println("Exists:", score.Exists())

	_ = u.Destroy(score.Entity())
	fmt.Println("Exists after destroy:", score.Exists())

	_, err := score.Get()
	fmt.Println("Get error:", err != nil)

	// Output:
	// Exists: true
	// Exists after destroy: false
	// Get error: true
}
