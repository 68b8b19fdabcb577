package main

import (
	"fmt"

	"github.com/spf13/cobra"

	snakecore "github.com/vovakirdan/torus-snake/internal/games/snake/core"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List autopilot modes",
	Long:  `Shows the autopilot modes that can steer the snake.`,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	fmt.Println("Autopilot modes:")
	fmt.Println()

	fmt.Printf("  %-7s  %-4s  %s\n", "Mode", "Key", "Description")
	fmt.Printf("  %-7s  %-4s  %s\n", "----", "---", "-----------")

	keys := map[snakecore.Mode]string{
		snakecore.Manual:         "m",
		snakecore.FoodSeeking:    "g",
		snakecore.HazardAvoiding: "f",
		snakecore.TrapAvoiding:   "t",
	}
	for _, m := range snakecore.Modes {
		fmt.Printf("  %-7s  %-4s  %s\n", m, keys[m], m.Description())
	}

	fmt.Println()
	fmt.Println("Run 'snake play --autopilot <mode>' to start with one.")
}
