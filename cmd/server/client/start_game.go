package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var species string

var startGameCmd = &cobra.Command{
	Use:   "start [player-name]",
	Short: "Start a new game",
	Args:  cobra.ExactArgs(1),
	RunE:  startGame,
}

func init() {
	startGameCmd.Flags().StringVar(&species, "species", "", "Player species (default human)")
}

func startGame(_ *cobra.Command, args []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.StartGame(ctx, &v1alpha1.StartGameRequest{
		PlayerName: args[0],
		Species:    species,
	})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	fmt.Printf("Game %s started\n\n", resp.GameID)
	return printJSON(resp.Game)
}
