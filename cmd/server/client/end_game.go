package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var endGameCmd = &cobra.Command{
	Use:   "end [game-id]",
	Short: "End a game; its event log is kept",
	Args:  cobra.ExactArgs(1),
	RunE:  endGame,
}

func endGame(_ *cobra.Command, args []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.EndGame(ctx, &v1alpha1.EndGameRequest{GameID: args[0]}); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	fmt.Printf("Game %s ended\n", args[0])
	return nil
}
