package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var showGameCmd = &cobra.Command{
	Use:   "show [game-id]",
	Short: "Show the player's view of a game",
	Args:  cobra.ExactArgs(1),
	RunE:  showGame,
}

func showGame(_ *cobra.Command, args []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetGame(ctx, &v1alpha1.GetGameRequest{GameID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	fmt.Printf("Game %s after %d events\n\n", args[0], resp.Sequence)
	return printJSON(resp.Game)
}
