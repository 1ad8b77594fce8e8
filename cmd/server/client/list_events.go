package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var (
	afterSequence int64
	pageSize      int32
)

var listEventsCmd = &cobra.Command{
	Use:   "events [game-id]",
	Short: "List a game's journaled events",
	Args:  cobra.ExactArgs(1),
	RunE:  listEvents,
}

func init() {
	listEventsCmd.Flags().Int64Var(&afterSequence, "after", 0, "Only events after this sequence")
	listEventsCmd.Flags().Int32Var(&pageSize, "limit", 0, "Page size (server default when zero)")
}

func listEvents(_ *cobra.Command, args []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListEvents(ctx, &v1alpha1.ListEventsRequest{
		GameID:        args[0],
		AfterSequence: afterSequence,
		Limit:         pageSize,
	})
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	for _, e := range resp.Events {
		fmt.Printf("%4d  %s  %-34s %s\n", e.Sequence, e.RecordedAt.Format(time.RFC3339), e.Event.Type, e.Event.Payload)
	}
	fmt.Printf("\n%d events\n", len(resp.Events))
	return nil
}
