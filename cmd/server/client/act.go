package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var actCmd = &cobra.Command{
	Use:   "act [game-id] [kind] [payload]",
	Short: "Perform an action",
	Long: `Perform one action and print the events it produced. Examples:

  act 6f1c... attack '{"npc_id":"..."}'
  act 6f1c... exit '{"exit_id":"..."}'
  act 6f1c... move_item '{"item_id":"...","location":"pack"}'`,
	Args: cobra.RangeArgs(2, 3),
	RunE: act,
}

func act(_ *cobra.Command, args []string) error {
	payload := json.RawMessage(`{}`)
	if len(args) == 3 {
		if !json.Valid([]byte(args[2])) {
			return fmt.Errorf("payload is not valid JSON: %s", args[2])
		}
		payload = json.RawMessage(args[2])
	}

	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PerformAction(ctx, &v1alpha1.PerformActionRequest{
		GameID: args[0],
		Action: actions.Envelope{Kind: actions.Kind(args[1]), Payload: payload},
	})
	if err != nil {
		return fmt.Errorf("action failed: %w", err)
	}

	for i, env := range resp.Events {
		fmt.Printf("%4d  %-34s %s\n", resp.FirstSequence+int64(i), env.Type, env.Payload)
	}
	fmt.Println()
	return printJSON(resp.Game)
}
