// Package main is the entry point for the dungeon gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-dungeon",
	Short: "Dungeon crawler gRPC server",
	Long:  `rpg-dungeon runs an event sourced text dungeon crawler over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
