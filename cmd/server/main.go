// Package main is the entry point for the fight tracker server and its CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fight-tracker/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "fight-tracker",
	Short: "Fight Tracker gRPC server",
	Long: `Fight Tracker keeps the shared combat state of a tabletop session: the active
fight, its participants, and live roster updates for every connected client.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
