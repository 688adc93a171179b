package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	combatv1alpha1 "github.com/KirkDiggler/fight-tracker/internal/api/combat/v1alpha1"
)

var activeFightCmd = &cobra.Command{
	Use:   "active-fight",
	Short: "Show the active fight",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.GetActiveFight(ctx, &combatv1alpha1.GetActiveFightRequest{})
			if err != nil {
				return fmt.Errorf("failed to get active fight: %w", err)
			}
			printFight(resp.Fight)
			return nil
		})
	},
}

var startFightCmd = &cobra.Command{
	Use:   "start-fight",
	Short: "Start a new fight, finishing any active one (DM only)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.StartFight(ctx, &combatv1alpha1.StartFightRequest{})
			if err != nil {
				return fmt.Errorf("failed to start fight: %w", err)
			}
			for _, id := range resp.FinishedFightIds {
				fmt.Printf("Finished previous fight %s\n", id)
			}
			printFight(resp.Fight)
			return nil
		})
	},
}

var finishFightCmd = &cobra.Command{
	Use:   "finish-fight [fight-id]",
	Short: "Finish a fight and clear its participants (DM only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.FinishFight(ctx, &combatv1alpha1.FinishFightRequest{FightId: args[0]})
			if err != nil {
				return fmt.Errorf("failed to finish fight: %w", err)
			}
			printFight(resp.Fight)
			fmt.Printf("Removed %d participants\n", resp.ParticipantsPurged)
			return nil
		})
	},
}
