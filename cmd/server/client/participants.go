package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	combatv1alpha1 "github.com/KirkDiggler/fight-tracker/internal/api/combat/v1alpha1"
)

var joinInitiative int32

var listCmd = &cobra.Command{
	Use:   "list [fight-id]",
	Short: "List a fight's participants in turn order",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.ListParticipants(ctx, &combatv1alpha1.ListParticipantsRequest{FightId: args[0]})
			if err != nil {
				return fmt.Errorf("failed to list participants: %w", err)
			}
			printRoster(resp.Participants)
			return nil
		})
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [fight-id]",
	Short: "Print the roster now and again after every change until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE:  watch,
}

var joinCmd = &cobra.Command{
	Use:   "join [fight-id]",
	Short: "Join a fight with your character, or rejoin with fresh stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.JoinFight(ctx, &combatv1alpha1.JoinFightRequest{
				FightId:    args[0],
				Initiative: joinInitiative,
			})
			if err != nil {
				return fmt.Errorf("failed to join fight: %w", err)
			}
			if resp.Created {
				fmt.Println("Joined")
			} else {
				fmt.Println("Rejoined")
			}
			printParticipant(resp.Participant)
			return nil
		})
	},
}

var setHPCmd = &cobra.Command{
	Use:   "set-hp [fight-id] [hp]",
	Short: "Set your own current HP",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		hp, err := parseInt32(args[1])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.SetOwnHp(ctx, &combatv1alpha1.SetOwnHpRequest{FightId: args[0], Hp: hp})
			if err != nil {
				return fmt.Errorf("failed to set HP: %w", err)
			}
			printParticipant(resp.Participant)
			return nil
		})
	},
}

var resyncCmd = &cobra.Command{
	Use:   "resync [fight-id]",
	Short: "Copy your character sheet's current stats into the fight",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.ResyncStats(ctx, &combatv1alpha1.ResyncStatsRequest{FightId: args[0]})
			if err != nil {
				return fmt.Errorf("failed to resync stats: %w", err)
			}
			printParticipant(resp.Participant)
			return nil
		})
	},
}

func init() {
	joinCmd.Flags().Int32Var(&joinInitiative, "initiative", 0, "initiative result")
	_ = joinCmd.MarkFlagRequired("initiative")
}

func watch(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stream, err := client.SubscribeParticipants(ctx, &combatv1alpha1.SubscribeParticipantsRequest{FightId: args[0]})
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	for {
		snapshot, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("subscription ended: %w", err)
		}
		fmt.Printf("\n#%d\n", snapshot.Sequence)
		printRoster(snapshot.Participants)
	}
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return int32(v), nil
}
