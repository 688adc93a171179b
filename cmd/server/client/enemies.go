package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	combatv1alpha1 "github.com/KirkDiggler/fight-tracker/internal/api/combat/v1alpha1"
)

var (
	enemyName       string
	enemyHP         int32
	enemyMaxHP      int32
	enemyArmorClass int32
	enemyInitiative int32
)

var setParticipantHPCmd = &cobra.Command{
	Use:   "set-participant-hp [participant-id] [hp]",
	Short: "Set any participant's current HP (DM only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		hp, err := parseInt32(args[1])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.SetParticipantHp(ctx, &combatv1alpha1.SetParticipantHpRequest{ParticipantId: args[0], Hp: hp})
			if err != nil {
				return fmt.Errorf("failed to set HP: %w", err)
			}
			printParticipant(resp.Participant)
			return nil
		})
	},
}

var addEnemyCmd = &cobra.Command{
	Use:     "add-enemy [fight-id]",
	Short:   "Add an enemy with explicit stats (DM only)",
	Example: `  fight-tracker client --as dm-1 add-enemy fight-1 --name Goblin --hp 7 --ac 15 --initiative 14`,
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		maxHP := enemyMaxHP
		if maxHP == 0 {
			maxHP = enemyHP
		}
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.AddEnemy(ctx, &combatv1alpha1.AddEnemyRequest{
				FightId: args[0],
				Enemy: &combatv1alpha1.EnemyAttributes{
					Name:       enemyName,
					CurrentHp:  enemyHP,
					MaxHp:      maxHP,
					ArmorClass: enemyArmorClass,
					Initiative: enemyInitiative,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to add enemy: %w", err)
			}
			printParticipant(resp.Participant)
			return nil
		})
	},
}

var addMonsterCmd = &cobra.Command{
	Use:     "add-monster [fight-id] [monster-key]",
	Short:   "Add an enemy from the SRD bestiary, rolling initiative unless given (DM only)",
	Example: `  fight-tracker client --as dm-1 add-monster fight-1 goblin --name "Goblin Archer"`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &combatv1alpha1.AddMonsterRequest{
			FightId:    args[0],
			MonsterKey: args[1],
			Name:       enemyName,
		}
		if cmd.Flags().Changed("initiative") {
			req.Initiative = &enemyInitiative
		}
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.AddMonster(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to add monster: %w", err)
			}
			if r := resp.InitiativeRoll; r != nil {
				fmt.Printf("Rolled initiative: d20 %d %+d = %d\n", r.Die, r.Modifier, r.Total)
			}
			printParticipant(resp.Participant)
			return nil
		})
	},
}

var editEnemyCmd = &cobra.Command{
	Use:   "edit-enemy [participant-id]",
	Short: "Change an enemy's name or stats; only given flags are changed (DM only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &combatv1alpha1.EditEnemyRequest{ParticipantId: args[0]}
		flags := cmd.Flags()
		if flags.Changed("name") {
			name, _ := flags.GetString("name")
			req.Name = &name
		}
		for flag, field := range map[string]**int32{
			"hp":         &req.CurrentHp,
			"max-hp":     &req.MaxHp,
			"ac":         &req.ArmorClass,
			"initiative": &req.Initiative,
		} {
			if !flags.Changed(flag) {
				continue
			}
			v, err := flags.GetInt32(flag)
			if err != nil {
				return err
			}
			*field = &v
		}
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.EditEnemy(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to edit enemy: %w", err)
			}
			printParticipant(resp.Participant)
			return nil
		})
	},
}

var deleteEnemyCmd = &cobra.Command{
	Use:   "delete-enemy [participant-id]",
	Short: "Remove an enemy from its fight (DM only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.DeleteEnemy(ctx, &combatv1alpha1.DeleteEnemyRequest{ParticipantId: args[0]})
			if err != nil {
				return fmt.Errorf("failed to delete enemy: %w", err)
			}
			fmt.Printf("Removed %s from fight %s\n", args[0], resp.FightId)
			return nil
		})
	},
}

var monstersCmd = &cobra.Command{
	Use:   "monsters",
	Short: "List monster keys available to add-monster",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error {
			resp, err := client.ListMonsters(ctx, &combatv1alpha1.ListMonstersRequest{})
			if err != nil {
				return fmt.Errorf("failed to list monsters: %w", err)
			}
			for _, m := range resp.Monsters {
				fmt.Printf("%-30s %s\n", m.Key, m.Name)
			}
			fmt.Printf("\n%d monsters\n", len(resp.Monsters))
			return nil
		})
	},
}

func init() {
	addEnemyCmd.Flags().StringVar(&enemyName, "name", "", "enemy name")
	addEnemyCmd.Flags().Int32Var(&enemyHP, "hp", 0, "current hit points")
	addEnemyCmd.Flags().Int32Var(&enemyMaxHP, "max-hp", 0, "maximum hit points (defaults to --hp)")
	addEnemyCmd.Flags().Int32Var(&enemyArmorClass, "ac", 10, "armor class")
	addEnemyCmd.Flags().Int32Var(&enemyInitiative, "initiative", 0, "initiative")
	_ = addEnemyCmd.MarkFlagRequired("name")
	_ = addEnemyCmd.MarkFlagRequired("hp")

	addMonsterCmd.Flags().StringVar(&enemyName, "name", "", "display name (defaults to the monster's)")
	addMonsterCmd.Flags().Int32Var(&enemyInitiative, "initiative", 0, "initiative (rolled when omitted)")

	// edit reads its flags by name so unset ones stay nil
	editEnemyCmd.Flags().String("name", "", "new name")
	editEnemyCmd.Flags().Int32("hp", 0, "new current hit points")
	editEnemyCmd.Flags().Int32("max-hp", 0, "new maximum hit points")
	editEnemyCmd.Flags().Int32("ac", 0, "new armor class")
	editEnemyCmd.Flags().Int32("initiative", 0, "new initiative")
}
