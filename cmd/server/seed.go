package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fight-tracker/internal/config"
	"github.com/KirkDiggler/fight-tracker/internal/entities"
	redisclient "github.com/KirkDiggler/fight-tracker/internal/redis"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/account"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/character"
)

var (
	seedID          string
	seedName        string
	seedRole        string
	seedAccountID   string
	seedCurrentHP   int32
	seedMaxHP       int32
	seedArmorClass  int32
	seedSpeed       int32
	seedInitiative  int32
	seedCharacterID string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write accounts and character sheets to Redis",
	Long: `Seed the account directory and character sheets the combat core reads.
Uses the same FIGHT_TRACKER_REDIS_* settings as the server.`,
}

var seedAccountCmd = &cobra.Command{
	Use:   "account",
	Short: "Create or replace an account",
	Example: `  fight-tracker seed account --id dm-1 --name "Dungeon Master" --role dm
  fight-tracker seed account --id player-1 --name Aria`,
	RunE: runSeedAccount,
}

var seedCharacterCmd = &cobra.Command{
	Use:     "character",
	Short:   "Create or replace an account's character and combat stats",
	Example: `  fight-tracker seed character --account player-1 --id char-1 --name Aria --hp 24 --max-hp 24 --ac 14`,
	RunE:    runSeedCharacter,
}

func init() {
	seedAccountCmd.Flags().StringVar(&seedID, "id", "", "account id")
	seedAccountCmd.Flags().StringVar(&seedName, "name", "", "display name")
	seedAccountCmd.Flags().StringVar(&seedRole, "role", string(entities.RolePlayer), "dm or player")
	_ = seedAccountCmd.MarkFlagRequired("id")

	seedCharacterCmd.Flags().StringVar(&seedAccountID, "account", "", "owning account id")
	seedCharacterCmd.Flags().StringVar(&seedCharacterID, "id", "", "character id")
	seedCharacterCmd.Flags().StringVar(&seedName, "name", "", "character name")
	seedCharacterCmd.Flags().Int32Var(&seedCurrentHP, "hp", 0, "current hit points")
	seedCharacterCmd.Flags().Int32Var(&seedMaxHP, "max-hp", 0, "maximum hit points")
	seedCharacterCmd.Flags().Int32Var(&seedArmorClass, "ac", 10, "armor class")
	seedCharacterCmd.Flags().Int32Var(&seedSpeed, "speed", 30, "speed in feet")
	seedCharacterCmd.Flags().Int32Var(&seedInitiative, "initiative-bonus", 0, "initiative bonus")
	_ = seedCharacterCmd.MarkFlagRequired("account")
	_ = seedCharacterCmd.MarkFlagRequired("id")
	_ = seedCharacterCmd.MarkFlagRequired("name")

	seedCmd.AddCommand(seedAccountCmd)
	seedCmd.AddCommand(seedCharacterCmd)
}

func seedRedis() (redisclient.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return redisclient.Connect(cfg.RedisEndpoints, &redisclient.Options{UseTLS: cfg.RedisTLS})
}

func runSeedAccount(cmd *cobra.Command, _ []string) error {
	role := entities.Role(strings.ToLower(seedRole))
	if role != entities.RoleDM && role != entities.RolePlayer {
		return fmt.Errorf("role must be %q or %q", entities.RoleDM, entities.RolePlayer)
	}

	client, err := seedRedis()
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	repo, err := account.NewRedis(&account.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	name := seedName
	if name == "" {
		name = seedID
	}
	if _, err := repo.Save(ctx, account.SaveInput{Account: &entities.Account{
		ID:          seedID,
		DisplayName: name,
		Role:        role,
	}}); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	fmt.Printf("Saved account %s (%s, %s)\n", seedID, name, role)
	return nil
}

func runSeedCharacter(cmd *cobra.Command, _ []string) error {
	maxHP := seedMaxHP
	if maxHP == 0 {
		maxHP = seedCurrentHP
	}

	client, err := seedRedis()
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	if _, err := repo.SaveCharacter(ctx, character.SaveCharacterInput{Character: &entities.Character{
		ID:        seedCharacterID,
		AccountID: seedAccountID,
		Name:      seedName,
	}}); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}

	if _, err := repo.SaveCombatStats(ctx, character.SaveCombatStatsInput{Stats: &entities.CombatStats{
		CharacterID:     seedCharacterID,
		CurrentHP:       seedCurrentHP,
		MaxHP:           maxHP,
		ArmorClass:      seedArmorClass,
		Speed:           seedSpeed,
		InitiativeBonus: seedInitiative,
	}}); err != nil {
		return fmt.Errorf("failed to save combat stats: %w", err)
	}

	fmt.Printf("Saved character %s (%s) for account %s: HP %d/%d AC %d\n",
		seedCharacterID, seedName, seedAccountID, seedCurrentHP, maxHP, seedArmorClass)
	return nil
}
