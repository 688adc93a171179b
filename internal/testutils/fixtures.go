package testutils

import (
	"time"

	"github.com/KirkDiggler/fight-tracker/internal/entities"
)

// Fixture identities shared by combat tests
const (
	TestDMAccountID     = "acct-dm"
	TestPlayerAccountID = "acct-aria"
	TestCharacterID     = "char-aria"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Aria Windrunner"
)

// TestEpoch is the fixed start time used by stepping test clocks
var TestEpoch = time.Date(2026, time.March, 4, 19, 30, 0, 0, time.UTC)

// CreateTestDM creates a DM account
func CreateTestDM() *entities.Account {
	return &entities.Account{ID: TestDMAccountID, DisplayName: "Dungeon Master", Role: entities.RoleDM}
}

// CreateTestPlayer creates a player account
func CreateTestPlayer(accountID, displayName string) *entities.Account {
	return &entities.Account{ID: accountID, DisplayName: displayName, Role: entities.RolePlayer}
}

// CreateTestCharacter creates a character owned by accountID
func CreateTestCharacter(characterID, accountID, name string) *entities.Character {
	return &entities.Character{ID: characterID, AccountID: accountID, Name: name}
}

// CreateTestCombatStats creates a combat-stats record
func CreateTestCombatStats(characterID string, hp, maxHP, ac int32) *entities.CombatStats {
	return &entities.CombatStats{
		CharacterID: characterID,
		CurrentHP:   hp,
		MaxHP:       maxHP,
		ArmorClass:  ac,
		Speed:       30,
	}
}

// CreateTestFight creates an active fight row
func CreateTestFight(id string) *entities.Fight {
	return &entities.Fight{
		ID:        id,
		DMID:      TestDMAccountID,
		Status:    entities.FightStatusActive,
		CreatedAt: TestEpoch,
	}
}

// CreateTestEnemy creates an enemy participant
func CreateTestEnemy(id, fightID, name string, hp, ac, initiative int32) *entities.Participant {
	return &entities.Participant{
		ID:         id,
		FightID:    fightID,
		IsEnemy:    true,
		Name:       name,
		CurrentHP:  hp,
		MaxHP:      hp,
		ArmorClass: ac,
		Initiative: initiative,
		CreatedAt:  TestEpoch,
		UpdatedAt:  TestEpoch,
	}
}

// CreateTestPlayerParticipant creates a player participant
func CreateTestPlayerParticipant(id, fightID, accountID, name string, hp, ac, initiative int32) *entities.Participant {
	return &entities.Participant{
		ID:         id,
		FightID:    fightID,
		AccountID:  accountID,
		Name:       name,
		CurrentHP:  hp,
		MaxHP:      hp,
		ArmorClass: ac,
		Initiative: initiative,
		CreatedAt:  TestEpoch,
		UpdatedAt:  TestEpoch,
	}
}
