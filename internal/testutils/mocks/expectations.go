// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"sync"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/fight-tracker/internal/changefeed"
	changefeedmock "github.com/KirkDiggler/fight-tracker/internal/changefeed/mock"
	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/account"
	accountmock "github.com/KirkDiggler/fight-tracker/internal/repositories/account/mock"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/character"
	charactermock "github.com/KirkDiggler/fight-tracker/internal/repositories/character/mock"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/fight"
	fightmock "github.com/KirkDiggler/fight-tracker/internal/repositories/fight/mock"
)

// ExpectAccount makes the account directory resolve acct once
func ExpectAccount(mockRepo *accountmock.MockRepository, acct *entities.Account) {
	mockRepo.EXPECT().
		Get(gomock.Any(), account.GetInput{ID: acct.ID}).
		Return(&account.GetOutput{Account: acct}, nil)
}

// ExpectFight makes the fight store return f once by id
func ExpectFight(mockRepo *fightmock.MockRepository, f *entities.Fight) {
	mockRepo.EXPECT().
		GetFight(gomock.Any(), fight.GetFightInput{ID: f.ID}).
		Return(&fight.GetFightOutput{Fight: f}, nil)
}

// ExpectCharacterSheet sets up the two reads a join or resync makes: the
// account's character, then its combat block
func ExpectCharacterSheet(mockRepo *charactermock.MockRepository, c *entities.Character, stats *entities.CombatStats) {
	mockRepo.EXPECT().
		GetByAccount(gomock.Any(), character.GetByAccountInput{AccountID: c.AccountID}).
		Return(&character.GetByAccountOutput{Character: c}, nil)
	mockRepo.EXPECT().
		GetCombatStats(gomock.Any(), character.GetCombatStatsInput{CharacterID: c.ID}).
		Return(&character.GetCombatStatsOutput{Stats: stats}, nil)
}

// PublishRecorder collects events sent to a mock publisher
type PublishRecorder struct {
	mu     sync.Mutex
	events []changefeed.Event
}

// Events returns the recorded events in publish order
func (r *PublishRecorder) Events() []changefeed.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]changefeed.Event, len(r.events))
	copy(out, r.events)
	return out
}

// RecordPublishes accepts exactly times publishes and records them
func RecordPublishes(mockPublisher *changefeedmock.MockPublisher, times int) *PublishRecorder {
	r := &PublishRecorder{}
	mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e changefeed.Event) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.events = append(r.events, e)
			return nil
		}).
		Times(times)
	return r
}
