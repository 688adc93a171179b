package combat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/fight-tracker/internal/changefeed"
	changefeedmock "github.com/KirkDiggler/fight-tracker/internal/changefeed/mock"
	"github.com/KirkDiggler/fight-tracker/internal/clients/bestiary"
	bestiarymock "github.com/KirkDiggler/fight-tracker/internal/clients/bestiary/mock"
	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/account"
	accountmock "github.com/KirkDiggler/fight-tracker/internal/repositories/account/mock"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/character"
	charactermock "github.com/KirkDiggler/fight-tracker/internal/repositories/character/mock"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/fight"
	fightmock "github.com/KirkDiggler/fight-tracker/internal/repositories/fight/mock"
	"github.com/KirkDiggler/fight-tracker/internal/testutils"
	"github.com/KirkDiggler/fight-tracker/internal/testutils/mocks"
)

const testFightID = "fight-1"

type stubRoller struct {
	value int
}

func (s *stubRoller) Roll(_ int) (int, error) { return s.value, nil }
func (s *stubRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = s.value
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	fightRepo     *fightmock.MockRepository
	characterRepo *charactermock.MockRepository
	accountRepo   *accountmock.MockRepository
	publisher     *changefeedmock.MockPublisher
	bestiary      *bestiarymock.MockClient
	roller        *stubRoller
	orchestrator  Service
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fightRepo = fightmock.NewMockRepository(s.ctrl)
	s.characterRepo = charactermock.NewMockRepository(s.ctrl)
	s.accountRepo = accountmock.NewMockRepository(s.ctrl)
	s.publisher = changefeedmock.NewMockPublisher(s.ctrl)
	s.bestiary = bestiarymock.NewMockClient(s.ctrl)
	s.roller = &stubRoller{value: 12}
	s.ctx = context.Background()

	o, err := NewOrchestrator(&Config{
		FightRepo:     s.fightRepo,
		CharacterRepo: s.characterRepo,
		AccountRepo:   s.accountRepo,
		Publisher:     s.publisher,
		Bestiary:      s.bestiary,
		IDGenerator:   idgen.NewSequential("row"),
		Clock:         clock.Func(func() time.Time { return testutils.TestEpoch }),
		DiceRoller:    s.roller,
	})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectAccount(acct *entities.Account) {
	mocks.ExpectAccount(s.accountRepo, acct)
}

func (s *OrchestratorTestSuite) expectDM() {
	s.expectAccount(testutils.CreateTestDM())
}

func (s *OrchestratorTestSuite) expectFight(f *entities.Fight) {
	mocks.ExpectFight(s.fightRepo, f)
}

func (s *OrchestratorTestSuite) expectSheet(hp, maxHP, ac int32) {
	mocks.ExpectCharacterSheet(s.characterRepo,
		testutils.CreateTestCharacter(testutils.TestCharacterID, testutils.TestPlayerAccountID, testutils.TestCharacterName),
		testutils.CreateTestCombatStats(testutils.TestCharacterID, hp, maxHP, ac),
	)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	s.Run("missing dependencies", func() {
		_, err := NewOrchestrator(&Config{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil config", func() {
		_, err := NewOrchestrator(nil)
		s.Require().Error(err)
	})
}

func (s *OrchestratorTestSuite) TestStartFight() {
	s.Run("without account", func() {
		_, err := s.orchestrator.StartFight(s.ctx, &StartFightInput{})
		s.Require().Error(err)
		s.True(errors.IsNoAccountContext(err))
	})

	s.Run("player is denied", func() {
		s.expectAccount(testutils.CreateTestPlayer(testutils.TestPlayerAccountID, "Aria"))

		_, err := s.orchestrator.StartFight(s.ctx, &StartFightInput{AccountID: testutils.TestPlayerAccountID})
		s.Require().Error(err)
		s.True(errors.IsPermissionDenied(err))
	})

	s.Run("unknown account is denied", func() {
		s.accountRepo.EXPECT().
			Get(gomock.Any(), account.GetInput{ID: "acct-ghost"}).
			Return(nil, errors.NotFound("account not found"))

		_, err := s.orchestrator.StartFight(s.ctx, &StartFightInput{AccountID: "acct-ghost"})
		s.Require().Error(err)
		s.True(errors.IsPermissionDenied(err))
	})

	s.Run("replaces the active fight", func() {
		s.expectDM()
		s.fightRepo.EXPECT().
			StartFight(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input fight.StartFightInput) (*fight.StartFightOutput, error) {
				s.Equal(testutils.TestDMAccountID, input.Fight.DMID)
				s.Equal(entities.FightStatusActive, input.Fight.Status)
				s.NotEmpty(input.Fight.ID)
				return &fight.StartFightOutput{Fight: input.Fight, FinishedFightIDs: []string{"fight-old"}}, nil
			})

		recorder := mocks.RecordPublishes(s.publisher, 2)

		out, err := s.orchestrator.StartFight(s.ctx, &StartFightInput{AccountID: testutils.TestDMAccountID})
		s.Require().NoError(err)
		s.Equal([]string{"fight-old"}, out.FinishedFightIDs)

		published := recorder.Events()
		s.Require().Len(published, 2)
		s.Equal("fight-old", published[0].FightID)
		s.Equal(changefeed.OpUpdate, published[0].Op)
		s.Equal(out.Fight.ID, published[1].FightID)
		s.Equal(changefeed.OpInsert, published[1].Op)
		s.Equal(changefeed.TableFights, published[1].Table)
		s.Equal(entities.FightType, published[1].Kind)
		s.Equal(out.Fight.ID, published[1].RowID)
	})

	s.Run("lost race surfaces already exists", func() {
		s.expectDM()
		s.fightRepo.EXPECT().
			StartFight(gomock.Any(), gomock.Any()).
			Return(nil, errors.AlreadyExists("another fight became active"))

		_, err := s.orchestrator.StartFight(s.ctx, &StartFightInput{AccountID: testutils.TestDMAccountID})
		s.Require().Error(err)
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *OrchestratorTestSuite) TestFinishFight() {
	s.Run("not active", func() {
		s.expectDM()
		s.fightRepo.EXPECT().
			FinishFight(gomock.Any(), fight.FinishFightInput{ID: testFightID, FinishedAt: testutils.TestEpoch}).
			Return(nil, errors.FightNotFound(testFightID))

		_, err := s.orchestrator.FinishFight(s.ctx, &FinishFightInput{AccountID: testutils.TestDMAccountID, FightID: testFightID})
		s.Require().Error(err)
		s.True(errors.IsFightNotFound(err))
	})

	s.Run("publishes the status change", func() {
		finished := testutils.CreateTestFight(testFightID)
		finished.Status = entities.FightStatusFinished

		s.expectDM()
		s.fightRepo.EXPECT().
			FinishFight(gomock.Any(), fight.FinishFightInput{ID: testFightID, FinishedAt: testutils.TestEpoch}).
			Return(&fight.FinishFightOutput{Fight: finished, ParticipantsPurged: 3}, nil)
		s.publisher.EXPECT().
			Publish(gomock.Any(), changefeed.Event{
				FightID: testFightID,
				Table:   changefeed.TableFights,
				Op:      changefeed.OpUpdate,
				RowID:   testFightID,
				Kind:    entities.FightType,
				At:      testutils.TestEpoch,
			}).
			Return(nil)

		out, err := s.orchestrator.FinishFight(s.ctx, &FinishFightInput{AccountID: testutils.TestDMAccountID, FightID: testFightID})
		s.Require().NoError(err)
		s.Equal(int64(3), out.ParticipantsPurged)
		s.False(out.Fight.IsActive())
	})
}

func (s *OrchestratorTestSuite) TestListParticipants() {
	roster := []*entities.Participant{
		testutils.CreateTestEnemy("e1", testFightID, "Goblin", 7, 15, 18),
		testutils.CreateTestPlayerParticipant("p1", testFightID, testutils.TestPlayerAccountID, testutils.TestCharacterName, 24, 14, 12),
	}

	s.Run("player sees enemy stats withheld", func() {
		s.expectAccount(testutils.CreateTestPlayer(testutils.TestPlayerAccountID, "Aria"))
		s.fightRepo.EXPECT().
			ListParticipants(gomock.Any(), fight.ListParticipantsInput{FightID: testFightID}).
			Return(&fight.ListParticipantsOutput{Participants: roster}, nil)

		out, err := s.orchestrator.ListParticipants(s.ctx, &ListParticipantsInput{
			FightID:         testFightID,
			ViewerAccountID: testutils.TestPlayerAccountID,
		})
		s.Require().NoError(err)
		s.False(out.ViewerIsDM)
		s.Require().Len(out.Participants, 2)

		enemy := out.Participants[0]
		s.True(enemy.StatsHidden)
		s.Zero(enemy.CurrentHP)
		s.Zero(enemy.ArmorClass)
		s.Equal("Goblin", enemy.Name)
		s.Equal(int32(18), enemy.Initiative)

		player := out.Participants[1]
		s.False(player.StatsHidden)
		s.Equal(int32(24), player.CurrentHP)

		// the repository's rows are untouched
		s.Equal(int32(7), roster[0].CurrentHP)
	})

	s.Run("DM sees everything", func() {
		s.expectDM()
		s.fightRepo.EXPECT().
			ListParticipants(gomock.Any(), fight.ListParticipantsInput{FightID: testFightID}).
			Return(&fight.ListParticipantsOutput{Participants: roster}, nil)

		out, err := s.orchestrator.ListParticipants(s.ctx, &ListParticipantsInput{
			FightID:         testFightID,
			ViewerAccountID: testutils.TestDMAccountID,
		})
		s.Require().NoError(err)
		s.True(out.ViewerIsDM)
		s.Equal(int32(7), out.Participants[0].CurrentHP)
		s.False(out.Participants[0].StatsHidden)
	})

	s.Run("anonymous viewer is a player", func() {
		s.fightRepo.EXPECT().
			ListParticipants(gomock.Any(), fight.ListParticipantsInput{FightID: testFightID}).
			Return(&fight.ListParticipantsOutput{Participants: roster}, nil)

		out, err := s.orchestrator.ListParticipants(s.ctx, &ListParticipantsInput{FightID: testFightID})
		s.Require().NoError(err)
		s.True(out.Participants[0].StatsHidden)
	})

	s.Run("requires fight id", func() {
		_, err := s.orchestrator.ListParticipants(s.ctx, &ListParticipantsInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestJoinFight() {
	s.Run("without account", func() {
		_, err := s.orchestrator.JoinFight(s.ctx, &JoinFightInput{FightID: testFightID})
		s.Require().Error(err)
		s.True(errors.IsNoAccountContext(err))
	})

	s.Run("finished fight", func() {
		finished := testutils.CreateTestFight(testFightID)
		finished.Status = entities.FightStatusFinished
		s.expectFight(finished)

		_, err := s.orchestrator.JoinFight(s.ctx, &JoinFightInput{AccountID: testutils.TestPlayerAccountID, FightID: testFightID})
		s.Require().Error(err)
		s.True(errors.IsFightNotFound(err))
	})

	s.Run("no character", func() {
		s.expectFight(testutils.CreateTestFight(testFightID))
		s.characterRepo.EXPECT().
			GetByAccount(gomock.Any(), character.GetByAccountInput{AccountID: testutils.TestPlayerAccountID}).
			Return(nil, errors.NotFound("character not found"))

		_, err := s.orchestrator.JoinFight(s.ctx, &JoinFightInput{AccountID: testutils.TestPlayerAccountID, FightID: testFightID})
		s.Require().Error(err)
		s.True(errors.IsMissingCharacterData(err))
	})

	s.Run("no combat stats", func() {
		s.expectFight(testutils.CreateTestFight(testFightID))
		s.characterRepo.EXPECT().
			GetByAccount(gomock.Any(), gomock.Any()).
			Return(&character.GetByAccountOutput{
				Character: testutils.CreateTestCharacter(testutils.TestCharacterID, testutils.TestPlayerAccountID, testutils.TestCharacterName),
			}, nil)
		s.characterRepo.EXPECT().
			GetCombatStats(gomock.Any(), gomock.Any()).
			Return(nil, errors.NotFound("combat stats not found"))

		_, err := s.orchestrator.JoinFight(s.ctx, &JoinFightInput{AccountID: testutils.TestPlayerAccountID, FightID: testFightID})
		s.Require().Error(err)
		s.True(errors.IsMissingCharacterData(err))
	})

	s.Run("snapshots the sheet", func() {
		s.expectFight(testutils.CreateTestFight(testFightID))
		s.expectSheet(24, 30, 14)
		s.fightRepo.EXPECT().
			UpsertPlayerParticipant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input fight.UpsertPlayerParticipantInput) (*fight.UpsertPlayerParticipantOutput, error) {
				p := input.Participant
				s.Equal(testFightID, p.FightID)
				s.Equal(testutils.TestPlayerAccountID, p.AccountID)
				s.Equal(testutils.TestCharacterName, p.Name)
				s.Equal(int32(24), p.CurrentHP)
				s.Equal(int32(30), p.MaxHP)
				s.Equal(int32(14), p.ArmorClass)
				s.Equal(int32(15), p.Initiative)
				s.False(p.IsEnemy)
				return &fight.UpsertPlayerParticipantOutput{Participant: p, Created: true}, nil
			})
		s.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e changefeed.Event) error {
				s.Equal(changefeed.TableParticipants, e.Table)
				s.Equal(changefeed.OpInsert, e.Op)
				return nil
			})

		out, err := s.orchestrator.JoinFight(s.ctx, &JoinFightInput{
			AccountID:  testutils.TestPlayerAccountID,
			FightID:    testFightID,
			Initiative: 15,
		})
		s.Require().NoError(err)
		s.True(out.Created)
	})

	s.Run("publish failure does not fail the join", func() {
		s.expectFight(testutils.CreateTestFight(testFightID))
		s.expectSheet(24, 30, 14)
		s.fightRepo.EXPECT().
			UpsertPlayerParticipant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input fight.UpsertPlayerParticipantInput) (*fight.UpsertPlayerParticipantOutput, error) {
				return &fight.UpsertPlayerParticipantOutput{Participant: input.Participant}, nil
			})
		s.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			Return(errors.Unavailable("redis down"))

		out, err := s.orchestrator.JoinFight(s.ctx, &JoinFightInput{AccountID: testutils.TestPlayerAccountID, FightID: testFightID})
		s.Require().NoError(err)
		s.False(out.Created)
	})
}

func (s *OrchestratorTestSuite) TestSetOwnHP() {
	s.Run("not joined", func() {
		s.expectFight(testutils.CreateTestFight(testFightID))
		s.fightRepo.EXPECT().
			GetPlayerParticipant(gomock.Any(), fight.GetPlayerParticipantInput{FightID: testFightID, AccountID: testutils.TestPlayerAccountID}).
			Return(nil, errors.ParticipantNotFound("account has not joined"))

		_, err := s.orchestrator.SetOwnHP(s.ctx, &SetOwnHPInput{AccountID: testutils.TestPlayerAccountID, FightID: testFightID, HP: 3})
		s.Require().Error(err)
		s.True(errors.IsParticipantNotFound(err))
	})

	s.Run("writes an absolute value", func() {
		row := testutils.CreateTestPlayerParticipant("p1", testFightID, testutils.TestPlayerAccountID, testutils.TestCharacterName, 24, 14, 12)
		s.expectFight(testutils.CreateTestFight(testFightID))
		s.fightRepo.EXPECT().
			GetPlayerParticipant(gomock.Any(), gomock.Any()).
			Return(&fight.GetPlayerParticipantOutput{Participant: row}, nil)
		s.fightRepo.EXPECT().
			UpdateParticipant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input fight.UpdateParticipantInput) (*fight.UpdateParticipantOutput, error) {
				s.Equal("p1", input.ID)
				s.Require().NotNil(input.Patch.CurrentHP)
				s.Equal(int32(-4), *input.Patch.CurrentHP)
				s.Nil(input.Patch.MaxHP)
				updated := *row
				updated.CurrentHP = *input.Patch.CurrentHP
				return &fight.UpdateParticipantOutput{Participant: &updated}, nil
			})
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		out, err := s.orchestrator.SetOwnHP(s.ctx, &SetOwnHPInput{AccountID: testutils.TestPlayerAccountID, FightID: testFightID, HP: -4})
		s.Require().NoError(err)
		s.Equal(int32(-4), out.Participant.CurrentHP)
	})
}

func (s *OrchestratorTestSuite) TestResyncStats() {
	row := testutils.CreateTestPlayerParticipant("p1", testFightID, testutils.TestPlayerAccountID, testutils.TestCharacterName, 24, 14, 12)

	s.expectFight(testutils.CreateTestFight(testFightID))
	s.fightRepo.EXPECT().
		GetPlayerParticipant(gomock.Any(), gomock.Any()).
		Return(&fight.GetPlayerParticipantOutput{Participant: row}, nil)
	s.expectSheet(10, 35, 16)
	s.fightRepo.EXPECT().
		UpdatePlayerStats(gomock.Any(), fight.UpdatePlayerStatsInput{
			ID:         "p1",
			CurrentHP:  10,
			MaxHP:      35,
			ArmorClass: 16,
			UpdatedAt:  testutils.TestEpoch,
		}).
		Return(&fight.UpdatePlayerStatsOutput{Participant: row}, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.orchestrator.ResyncStats(s.ctx, &ResyncStatsInput{AccountID: testutils.TestPlayerAccountID, FightID: testFightID})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestSetParticipantHP() {
	s.Run("player is denied", func() {
		s.expectAccount(testutils.CreateTestPlayer(testutils.TestPlayerAccountID, "Aria"))

		_, err := s.orchestrator.SetParticipantHP(s.ctx, &SetParticipantHPInput{
			AccountID:     testutils.TestPlayerAccountID,
			ParticipantID: "e1",
			HP:            0,
		})
		s.Require().Error(err)
		s.True(errors.IsPermissionDenied(err))
	})

	s.Run("purged participant", func() {
		s.expectDM()
		s.fightRepo.EXPECT().
			GetParticipant(gomock.Any(), fight.GetParticipantInput{ID: "gone"}).
			Return(nil, errors.ParticipantNotFound("participant gone not found"))

		_, err := s.orchestrator.SetParticipantHP(s.ctx, &SetParticipantHPInput{
			AccountID:     testutils.TestDMAccountID,
			ParticipantID: "gone",
		})
		s.Require().Error(err)
		s.True(errors.IsParticipantNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestAddEnemy() {
	s.Run("inactive fight", func() {
		s.expectDM()
		s.fightRepo.EXPECT().
			CreateEnemy(gomock.Any(), gomock.Any()).
			Return(nil, errors.FightNotFound(testFightID))

		_, err := s.orchestrator.AddEnemy(s.ctx, &AddEnemyInput{
			AccountID: testutils.TestDMAccountID,
			FightID:   testFightID,
			Enemy:     entities.EnemyAttributes{Name: "Orc", CurrentHP: 15, MaxHP: 15, ArmorClass: 13},
		})
		s.Require().Error(err)
		s.True(errors.IsFightNotFound(err))
	})

	s.Run("requires a name", func() {
		s.expectDM()

		_, err := s.orchestrator.AddEnemy(s.ctx, &AddEnemyInput{
			AccountID: testutils.TestDMAccountID,
			FightID:   testFightID,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("inserts the row", func() {
		s.expectDM()
		s.fightRepo.EXPECT().
			CreateEnemy(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input fight.CreateEnemyInput) (*fight.CreateEnemyOutput, error) {
				s.True(input.Participant.IsEnemy)
				s.Empty(input.Participant.AccountID)
				return &fight.CreateEnemyOutput{Participant: input.Participant}, nil
			})
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		out, err := s.orchestrator.AddEnemy(s.ctx, &AddEnemyInput{
			AccountID: testutils.TestDMAccountID,
			FightID:   testFightID,
			Enemy:     entities.EnemyAttributes{Name: "Orc", CurrentHP: 15, MaxHP: 15, ArmorClass: 13, Initiative: 9},
		})
		s.Require().NoError(err)
		s.Equal("Orc", out.Participant.Name)
		s.Equal(int32(9), out.Participant.Initiative)
	})
}

func (s *OrchestratorTestSuite) TestAddMonster() {
	goblin := &bestiary.StatBlock{Key: "goblin", Name: "Goblin", HitPoints: 7, ArmorClass: 15, Dexterity: 14}

	s.Run("rolls initiative with dex modifier", func() {
		s.expectDM()
		s.bestiary.EXPECT().GetMonster(gomock.Any(), "goblin").Return(goblin, nil)
		s.fightRepo.EXPECT().
			CreateEnemy(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input fight.CreateEnemyInput) (*fight.CreateEnemyOutput, error) {
				return &fight.CreateEnemyOutput{Participant: input.Participant}, nil
			})
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		out, err := s.orchestrator.AddMonster(s.ctx, &AddMonsterInput{
			AccountID:  testutils.TestDMAccountID,
			FightID:    testFightID,
			MonsterKey: "goblin",
			Name:       "Goblin 2",
		})
		s.Require().NoError(err)
		s.Require().NotNil(out.InitiativeRoll)
		s.Equal(int32(12), out.InitiativeRoll.Die)
		s.Equal(int32(2), out.InitiativeRoll.Modifier)
		s.Equal(int32(14), out.Participant.Initiative)
		s.Equal("Goblin 2", out.Participant.Name)
		s.Equal(int32(7), out.Participant.CurrentHP)
		s.Equal(int32(7), out.Participant.MaxHP)
		s.Equal(int32(15), out.Participant.ArmorClass)
	})

	s.Run("supplied initiative skips the roll", func() {
		s.expectDM()
		s.bestiary.EXPECT().GetMonster(gomock.Any(), "goblin").Return(goblin, nil)
		s.fightRepo.EXPECT().
			CreateEnemy(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input fight.CreateEnemyInput) (*fight.CreateEnemyOutput, error) {
				return &fight.CreateEnemyOutput{Participant: input.Participant}, nil
			})
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		initiative := int32(3)
		out, err := s.orchestrator.AddMonster(s.ctx, &AddMonsterInput{
			AccountID:  testutils.TestDMAccountID,
			FightID:    testFightID,
			MonsterKey: "goblin",
			Initiative: &initiative,
		})
		s.Require().NoError(err)
		s.Nil(out.InitiativeRoll)
		s.Equal(int32(3), out.Participant.Initiative)
		s.Equal("Goblin", out.Participant.Name)
	})

	s.Run("unknown monster", func() {
		s.expectDM()
		s.bestiary.EXPECT().GetMonster(gomock.Any(), "tarrasque-jr").Return(nil, errors.NotFound("monster not found"))

		_, err := s.orchestrator.AddMonster(s.ctx, &AddMonsterInput{
			AccountID:  testutils.TestDMAccountID,
			FightID:    testFightID,
			MonsterKey: "tarrasque-jr",
		})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestAddMonsterWithoutBestiary() {
	o, err := NewOrchestrator(&Config{
		FightRepo:     s.fightRepo,
		CharacterRepo: s.characterRepo,
		AccountRepo:   s.accountRepo,
		Publisher:     s.publisher,
		IDGenerator:   idgen.NewSequential("row"),
	})
	s.Require().NoError(err)
	s.expectDM()

	_, err = o.AddMonster(s.ctx, &AddMonsterInput{
		AccountID:  testutils.TestDMAccountID,
		FightID:    testFightID,
		MonsterKey: "goblin",
	})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestEditEnemy() {
	s.Run("player rows are rejected", func() {
		row := testutils.CreateTestPlayerParticipant("p1", testFightID, testutils.TestPlayerAccountID, testutils.TestCharacterName, 24, 14, 12)
		s.expectDM()
		s.fightRepo.EXPECT().
			GetParticipant(gomock.Any(), fight.GetParticipantInput{ID: "p1"}).
			Return(&fight.GetParticipantOutput{Participant: row}, nil)
		s.expectFight(testutils.CreateTestFight(testFightID))

		name := "Renamed"
		_, err := s.orchestrator.EditEnemy(s.ctx, &EditEnemyInput{
			AccountID:     testutils.TestDMAccountID,
			ParticipantID: "p1",
			Patch:         entities.ParticipantPatch{Name: &name},
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("finished fight", func() {
		finished := testutils.CreateTestFight(testFightID)
		finished.Status = entities.FightStatusFinished

		s.expectDM()
		s.fightRepo.EXPECT().
			GetParticipant(gomock.Any(), fight.GetParticipantInput{ID: "e1"}).
			Return(&fight.GetParticipantOutput{Participant: testutils.CreateTestEnemy("e1", testFightID, "Goblin", 7, 15, 18)}, nil)
		s.expectFight(finished)

		hp := int32(1)
		_, err := s.orchestrator.EditEnemy(s.ctx, &EditEnemyInput{
			AccountID:     testutils.TestDMAccountID,
			ParticipantID: "e1",
			Patch:         entities.ParticipantPatch{CurrentHP: &hp},
		})
		s.Require().Error(err)
		s.True(errors.IsFightNotFound(err))
	})

	s.Run("applies the patch", func() {
		enemy := testutils.CreateTestEnemy("e1", testFightID, "Goblin", 7, 15, 18)
		s.expectDM()
		s.fightRepo.EXPECT().
			GetParticipant(gomock.Any(), fight.GetParticipantInput{ID: "e1"}).
			Return(&fight.GetParticipantOutput{Participant: enemy}, nil)
		s.expectFight(testutils.CreateTestFight(testFightID))
		s.fightRepo.EXPECT().
			UpdateParticipant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input fight.UpdateParticipantInput) (*fight.UpdateParticipantOutput, error) {
				updated := *enemy
				updated.ArmorClass = *input.Patch.ArmorClass
				return &fight.UpdateParticipantOutput{Participant: &updated}, nil
			})
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		ac := int32(17)
		out, err := s.orchestrator.EditEnemy(s.ctx, &EditEnemyInput{
			AccountID:     testutils.TestDMAccountID,
			ParticipantID: "e1",
			Patch:         entities.ParticipantPatch{ArmorClass: &ac},
		})
		s.Require().NoError(err)
		s.Equal(int32(17), out.Participant.ArmorClass)
	})
}

func (s *OrchestratorTestSuite) TestDeleteEnemy() {
	enemy := testutils.CreateTestEnemy("e1", testFightID, "Goblin", 7, 15, 18)

	s.expectDM()
	s.fightRepo.EXPECT().
		GetParticipant(gomock.Any(), fight.GetParticipantInput{ID: "e1"}).
		Return(&fight.GetParticipantOutput{Participant: enemy}, nil)
	s.expectFight(testutils.CreateTestFight(testFightID))
	s.fightRepo.EXPECT().
		DeleteParticipant(gomock.Any(), fight.DeleteParticipantInput{ID: "e1"}).
		Return(&fight.DeleteParticipantOutput{FightID: testFightID}, nil)
	s.publisher.EXPECT().
		Publish(gomock.Any(), changefeed.Event{
			FightID: testFightID,
			Table:   changefeed.TableParticipants,
			Op:      changefeed.OpDelete,
			RowID:   "e1",
			Kind:    entities.ParticipantTypeEnemy,
			At:      testutils.TestEpoch,
		}).
		Return(nil)

	out, err := s.orchestrator.DeleteEnemy(s.ctx, &DeleteEnemyInput{AccountID: testutils.TestDMAccountID, ParticipantID: "e1"})
	s.Require().NoError(err)
	s.Equal(testFightID, out.FightID)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
