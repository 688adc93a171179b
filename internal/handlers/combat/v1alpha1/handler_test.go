package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	combatv1alpha1 "github.com/KirkDiggler/fight-tracker/internal/api/combat/v1alpha1"
	"github.com/KirkDiggler/fight-tracker/internal/changefeed"
	"github.com/KirkDiggler/fight-tracker/internal/clients/bestiary"
	bestiarymock "github.com/KirkDiggler/fight-tracker/internal/clients/bestiary/mock"
	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	"github.com/KirkDiggler/fight-tracker/internal/handlers/combat/v1alpha1"
	"github.com/KirkDiggler/fight-tracker/internal/orchestrators/combat"
	combatmock "github.com/KirkDiggler/fight-tracker/internal/orchestrators/combat/mock"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/authctx"
	"github.com/KirkDiggler/fight-tracker/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCombat   *combatmock.MockService
	mockBestiary *bestiarymock.MockClient
	handler      *v1alpha1.Handler
	dmCtx        context.Context
	playerCtx    context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCombat = combatmock.NewMockService(s.ctrl)
	s.mockBestiary = bestiarymock.NewMockClient(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CombatService: s.mockCombat,
		Subscriber:    changefeed.NewMemory(),
		Bestiary:      s.mockBestiary,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.dmCtx = authctx.WithAccountID(context.Background(), testutils.TestDMAccountID)
	s.playerCtx = authctx.WithAccountID(context.Background(), testutils.TestPlayerAccountID)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_RequiresDependencies() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
}

func (s *HandlerTestSuite) TestGetActiveFight_None() {
	s.mockCombat.EXPECT().
		GetActiveFight(s.dmCtx, &combat.GetActiveFightInput{}).
		Return(&combat.GetActiveFightOutput{}, nil)

	resp, err := s.handler.GetActiveFight(s.dmCtx, &combatv1alpha1.GetActiveFightRequest{})
	s.Require().NoError(err)
	s.Nil(resp.Fight)
}

func (s *HandlerTestSuite) TestStartFight_PassesCallerIdentity() {
	fight := testutils.CreateTestFight("fight-2")
	s.mockCombat.EXPECT().
		StartFight(s.dmCtx, &combat.StartFightInput{AccountID: testutils.TestDMAccountID}).
		Return(&combat.StartFightOutput{Fight: fight, FinishedFightIDs: []string{"fight-1"}}, nil)

	resp, err := s.handler.StartFight(s.dmCtx, &combatv1alpha1.StartFightRequest{})
	s.Require().NoError(err)
	s.Equal("fight-2", resp.Fight.Id)
	s.Equal(combatv1alpha1.FightStatusActive, resp.Fight.Status)
	s.Equal(testutils.TestEpoch.UnixMilli(), resp.Fight.CreatedAt)
	s.Zero(resp.Fight.FinishedAt)
	s.Equal([]string{"fight-1"}, resp.FinishedFightIds)
}

func (s *HandlerTestSuite) TestStartFight_PermissionDenied() {
	s.mockCombat.EXPECT().
		StartFight(s.playerCtx, &combat.StartFightInput{AccountID: testutils.TestPlayerAccountID}).
		Return(nil, errors.PermissionDenied("account is not the DM"))

	_, err := s.handler.StartFight(s.playerCtx, &combatv1alpha1.StartFightRequest{})
	s.Require().Error(err)
	s.Equal(codes.PermissionDenied, status.Code(err))
}

func (s *HandlerTestSuite) TestJoinFight_ReasonTravelsAsErrorInfo() {
	s.mockCombat.EXPECT().
		JoinFight(s.playerCtx, &combat.JoinFightInput{
			AccountID:  testutils.TestPlayerAccountID,
			FightID:    "fight-1",
			Initiative: 14,
		}).
		Return(nil, errors.MissingCharacterData("account has no character"))

	_, err := s.handler.JoinFight(s.playerCtx, &combatv1alpha1.JoinFightRequest{FightId: "fight-1", Initiative: 14})
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())

	var reason string
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			reason = info.GetReason()
		}
	}
	s.Equal(string(errors.ReasonMissingCharacterData), reason)
}

func (s *HandlerTestSuite) TestJoinFight_RequiresFightID() {
	_, err := s.handler.JoinFight(s.playerCtx, &combatv1alpha1.JoinFightRequest{})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestListParticipants_UsesViewer() {
	enemy := testutils.CreateTestEnemy("e1", "fight-1", "Goblin", 0, 0, 18)
	enemy.MaxHP = 0
	enemy.StatsHidden = true

	s.mockCombat.EXPECT().
		ListParticipants(s.playerCtx, &combat.ListParticipantsInput{
			FightID:         "fight-1",
			ViewerAccountID: testutils.TestPlayerAccountID,
		}).
		Return(&combat.ListParticipantsOutput{Participants: []*entities.Participant{enemy}}, nil)

	resp, err := s.handler.ListParticipants(s.playerCtx, &combatv1alpha1.ListParticipantsRequest{FightId: "fight-1"})
	s.Require().NoError(err)
	s.False(resp.ViewerIsDm)
	s.Require().Len(resp.Participants, 1)
	s.True(resp.Participants[0].StatsHidden)
	s.True(resp.Participants[0].IsEnemy)
}

func (s *HandlerTestSuite) TestAddEnemy() {
	s.Run("requires enemy attributes", func() {
		_, err := s.handler.AddEnemy(s.dmCtx, &combatv1alpha1.AddEnemyRequest{FightId: "fight-1"})
		s.Require().Error(err)
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("maps attributes", func() {
		created := testutils.CreateTestEnemy("e1", "fight-1", "Goblin", 7, 13, 18)
		s.mockCombat.EXPECT().
			AddEnemy(s.dmCtx, &combat.AddEnemyInput{
				AccountID: testutils.TestDMAccountID,
				FightID:   "fight-1",
				Enemy: entities.EnemyAttributes{
					Name: "Goblin", CurrentHP: 7, MaxHP: 7, ArmorClass: 13, Initiative: 18,
				},
			}).
			Return(&combat.AddEnemyOutput{Participant: created}, nil)

		resp, err := s.handler.AddEnemy(s.dmCtx, &combatv1alpha1.AddEnemyRequest{
			FightId: "fight-1",
			Enemy:   &combatv1alpha1.EnemyAttributes{Name: "Goblin", CurrentHp: 7, MaxHp: 7, ArmorClass: 13, Initiative: 18},
		})
		s.Require().NoError(err)
		s.Equal("e1", resp.Participant.Id)
		s.Equal(int32(13), resp.Participant.ArmorClass)
	})
}

func (s *HandlerTestSuite) TestAddMonster_ReturnsRoll() {
	created := testutils.CreateTestEnemy("e2", "fight-1", "Goblin", 7, 15, 14)
	s.mockCombat.EXPECT().
		AddMonster(s.dmCtx, &combat.AddMonsterInput{
			AccountID:  testutils.TestDMAccountID,
			FightID:    "fight-1",
			MonsterKey: "goblin",
		}).
		Return(&combat.AddMonsterOutput{
			Participant:    created,
			InitiativeRoll: &combat.InitiativeRoll{Die: 12, Modifier: 2, Total: 14},
		}, nil)

	resp, err := s.handler.AddMonster(s.dmCtx, &combatv1alpha1.AddMonsterRequest{FightId: "fight-1", MonsterKey: "goblin"})
	s.Require().NoError(err)
	s.Require().NotNil(resp.InitiativeRoll)
	s.Equal(int32(14), resp.InitiativeRoll.Total)
}

func (s *HandlerTestSuite) TestEditEnemy_OnlyPassesSetFields() {
	hp := int32(0)
	updated := testutils.CreateTestEnemy("e1", "fight-1", "Goblin", 0, 15, 18)

	s.mockCombat.EXPECT().
		EditEnemy(s.dmCtx, &combat.EditEnemyInput{
			AccountID:     testutils.TestDMAccountID,
			ParticipantID: "e1",
			Patch:         entities.ParticipantPatch{CurrentHP: &hp},
		}).
		Return(&combat.EditEnemyOutput{Participant: updated}, nil)

	resp, err := s.handler.EditEnemy(s.dmCtx, &combatv1alpha1.EditEnemyRequest{ParticipantId: "e1", CurrentHp: &hp})
	s.Require().NoError(err)
	s.Zero(resp.Participant.CurrentHp)
}

func (s *HandlerTestSuite) TestDeleteEnemy_NotFound() {
	s.mockCombat.EXPECT().
		DeleteEnemy(s.dmCtx, &combat.DeleteEnemyInput{AccountID: testutils.TestDMAccountID, ParticipantID: "gone"}).
		Return(nil, errors.ParticipantNotFound("participant gone not found"))

	_, err := s.handler.DeleteEnemy(s.dmCtx, &combatv1alpha1.DeleteEnemyRequest{ParticipantId: "gone"})
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
	s.True(errors.IsParticipantNotFound(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestListMonsters() {
	s.mockBestiary.EXPECT().
		ListMonsters(s.dmCtx).
		Return([]*bestiary.MonsterRef{{Key: "goblin", Name: "Goblin"}}, nil)

	resp, err := s.handler.ListMonsters(s.dmCtx, &combatv1alpha1.ListMonstersRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Monsters, 1)
	s.Equal("goblin", resp.Monsters[0].Key)
}
