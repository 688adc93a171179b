package fight_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/fight"
	"github.com/KirkDiggler/fight-tracker/internal/testutils"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	db   *sql.DB
	repo fight.Repository
	ctx  context.Context
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.db = testutils.CreateTestFightDB(s.T())
	s.ctx = context.Background()

	repo, err := fight.NewSQLite(&fight.SQLiteConfig{
		DB:    s.db,
		Clock: clock.Stepping(testutils.TestEpoch, time.Second),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) startFight(id string) *entities.Fight {
	out, err := s.repo.StartFight(s.ctx, fight.StartFightInput{
		Fight: &entities.Fight{ID: id, DMID: testutils.TestDMAccountID},
	})
	s.Require().NoError(err)
	return out.Fight
}

func (s *SQLiteRepositoryTestSuite) addEnemy(id, fightID, name string, initiative int32) *entities.Participant {
	out, err := s.repo.CreateEnemy(s.ctx, fight.CreateEnemyInput{
		Participant: &entities.Participant{
			ID: id, FightID: fightID, IsEnemy: true, Name: name,
			CurrentHP: 7, MaxHP: 7, ArmorClass: 13, Initiative: initiative,
		},
	})
	s.Require().NoError(err)
	return out.Participant
}

func (s *SQLiteRepositoryTestSuite) join(id, fightID, accountID string, initiative int32) *fight.UpsertPlayerParticipantOutput {
	out, err := s.repo.UpsertPlayerParticipant(s.ctx, fight.UpsertPlayerParticipantInput{
		Participant: &entities.Participant{
			ID: id, FightID: fightID, AccountID: accountID, Name: "Aria",
			CurrentHP: 20, MaxHP: 20, ArmorClass: 15, Initiative: initiative,
		},
	})
	s.Require().NoError(err)
	return out
}

func (s *SQLiteRepositoryTestSuite) countRows(query string, args ...any) int {
	var n int
	s.Require().NoError(s.db.QueryRowContext(s.ctx, query, args...).Scan(&n))
	return n
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLite() {
	s.Run("nil config", func() {
		_, err := fight.NewSQLite(nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing db", func() {
		_, err := fight.NewSQLite(&fight.SQLiteConfig{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *SQLiteRepositoryTestSuite) TestGetActiveFight() {
	s.Run("none when empty", func() {
		out, err := s.repo.GetActiveFight(s.ctx, fight.GetActiveFightInput{})
		s.Require().NoError(err)
		s.Nil(out.Fight)
	})

	s.Run("returns the most recent fight", func() {
		s.startFight("fight-1")
		s.startFight("fight-2")

		out, err := s.repo.GetActiveFight(s.ctx, fight.GetActiveFightInput{})
		s.Require().NoError(err)
		s.Require().NotNil(out.Fight)
		s.Equal("fight-2", out.Fight.ID)
		s.Equal(entities.FightStatusActive, out.Fight.Status)
		s.Equal(testutils.TestDMAccountID, out.Fight.DMID)
	})
}

func (s *SQLiteRepositoryTestSuite) TestStartFight() {
	s.Run("validates input", func() {
		_, err := s.repo.StartFight(s.ctx, fight.StartFightInput{})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.repo.StartFight(s.ctx, fight.StartFightInput{Fight: &entities.Fight{ID: "f"}})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("finishes the previous fight and purges its roster", func() {
		first := s.startFight("fight-a")
		s.addEnemy("goblin", first.ID, "Goblin", 18)
		s.join("p-aria", first.ID, "acct-aria", 12)

		out, err := s.repo.StartFight(s.ctx, fight.StartFightInput{
			Fight: &entities.Fight{ID: "fight-b", DMID: testutils.TestDMAccountID},
		})
		s.Require().NoError(err)
		s.Equal([]string{"fight-a"}, out.FinishedFightIDs)
		s.Equal("fight-b", out.Fight.ID)

		old, err := s.repo.GetFight(s.ctx, fight.GetFightInput{ID: "fight-a"})
		s.Require().NoError(err)
		s.Equal(entities.FightStatusFinished, old.Fight.Status)
		s.NotNil(old.Fight.FinishedAt)

		s.Equal(0, s.countRows(`SELECT COUNT(*) FROM fight_participants WHERE fight_id = ?`, "fight-a"))
		s.Equal(1, s.countRows(`SELECT COUNT(*) FROM fights WHERE status = 'active'`))
	})

	s.Run("database rejects a second active row", func() {
		_, err := s.db.ExecContext(s.ctx,
			`INSERT INTO fights (id, dm_id, status, created_at) VALUES ('rogue', 'x', 'active', 0)`)
		s.Error(err)
	})
}

func (s *SQLiteRepositoryTestSuite) TestFinishFight() {
	s.Run("unknown fight", func() {
		_, err := s.repo.FinishFight(s.ctx, fight.FinishFightInput{ID: "missing"})
		s.True(errors.IsFightNotFound(err))
	})

	s.Run("purges participants", func() {
		f := s.startFight("fight-1")
		s.addEnemy("goblin", f.ID, "Goblin", 18)
		s.join("p-aria", f.ID, "acct-aria", 12)

		out, err := s.repo.FinishFight(s.ctx, fight.FinishFightInput{ID: f.ID})
		s.Require().NoError(err)
		s.Equal(entities.FightStatusFinished, out.Fight.Status)
		s.EqualValues(2, out.ParticipantsPurged)

		list, err := s.repo.ListParticipants(s.ctx, fight.ListParticipantsInput{FightID: f.ID})
		s.Require().NoError(err)
		s.Empty(list.Participants)

		active, err := s.repo.GetActiveFight(s.ctx, fight.GetActiveFightInput{})
		s.Require().NoError(err)
		s.Nil(active.Fight)
	})

	s.Run("already finished", func() {
		_, err := s.repo.FinishFight(s.ctx, fight.FinishFightInput{ID: "fight-1"})
		s.True(errors.IsFightNotFound(err))
	})
}

func (s *SQLiteRepositoryTestSuite) TestListParticipantsOrdering() {
	f := s.startFight("fight-1")
	s.addEnemy("e-3", f.ID, "Rat", 3)
	s.addEnemy("e-17", f.ID, "Ogre", 17)
	s.addEnemy("e-9", f.ID, "Wolf", 9)
	s.addEnemy("e-9b", f.ID, "Second Wolf", 9)

	out, err := s.repo.ListParticipants(s.ctx, fight.ListParticipantsInput{FightID: f.ID})
	s.Require().NoError(err)

	ids := make([]string, 0, len(out.Participants))
	for _, p := range out.Participants {
		ids = append(ids, p.ID)
	}
	s.Equal([]string{"e-17", "e-9", "e-9b", "e-3"}, ids)
}

func (s *SQLiteRepositoryTestSuite) TestUpsertPlayerParticipant() {
	f := s.startFight("fight-1")

	s.Run("first join creates the row", func() {
		out := s.join("p-1", f.ID, "acct-aria", 12)
		s.True(out.Created)
		s.Equal("p-1", out.Participant.ID)
		s.False(out.Participant.IsEnemy)
		s.Equal(int32(12), out.Participant.Initiative)
	})

	s.Run("rejoin updates the same row", func() {
		out := s.join("p-2", f.ID, "acct-aria", 4)
		s.False(out.Created)
		s.Equal("p-1", out.Participant.ID)
		s.Equal(int32(4), out.Participant.Initiative)
		s.Equal(1, s.countRows(`SELECT COUNT(*) FROM fight_participants WHERE account_id = ?`, "acct-aria"))
	})

	s.Run("enemy flag is rejected", func() {
		_, err := s.repo.UpsertPlayerParticipant(s.ctx, fight.UpsertPlayerParticipantInput{
			Participant: &entities.Participant{ID: "x", FightID: f.ID, AccountID: "a", IsEnemy: true},
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("inactive fight", func() {
		_, err := s.repo.UpsertPlayerParticipant(s.ctx, fight.UpsertPlayerParticipantInput{
			Participant: &entities.Participant{ID: "p-3", FightID: "missing", AccountID: "acct-bram"},
		})
		s.True(errors.IsFightNotFound(err))
		s.Equal(0, s.countRows(`SELECT COUNT(*) FROM fight_participants WHERE account_id = ?`, "acct-bram"))
	})
}

func (s *SQLiteRepositoryTestSuite) TestGetPlayerParticipant() {
	f := s.startFight("fight-1")
	s.join("p-1", f.ID, "acct-aria", 12)

	s.Run("found", func() {
		out, err := s.repo.GetPlayerParticipant(s.ctx, fight.GetPlayerParticipantInput{FightID: f.ID, AccountID: "acct-aria"})
		s.Require().NoError(err)
		s.Equal("p-1", out.Participant.ID)
	})

	s.Run("not joined", func() {
		_, err := s.repo.GetPlayerParticipant(s.ctx, fight.GetPlayerParticipantInput{FightID: f.ID, AccountID: "acct-bram"})
		s.True(errors.IsParticipantNotFound(err))
	})

	s.Run("requires both ids", func() {
		_, err := s.repo.GetPlayerParticipant(s.ctx, fight.GetPlayerParticipantInput{FightID: f.ID})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *SQLiteRepositoryTestSuite) TestCreateEnemy() {
	s.Run("inactive fight", func() {
		_, err := s.repo.CreateEnemy(s.ctx, fight.CreateEnemyInput{
			Participant: &entities.Participant{ID: "e", FightID: "missing", IsEnemy: true, Name: "Goblin"},
		})
		s.True(errors.IsFightNotFound(err))
	})

	s.Run("account id is rejected", func() {
		_, err := s.repo.CreateEnemy(s.ctx, fight.CreateEnemyInput{
			Participant: &entities.Participant{ID: "e", FightID: "f", AccountID: "a"},
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("stores all attributes", func() {
		f := s.startFight("fight-1")
		p := s.addEnemy("goblin", f.ID, "Goblin", 18)
		s.True(p.IsEnemy)
		s.Empty(p.AccountID)
		s.Equal("Goblin", p.Name)
		s.Equal(int32(7), p.CurrentHP)
		s.Equal(int32(7), p.MaxHP)
		s.Equal(int32(13), p.ArmorClass)
		s.Equal(int32(18), p.Initiative)
		s.Equal("enemy", p.GetType())
	})
}

func (s *SQLiteRepositoryTestSuite) TestUpdateParticipant() {
	f := s.startFight("fight-1")
	goblin := s.addEnemy("goblin", f.ID, "Goblin", 18)

	s.Run("partial update leaves other fields", func() {
		hp := int32(0)
		out, err := s.repo.UpdateParticipant(s.ctx, fight.UpdateParticipantInput{
			ID:    goblin.ID,
			Patch: entities.ParticipantPatch{CurrentHP: &hp},
		})
		s.Require().NoError(err)
		s.Equal(int32(0), out.Participant.CurrentHP)
		s.Equal(int32(7), out.Participant.MaxHP)
		s.Equal(int32(18), out.Participant.Initiative)
		s.Equal("Goblin", out.Participant.Name)
		s.True(out.Participant.UpdatedAt.After(goblin.UpdatedAt))
	})

	s.Run("no clamping", func() {
		hp := int32(-5)
		maxHP := int32(3)
		out, err := s.repo.UpdateParticipant(s.ctx, fight.UpdateParticipantInput{
			ID:    goblin.ID,
			Patch: entities.ParticipantPatch{CurrentHP: &hp, MaxHP: &maxHP},
		})
		s.Require().NoError(err)
		s.Equal(int32(-5), out.Participant.CurrentHP)
		s.Equal(int32(3), out.Participant.MaxHP)
	})

	s.Run("empty patch returns the row", func() {
		out, err := s.repo.UpdateParticipant(s.ctx, fight.UpdateParticipantInput{ID: goblin.ID})
		s.Require().NoError(err)
		s.Equal(goblin.ID, out.Participant.ID)
	})

	s.Run("missing row", func() {
		name := "Ghost"
		_, err := s.repo.UpdateParticipant(s.ctx, fight.UpdateParticipantInput{
			ID:    "missing",
			Patch: entities.ParticipantPatch{Name: &name},
		})
		s.True(errors.IsParticipantNotFound(err))
	})
}

func (s *SQLiteRepositoryTestSuite) TestUpdatePlayerStats() {
	f := s.startFight("fight-1")
	joined := s.join("p-1", f.ID, "acct-aria", 12)

	out, err := s.repo.UpdatePlayerStats(s.ctx, fight.UpdatePlayerStatsInput{
		ID: joined.Participant.ID, CurrentHP: 25, MaxHP: 28, ArmorClass: 16,
	})
	s.Require().NoError(err)
	s.Equal(int32(25), out.Participant.CurrentHP)
	s.Equal(int32(28), out.Participant.MaxHP)
	s.Equal(int32(16), out.Participant.ArmorClass)
	s.Equal(int32(12), out.Participant.Initiative)
}

func (s *SQLiteRepositoryTestSuite) TestDeleteParticipant() {
	f := s.startFight("fight-1")
	goblin := s.addEnemy("goblin", f.ID, "Goblin", 18)

	s.Run("returns the owning fight", func() {
		out, err := s.repo.DeleteParticipant(s.ctx, fight.DeleteParticipantInput{ID: goblin.ID})
		s.Require().NoError(err)
		s.Equal(f.ID, out.FightID)
	})

	s.Run("second delete is not found", func() {
		_, err := s.repo.DeleteParticipant(s.ctx, fight.DeleteParticipantInput{ID: goblin.ID})
		s.True(errors.IsParticipantNotFound(err))
	})
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
