package fight

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/sqlitemigrate"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/fight/migrations"
	"github.com/KirkDiggler/fight-tracker/internal/sqlite"
)

const (
	fightColumns       = `id, dm_id, status, created_at, finished_at`
	participantColumns = `id, fight_id, is_enemy, account_id, name, current_hp, max_hp, armor_class, initiative, created_at, updated_at`

	errFightIDEmpty       = "fight ID cannot be empty"
	errParticipantIDEmpty = "participant ID cannot be empty"
	errFightNil           = "fight cannot be nil"
	errParticipantNil     = "participant cannot be nil"
)

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite fight repository
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a new SQLite-backed fight repository. Call Migrate first.
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: c,
	}, nil
}

// Migrate applies the embedded fight schema
func Migrate(ctx context.Context, db *sql.DB) error {
	if err := sqlitemigrate.Apply(ctx, db, migrations.FS, ""); err != nil {
		return errors.StoreError(err, "failed to migrate fight schema")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFight(row rowScanner) (*entities.Fight, error) {
	var (
		f          entities.Fight
		status     string
		createdAt  int64
		finishedAt sql.NullInt64
	)
	if err := row.Scan(&f.ID, &f.DMID, &status, &createdAt, &finishedAt); err != nil {
		return nil, err
	}
	f.Status = entities.FightStatus(status)
	f.CreatedAt = sqlite.FromMillis(createdAt)
	if finishedAt.Valid {
		t := sqlite.FromMillis(finishedAt.Int64)
		f.FinishedAt = &t
	}
	return &f, nil
}

func scanParticipant(row rowScanner) (*entities.Participant, error) {
	var (
		p         entities.Participant
		accountID sql.NullString
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(
		&p.ID, &p.FightID, &p.IsEnemy, &accountID, &p.Name,
		&p.CurrentHP, &p.MaxHP, &p.ArmorClass, &p.Initiative,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	p.AccountID = accountID.String
	p.CreatedAt = sqlite.FromMillis(createdAt)
	p.UpdatedAt = sqlite.FromMillis(updatedAt)
	return &p, nil
}

func (r *sqliteRepository) GetActiveFight(ctx context.Context, _ GetActiveFightInput) (*GetActiveFightOutput, error) {
	// the partial unique index allows one active row; order anyway so a
	// schema without it still resolves to the newest fight
	row := r.db.QueryRowContext(ctx,
		`SELECT `+fightColumns+` FROM fights WHERE status = 'active' ORDER BY created_at DESC, seq DESC LIMIT 1`)
	f, err := scanFight(row)
	if err == sql.ErrNoRows {
		return &GetActiveFightOutput{}, nil
	}
	if err != nil {
		return nil, errors.StoreError(err, "failed to get active fight")
	}
	return &GetActiveFightOutput{Fight: f}, nil
}

func (r *sqliteRepository) GetFight(ctx context.Context, input GetFightInput) (*GetFightOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errFightIDEmpty)
	}

	f, err := r.getFight(ctx, r.db, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetFightOutput{Fight: f}, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *sqliteRepository) getFight(ctx context.Context, q queryer, id string) (*entities.Fight, error) {
	f, err := scanFight(q.QueryRowContext(ctx, `SELECT `+fightColumns+` FROM fights WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, errors.FightNotFound(id)
	}
	if err != nil {
		return nil, errors.StoreError(err, "failed to get fight")
	}
	return f, nil
}

func (r *sqliteRepository) getParticipant(ctx context.Context, q queryer, id string) (*entities.Participant, error) {
	p, err := scanParticipant(q.QueryRowContext(ctx,
		`SELECT `+participantColumns+` FROM fight_participants WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, errors.ParticipantNotFound("participant " + id + " not found")
	}
	if err != nil {
		return nil, errors.StoreError(err, "failed to get participant")
	}
	return p, nil
}

func (r *sqliteRepository) ListParticipants(ctx context.Context, input ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input.FightID == "" {
		return nil, errors.InvalidArgument(errFightIDEmpty)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+participantColumns+` FROM fight_participants
		  WHERE fight_id = ?
		  ORDER BY initiative DESC, seq ASC`, input.FightID)
	if err != nil {
		return nil, errors.StoreError(err, "failed to list participants")
	}
	defer func() { _ = rows.Close() }()

	participants := make([]*entities.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, errors.StoreError(err, "failed to scan participant")
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.StoreError(err, "failed to list participants")
	}

	return &ListParticipantsOutput{Participants: participants}, nil
}

func (r *sqliteRepository) GetParticipant(ctx context.Context, input GetParticipantInput) (*GetParticipantOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errParticipantIDEmpty)
	}

	p, err := r.getParticipant(ctx, r.db, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetParticipantOutput{Participant: p}, nil
}

func (r *sqliteRepository) GetPlayerParticipant(ctx context.Context, input GetPlayerParticipantInput) (*GetPlayerParticipantOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("fight_id", input.FightID, vb)
	errors.ValidateRequired("account_id", input.AccountID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	p, err := scanParticipant(r.db.QueryRowContext(ctx,
		`SELECT `+participantColumns+` FROM fight_participants
		  WHERE fight_id = ? AND account_id = ? AND is_enemy = 0`,
		input.FightID, input.AccountID))
	if err == sql.ErrNoRows {
		return nil, errors.ParticipantNotFound("account " + input.AccountID + " has not joined fight " + input.FightID)
	}
	if err != nil {
		return nil, errors.StoreError(err, "failed to get player participant")
	}
	return &GetPlayerParticipantOutput{Participant: p}, nil
}

func (r *sqliteRepository) StartFight(ctx context.Context, input StartFightInput) (*StartFightOutput, error) {
	if input.Fight == nil {
		return nil, errors.InvalidArgument(errFightNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.Fight.ID, vb)
	errors.ValidateRequired("dm_id", input.Fight.DMID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	createdAt := input.Fight.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.clock.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.StoreError(err, "failed to begin start fight")
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `SELECT id FROM fights WHERE status = 'active'`)
	if err != nil {
		return nil, errors.StoreError(err, "failed to find active fights")
	}
	finished := make([]string, 0, 1)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return nil, errors.StoreError(err, "failed to scan active fight")
		}
		finished = append(finished, id)
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.StoreError(err, "failed to find active fights")
	}

	if len(finished) > 0 {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM fight_participants
			  WHERE fight_id IN (SELECT id FROM fights WHERE status = 'active')`); err != nil {
			return nil, errors.StoreError(err, "failed to purge participants")
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE fights SET status = 'finished', finished_at = ? WHERE status = 'active'`,
			sqlite.ToMillis(createdAt)); err != nil {
			return nil, errors.StoreError(err, "failed to finish active fights")
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO fights (id, dm_id, status, created_at) VALUES (?, ?, 'active', ?)`,
		input.Fight.ID, input.Fight.DMID, sqlite.ToMillis(createdAt)); err != nil {
		if sqlite.IsUniqueViolation(err) {
			return nil, errors.AlreadyExists("another fight became active concurrently")
		}
		return nil, errors.StoreError(err, "failed to insert fight")
	}

	if err := tx.Commit(); err != nil {
		if sqlite.IsUniqueViolation(err) {
			return nil, errors.AlreadyExists("another fight became active concurrently")
		}
		return nil, errors.StoreError(err, "failed to commit start fight")
	}

	slog.DebugContext(ctx, "started fight",
		"fight_id", input.Fight.ID,
		"finished_count", len(finished))

	return &StartFightOutput{
		Fight: &entities.Fight{
			ID:        input.Fight.ID,
			DMID:      input.Fight.DMID,
			Status:    entities.FightStatusActive,
			CreatedAt: sqlite.FromMillis(sqlite.ToMillis(createdAt)),
		},
		FinishedFightIDs: finished,
	}, nil
}

func (r *sqliteRepository) FinishFight(ctx context.Context, input FinishFightInput) (*FinishFightOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errFightIDEmpty)
	}

	finishedAt := input.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = r.clock.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.StoreError(err, "failed to begin finish fight")
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE fights SET status = 'finished', finished_at = ? WHERE id = ? AND status = 'active'`,
		sqlite.ToMillis(finishedAt), input.ID)
	if err != nil {
		return nil, errors.StoreError(err, "failed to finish fight")
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, errors.StoreError(err, "failed to finish fight")
	} else if n == 0 {
		return nil, errors.FightNotFound(input.ID)
	}

	res, err = tx.ExecContext(ctx, `DELETE FROM fight_participants WHERE fight_id = ?`, input.ID)
	if err != nil {
		return nil, errors.StoreError(err, "failed to purge participants")
	}
	purged, err := res.RowsAffected()
	if err != nil {
		return nil, errors.StoreError(err, "failed to purge participants")
	}

	f, err := r.getFight(ctx, tx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.StoreError(err, "failed to commit finish fight")
	}

	slog.DebugContext(ctx, "finished fight",
		"fight_id", input.ID,
		"participants_purged", purged)

	return &FinishFightOutput{Fight: f, ParticipantsPurged: purged}, nil
}

func (r *sqliteRepository) UpsertPlayerParticipant(ctx context.Context, input UpsertPlayerParticipantInput) (*UpsertPlayerParticipantOutput, error) {
	p := input.Participant
	if p == nil {
		return nil, errors.InvalidArgument(errParticipantNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", p.ID, vb)
	errors.ValidateRequired("fight_id", p.FightID, vb)
	errors.ValidateRequired("account_id", p.AccountID, vb)
	if p.IsEnemy {
		vb.InvalidField("is_enemy", "player rows cannot be enemies")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := p.UpdatedAt
	if now.IsZero() {
		now = r.clock.Now()
	}

	// the insert only runs while the fight is active, so a racing finish
	// cannot leave an orphaned row behind
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO fight_participants (`+participantColumns+`)
		 SELECT ?, ?, 0, ?, ?, ?, ?, ?, ?, ?, ?
		  WHERE EXISTS (SELECT 1 FROM fights WHERE id = ? AND status = 'active')
		 ON CONFLICT (fight_id, account_id) WHERE is_enemy = 0 DO UPDATE SET
		   name = excluded.name,
		   current_hp = excluded.current_hp,
		   max_hp = excluded.max_hp,
		   armor_class = excluded.armor_class,
		   initiative = excluded.initiative,
		   updated_at = excluded.updated_at`,
		p.ID, p.FightID, p.AccountID, p.Name,
		p.CurrentHP, p.MaxHP, p.ArmorClass, p.Initiative,
		sqlite.ToMillis(now), sqlite.ToMillis(now),
		p.FightID)
	if err != nil {
		return nil, errors.StoreError(err, "failed to upsert participant")
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, errors.StoreError(err, "failed to upsert participant")
	} else if n == 0 {
		return nil, errors.FightNotFound(p.FightID)
	}

	out, err := r.GetPlayerParticipant(ctx, GetPlayerParticipantInput{FightID: p.FightID, AccountID: p.AccountID})
	if err != nil {
		return nil, err
	}

	return &UpsertPlayerParticipantOutput{
		Participant: out.Participant,
		Created:     out.Participant.ID == p.ID,
	}, nil
}

func (r *sqliteRepository) UpdatePlayerStats(ctx context.Context, input UpdatePlayerStatsInput) (*UpdatePlayerStatsOutput, error) {
	p, err := r.update(ctx, input.ID, entities.ParticipantPatch{
		CurrentHP:  &input.CurrentHP,
		MaxHP:      &input.MaxHP,
		ArmorClass: &input.ArmorClass,
	}, input.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &UpdatePlayerStatsOutput{Participant: p}, nil
}

func (r *sqliteRepository) CreateEnemy(ctx context.Context, input CreateEnemyInput) (*CreateEnemyOutput, error) {
	p := input.Participant
	if p == nil {
		return nil, errors.InvalidArgument(errParticipantNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", p.ID, vb)
	errors.ValidateRequired("fight_id", p.FightID, vb)
	if p.AccountID != "" {
		vb.InvalidField("account_id", "enemies are not linked to accounts")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := p.CreatedAt
	if now.IsZero() {
		now = r.clock.Now()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO fight_participants (`+participantColumns+`)
		 SELECT ?, ?, 1, NULL, ?, ?, ?, ?, ?, ?, ?
		  WHERE EXISTS (SELECT 1 FROM fights WHERE id = ? AND status = 'active')`,
		p.ID, p.FightID, p.Name,
		p.CurrentHP, p.MaxHP, p.ArmorClass, p.Initiative,
		sqlite.ToMillis(now), sqlite.ToMillis(now),
		p.FightID)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return nil, errors.AlreadyExists("participant " + p.ID + " already exists")
		}
		return nil, errors.StoreError(err, "failed to create enemy")
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, errors.StoreError(err, "failed to create enemy")
	} else if n == 0 {
		return nil, errors.FightNotFound(p.FightID)
	}

	created, err := r.getParticipant(ctx, r.db, p.ID)
	if err != nil {
		return nil, err
	}
	return &CreateEnemyOutput{Participant: created}, nil
}

func (r *sqliteRepository) UpdateParticipant(ctx context.Context, input UpdateParticipantInput) (*UpdateParticipantOutput, error) {
	p, err := r.update(ctx, input.ID, input.Patch, input.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &UpdateParticipantOutput{Participant: p}, nil
}

func (r *sqliteRepository) update(ctx context.Context, id string, patch entities.ParticipantPatch, updatedAt time.Time) (*entities.Participant, error) {
	if id == "" {
		return nil, errors.InvalidArgument(errParticipantIDEmpty)
	}
	if patch.IsEmpty() {
		return r.getParticipant(ctx, r.db, id)
	}
	if updatedAt.IsZero() {
		updatedAt = r.clock.Now()
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.CurrentHP != nil {
		sets = append(sets, "current_hp = ?")
		args = append(args, *patch.CurrentHP)
	}
	if patch.MaxHP != nil {
		sets = append(sets, "max_hp = ?")
		args = append(args, *patch.MaxHP)
	}
	if patch.ArmorClass != nil {
		sets = append(sets, "armor_class = ?")
		args = append(args, *patch.ArmorClass)
	}
	if patch.Initiative != nil {
		sets = append(sets, "initiative = ?")
		args = append(args, *patch.Initiative)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, sqlite.ToMillis(updatedAt), id)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.StoreError(err, "failed to begin participant update")
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE fight_participants SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, errors.StoreError(err, "failed to update participant")
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, errors.StoreError(err, "failed to update participant")
	} else if n == 0 {
		return nil, errors.ParticipantNotFound("participant " + id + " not found")
	}

	p, err := r.getParticipant(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.StoreError(err, "failed to commit participant update")
	}
	return p, nil
}

func (r *sqliteRepository) DeleteParticipant(ctx context.Context, input DeleteParticipantInput) (*DeleteParticipantOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errParticipantIDEmpty)
	}

	var fightID string
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM fight_participants WHERE id = ? RETURNING fight_id`, input.ID).Scan(&fightID)
	if err == sql.ErrNoRows {
		return nil, errors.ParticipantNotFound("participant " + input.ID + " not found")
	}
	if err != nil {
		return nil, errors.StoreError(err, "failed to delete participant")
	}

	return &DeleteParticipantOutput{FightID: fightID}, nil
}
