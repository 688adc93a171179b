// Package combat implements the fight lifecycle: starting and finishing the
// single active fight, player joins with stat snapshots, and DM enemy management
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/fight-tracker/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/fight-tracker/internal/changefeed"
	"github.com/KirkDiggler/fight-tracker/internal/clients/bestiary"
	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/telemetry"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/account"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/character"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/fight"
)

const tracerName = "github.com/KirkDiggler/fight-tracker/internal/orchestrators/combat"

// Service defines the interface for combat operations
type Service interface {
	// Queries
	GetActiveFight(ctx context.Context, input *GetActiveFightInput) (*GetActiveFightOutput, error)
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// Lifecycle (DM)
	StartFight(ctx context.Context, input *StartFightInput) (*StartFightOutput, error)
	FinishFight(ctx context.Context, input *FinishFightInput) (*FinishFightOutput, error)

	// Players
	JoinFight(ctx context.Context, input *JoinFightInput) (*JoinFightOutput, error)
	SetOwnHP(ctx context.Context, input *SetOwnHPInput) (*SetOwnHPOutput, error)
	ResyncStats(ctx context.Context, input *ResyncStatsInput) (*ResyncStatsOutput, error)

	// Enemies and HP (DM)
	SetParticipantHP(ctx context.Context, input *SetParticipantHPInput) (*SetParticipantHPOutput, error)
	AddEnemy(ctx context.Context, input *AddEnemyInput) (*AddEnemyOutput, error)
	AddMonster(ctx context.Context, input *AddMonsterInput) (*AddMonsterOutput, error)
	EditEnemy(ctx context.Context, input *EditEnemyInput) (*EditEnemyOutput, error)
	DeleteEnemy(ctx context.Context, input *DeleteEnemyInput) (*DeleteEnemyOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	FightRepo     fight.Repository
	CharacterRepo character.Repository
	AccountRepo   account.Repository
	Publisher     changefeed.Publisher
	IDGenerator   idgen.Generator

	// Bestiary is optional; AddMonster is unavailable without it
	Bestiary bestiary.Client
	// Clock defaults to wall time
	Clock clock.Clock
	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.FightRepo == nil {
		vb.RequiredField("FightRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.AccountRepo == nil {
		vb.RequiredField("AccountRepo")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	fightRepo     fight.Repository
	characterRepo character.Repository
	accountRepo   account.Repository
	publisher     changefeed.Publisher
	bestiary      bestiary.Client
	idGen         idgen.Generator
	clock         clock.Clock
	roller        dice.Roller
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		fightRepo:     cfg.FightRepo,
		characterRepo: cfg.CharacterRepo,
		accountRepo:   cfg.AccountRepo,
		publisher:     cfg.Publisher,
		bestiary:      cfg.Bestiary,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		roller:        cfg.DiceRoller,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}

	return o, nil
}

// GetActiveFight returns the most recently created active fight, if any
func (o *orchestrator) GetActiveFight(ctx context.Context, input *GetActiveFightInput) (_ *GetActiveFightOutput, err error) {
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.GetActiveFight")
	defer func() { telemetry.End(span, err) }()

	out, err := o.fightRepo.GetActiveFight(ctx, fight.GetActiveFightInput{})
	if err != nil {
		return nil, errors.StoreError(err, "failed to get active fight")
	}

	return &GetActiveFightOutput{Fight: out.Fight}, nil
}

// ListParticipants returns the fight's roster, redacted for non-DM viewers
func (o *orchestrator) ListParticipants(ctx context.Context, input *ListParticipantsInput) (_ *ListParticipantsOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.ListParticipants",
		"fight_id", input.FightID, "account_id", input.ViewerAccountID)
	defer func() { telemetry.End(span, err) }()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("fight_id", input.FightID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	viewerIsDM, err := o.isDM(ctx, input.ViewerAccountID)
	if err != nil {
		return nil, err
	}

	out, err := o.fightRepo.ListParticipants(ctx, fight.ListParticipantsInput{FightID: input.FightID})
	if err != nil {
		return nil, errors.StoreError(err, "failed to list participants")
	}

	return &ListParticipantsOutput{
		Participants: Redact(out.Participants, viewerIsDM),
		ViewerIsDM:   viewerIsDM,
	}, nil
}

// StartFight finishes any active fight, purges its roster and opens a new one
func (o *orchestrator) StartFight(ctx context.Context, input *StartFightInput) (_ *StartFightOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.StartFight", "account_id", input.AccountID)
	defer func() { telemetry.End(span, err) }()

	if err := o.requireDM(ctx, input.AccountID); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	out, err := o.fightRepo.StartFight(ctx, fight.StartFightInput{
		Fight: &entities.Fight{
			ID:        o.idGen.Generate(),
			DMID:      input.AccountID,
			Status:    entities.FightStatusActive,
			CreatedAt: now,
		},
	})
	if err != nil {
		return nil, errors.StoreError(err, "failed to start fight")
	}

	for _, id := range out.FinishedFightIDs {
		o.publish(ctx, changefeed.RowChanged(id, changefeed.TableFights, changefeed.OpUpdate, &entities.Fight{ID: id}, now))
	}
	o.publish(ctx, changefeed.RowChanged(out.Fight.ID, changefeed.TableFights, changefeed.OpInsert, out.Fight, now))

	slog.InfoContext(ctx, "fight started",
		"fight_id", out.Fight.ID,
		"dm_id", input.AccountID,
		"finished", len(out.FinishedFightIDs))

	return &StartFightOutput{Fight: out.Fight, FinishedFightIDs: out.FinishedFightIDs}, nil
}

// FinishFight closes an active fight and purges its participants
func (o *orchestrator) FinishFight(ctx context.Context, input *FinishFightInput) (_ *FinishFightOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.FinishFight",
		"fight_id", input.FightID, "account_id", input.AccountID)
	defer func() { telemetry.End(span, err) }()

	if err := o.requireDM(ctx, input.AccountID); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("fight_id", input.FightID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	out, err := o.fightRepo.FinishFight(ctx, fight.FinishFightInput{ID: input.FightID, FinishedAt: now})
	if err != nil {
		return nil, errors.StoreError(err, "failed to finish fight")
	}

	o.publish(ctx, changefeed.RowChanged(input.FightID, changefeed.TableFights, changefeed.OpUpdate, &entities.Fight{ID: input.FightID}, now))

	slog.InfoContext(ctx, "fight finished", "fight_id", input.FightID, "purged", out.ParticipantsPurged)

	return &FinishFightOutput{Fight: out.Fight, ParticipantsPurged: out.ParticipantsPurged}, nil
}

// JoinFight snapshots the caller's character into the fight. A repeated join
// replaces the caller's row rather than adding a second one.
func (o *orchestrator) JoinFight(ctx context.Context, input *JoinFightInput) (_ *JoinFightOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.JoinFight",
		"fight_id", input.FightID, "account_id", input.AccountID)
	defer func() { telemetry.End(span, err) }()

	if input.AccountID == "" {
		return nil, errors.NoAccountContext()
	}
	if err := o.requireActive(ctx, input.FightID); err != nil {
		return nil, err
	}

	char, stats, err := o.loadSheet(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	out, err := o.fightRepo.UpsertPlayerParticipant(ctx, fight.UpsertPlayerParticipantInput{
		Participant: &entities.Participant{
			ID:         o.idGen.Generate(),
			FightID:    input.FightID,
			AccountID:  input.AccountID,
			Name:       char.Name,
			CurrentHP:  stats.CurrentHP,
			MaxHP:      stats.MaxHP,
			ArmorClass: stats.ArmorClass,
			Initiative: input.Initiative,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	})
	if err != nil {
		return nil, errors.StoreError(err, "failed to join fight")
	}

	op := changefeed.OpUpdate
	if out.Created {
		op = changefeed.OpInsert
	}
	o.publishParticipant(ctx, out.Participant, op)

	slog.DebugContext(ctx, "participant joined",
		"fight_id", input.FightID,
		"participant_id", out.Participant.ID,
		"created", out.Created)

	return &JoinFightOutput{Participant: out.Participant, Created: out.Created}, nil
}

// SetOwnHP sets the caller's current HP to an absolute value
func (o *orchestrator) SetOwnHP(ctx context.Context, input *SetOwnHPInput) (_ *SetOwnHPOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.SetOwnHP",
		"fight_id", input.FightID, "account_id", input.AccountID)
	defer func() { telemetry.End(span, err) }()

	if input.AccountID == "" {
		return nil, errors.NoAccountContext()
	}
	if err := o.requireActive(ctx, input.FightID); err != nil {
		return nil, err
	}

	row, err := o.fightRepo.GetPlayerParticipant(ctx, fight.GetPlayerParticipantInput{
		FightID:   input.FightID,
		AccountID: input.AccountID,
	})
	if err != nil {
		return nil, errors.StoreError(err, "failed to find participant")
	}

	hp := input.HP
	updated, err := o.update(ctx, row.Participant.ID, entities.ParticipantPatch{CurrentHP: &hp})
	if err != nil {
		return nil, err
	}

	return &SetOwnHPOutput{Participant: updated}, nil
}

// ResyncStats re-reads the caller's sheet and overwrites HP, max HP and AC
func (o *orchestrator) ResyncStats(ctx context.Context, input *ResyncStatsInput) (_ *ResyncStatsOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.ResyncStats",
		"fight_id", input.FightID, "account_id", input.AccountID)
	defer func() { telemetry.End(span, err) }()

	if input.AccountID == "" {
		return nil, errors.NoAccountContext()
	}
	if err := o.requireActive(ctx, input.FightID); err != nil {
		return nil, err
	}

	row, err := o.fightRepo.GetPlayerParticipant(ctx, fight.GetPlayerParticipantInput{
		FightID:   input.FightID,
		AccountID: input.AccountID,
	})
	if err != nil {
		return nil, errors.StoreError(err, "failed to find participant")
	}

	_, stats, err := o.loadSheet(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	out, err := o.fightRepo.UpdatePlayerStats(ctx, fight.UpdatePlayerStatsInput{
		ID:         row.Participant.ID,
		CurrentHP:  stats.CurrentHP,
		MaxHP:      stats.MaxHP,
		ArmorClass: stats.ArmorClass,
		UpdatedAt:  o.clock.Now(),
	})
	if err != nil {
		return nil, errors.StoreError(err, "failed to resync stats")
	}

	o.publishParticipant(ctx, out.Participant, changefeed.OpUpdate)

	return &ResyncStatsOutput{Participant: out.Participant}, nil
}

// SetParticipantHP lets the DM set any participant's current HP
func (o *orchestrator) SetParticipantHP(ctx context.Context, input *SetParticipantHPInput) (_ *SetParticipantHPOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.SetParticipantHP",
		"participant_id", input.ParticipantID, "account_id", input.AccountID)
	defer func() { telemetry.End(span, err) }()

	if err := o.requireDM(ctx, input.AccountID); err != nil {
		return nil, err
	}

	if _, err := o.activeParticipant(ctx, input.ParticipantID); err != nil {
		return nil, err
	}

	hp := input.HP
	updated, err := o.update(ctx, input.ParticipantID, entities.ParticipantPatch{CurrentHP: &hp})
	if err != nil {
		return nil, err
	}

	return &SetParticipantHPOutput{Participant: updated}, nil
}

// AddEnemy inserts an enemy with a full attribute set
func (o *orchestrator) AddEnemy(ctx context.Context, input *AddEnemyInput) (_ *AddEnemyOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.AddEnemy",
		"fight_id", input.FightID, "account_id", input.AccountID)
	defer func() { telemetry.End(span, err) }()

	if err := o.requireDM(ctx, input.AccountID); err != nil {
		return nil, err
	}

	created, err := o.createEnemy(ctx, input.FightID, input.Enemy)
	if err != nil {
		return nil, err
	}

	return &AddEnemyOutput{Participant: created}, nil
}

// AddMonster looks up a stat block and inserts it as an enemy. Initiative is
// rolled as 1d20 plus the DEX modifier unless the caller supplies one.
func (o *orchestrator) AddMonster(ctx context.Context, input *AddMonsterInput) (_ *AddMonsterOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.AddMonster",
		"fight_id", input.FightID, "monster", input.MonsterKey, "account_id", input.AccountID)
	defer func() { telemetry.End(span, err) }()

	if err := o.requireDM(ctx, input.AccountID); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monster_key", input.MonsterKey, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if o.bestiary == nil {
		return nil, errors.Unavailable("bestiary is not configured")
	}

	block, err := o.bestiary.GetMonster(ctx, input.MonsterKey)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up monster %s", input.MonsterKey)
	}

	var roll *InitiativeRoll
	initiative := int32(0)
	if input.Initiative != nil {
		initiative = *input.Initiative
	} else {
		die, err := o.roller.Roll(20)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll initiative")
		}
		mod := block.DexterityModifier()
		roll = &InitiativeRoll{Die: int32(die), Modifier: mod, Total: int32(die) + mod}
		initiative = roll.Total
	}

	name := input.Name
	if name == "" {
		name = block.Name
	}

	created, err := o.createEnemy(ctx, input.FightID, entities.EnemyAttributes{
		Name:       name,
		CurrentHP:  block.HitPoints,
		MaxHP:      block.HitPoints,
		ArmorClass: block.ArmorClass,
		Initiative: initiative,
	})
	if err != nil {
		return nil, err
	}

	return &AddMonsterOutput{Participant: created, InitiativeRoll: roll}, nil
}

// EditEnemy applies a partial update to an enemy row
func (o *orchestrator) EditEnemy(ctx context.Context, input *EditEnemyInput) (_ *EditEnemyOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.EditEnemy",
		"participant_id", input.ParticipantID, "account_id", input.AccountID)
	defer func() { telemetry.End(span, err) }()

	if err := o.requireDM(ctx, input.AccountID); err != nil {
		return nil, err
	}

	row, err := o.activeParticipant(ctx, input.ParticipantID)
	if err != nil {
		return nil, err
	}
	if !row.IsEnemy {
		return nil, errors.InvalidArgumentf("participant %s is not an enemy", input.ParticipantID)
	}
	if input.Patch.Name != nil && *input.Patch.Name == "" {
		return nil, errors.InvalidArgument("name cannot be empty")
	}
	if input.Patch.IsEmpty() {
		return &EditEnemyOutput{Participant: row}, nil
	}

	updated, err := o.update(ctx, input.ParticipantID, input.Patch)
	if err != nil {
		return nil, err
	}

	return &EditEnemyOutput{Participant: updated}, nil
}

// DeleteEnemy removes an enemy row
func (o *orchestrator) DeleteEnemy(ctx context.Context, input *DeleteEnemyInput) (_ *DeleteEnemyOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := telemetry.StartSpan(ctx, tracerName, "combat.DeleteEnemy",
		"participant_id", input.ParticipantID, "account_id", input.AccountID)
	defer func() { telemetry.End(span, err) }()

	if err := o.requireDM(ctx, input.AccountID); err != nil {
		return nil, err
	}

	row, err := o.activeParticipant(ctx, input.ParticipantID)
	if err != nil {
		return nil, err
	}
	if !row.IsEnemy {
		return nil, errors.InvalidArgumentf("participant %s is not an enemy", input.ParticipantID)
	}

	out, err := o.fightRepo.DeleteParticipant(ctx, fight.DeleteParticipantInput{ID: input.ParticipantID})
	if err != nil {
		return nil, errors.StoreError(err, "failed to delete enemy")
	}

	o.publish(ctx, changefeed.RowChanged(out.FightID, changefeed.TableParticipants, changefeed.OpDelete, row, o.clock.Now()))

	return &DeleteEnemyOutput{FightID: out.FightID}, nil
}

func (o *orchestrator) createEnemy(ctx context.Context, fightID string, attrs entities.EnemyAttributes) (*entities.Participant, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("fight_id", fightID, vb)
	errors.ValidateRequired("name", attrs.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	out, err := o.fightRepo.CreateEnemy(ctx, fight.CreateEnemyInput{
		Participant: &entities.Participant{
			ID:         o.idGen.Generate(),
			FightID:    fightID,
			IsEnemy:    true,
			Name:       attrs.Name,
			CurrentHP:  attrs.CurrentHP,
			MaxHP:      attrs.MaxHP,
			ArmorClass: attrs.ArmorClass,
			Initiative: attrs.Initiative,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	})
	if err != nil {
		return nil, errors.StoreError(err, "failed to add enemy")
	}

	o.publishParticipant(ctx, out.Participant, changefeed.OpInsert)

	slog.DebugContext(ctx, "enemy added",
		"fight_id", fightID,
		"participant_id", out.Participant.ID,
		"name", out.Participant.Name)

	return out.Participant, nil
}

func (o *orchestrator) update(ctx context.Context, participantID string, patch entities.ParticipantPatch) (*entities.Participant, error) {
	out, err := o.fightRepo.UpdateParticipant(ctx, fight.UpdateParticipantInput{
		ID:        participantID,
		Patch:     patch,
		UpdatedAt: o.clock.Now(),
	})
	if err != nil {
		return nil, errors.StoreError(err, "failed to update participant")
	}

	o.publishParticipant(ctx, out.Participant, changefeed.OpUpdate)
	return out.Participant, nil
}

// activeParticipant loads a row and confirms its fight is still active
func (o *orchestrator) activeParticipant(ctx context.Context, participantID string) (*entities.Participant, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("participant_id", participantID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.fightRepo.GetParticipant(ctx, fight.GetParticipantInput{ID: participantID})
	if err != nil {
		return nil, errors.StoreError(err, "failed to get participant")
	}
	if err := o.requireActive(ctx, out.Participant.FightID); err != nil {
		return nil, err
	}

	return out.Participant, nil
}

func (o *orchestrator) requireActive(ctx context.Context, fightID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("fight_id", fightID, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	out, err := o.fightRepo.GetFight(ctx, fight.GetFightInput{ID: fightID})
	if err != nil {
		return errors.StoreError(err, "failed to get fight")
	}
	if !out.Fight.IsActive() {
		return errors.FightNotFound(fightID)
	}
	return nil
}

// loadSheet reads the character and combat block owned by an account
func (o *orchestrator) loadSheet(ctx context.Context, accountID string) (*entities.Character, *entities.CombatStats, error) {
	charOut, err := o.characterRepo.GetByAccount(ctx, character.GetByAccountInput{AccountID: accountID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil, errors.MissingCharacterData("account has no character")
		}
		return nil, nil, errors.StoreError(err, "failed to get character")
	}

	statsOut, err := o.characterRepo.GetCombatStats(ctx, character.GetCombatStatsInput{CharacterID: charOut.Character.ID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil, errors.MissingCharacterData("character has no combat stats")
		}
		return nil, nil, errors.StoreError(err, "failed to get combat stats")
	}

	return charOut.Character, statsOut.Stats, nil
}

func (o *orchestrator) requireDM(ctx context.Context, accountID string) error {
	if accountID == "" {
		return errors.NoAccountContext()
	}

	isDM, err := o.isDM(ctx, accountID)
	if err != nil {
		return err
	}
	if !isDM {
		return errors.PermissionDeniedf("account %s is not the DM", accountID)
	}
	return nil
}

// isDM treats unknown accounts, and no account at all, as players
func (o *orchestrator) isDM(ctx context.Context, accountID string) (bool, error) {
	if accountID == "" {
		return false, nil
	}

	out, err := o.accountRepo.Get(ctx, account.GetInput{ID: accountID})
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, errors.StoreError(err, "failed to get account")
	}

	return out.Account.IsDM(), nil
}

func (o *orchestrator) publishParticipant(ctx context.Context, p *entities.Participant, op changefeed.Op) {
	o.publish(ctx, changefeed.RowChanged(p.FightID, changefeed.TableParticipants, op, p, p.UpdatedAt))
}

// publish notifies subscribers of a committed write. The write already
// succeeded, so failures are logged and the caller still gets its result.
func (o *orchestrator) publish(ctx context.Context, event changefeed.Event) {
	if err := o.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish change",
			"fight_id", event.FightID,
			"table", event.Table,
			"op", event.Op,
			"error", err)
	}
}
