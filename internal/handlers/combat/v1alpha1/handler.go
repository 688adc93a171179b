// Package v1alpha1 implements the combat.v1alpha1 gRPC service
package v1alpha1

import (
	"context"
	"log/slog"
	"time"

	combatv1alpha1 "github.com/KirkDiggler/fight-tracker/internal/api/combat/v1alpha1"
	"github.com/KirkDiggler/fight-tracker/internal/changefeed"
	"github.com/KirkDiggler/fight-tracker/internal/clients/bestiary"
	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	"github.com/KirkDiggler/fight-tracker/internal/orchestrators/combat"
	"github.com/KirkDiggler/fight-tracker/internal/orchestrators/roster"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/authctx"
)

// HandlerConfig holds dependencies for the combat handler
type HandlerConfig struct {
	CombatService combat.Service
	Subscriber    changefeed.Subscriber
	// Bestiary backs ListMonsters; optional
	Bestiary bestiary.Client
	// RosterDebounce coalesces change bursts on subscriptions
	RosterDebounce time.Duration
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.CombatService == nil {
		vb.RequiredField("CombatService")
	}
	if c.Subscriber == nil {
		vb.RequiredField("Subscriber")
	}
	return vb.Build()
}

// Handler implements the combat gRPC service
type Handler struct {
	combatv1alpha1.UnimplementedCombatServiceServer
	combatService combat.Service
	subscriber    changefeed.Subscriber
	bestiary      bestiary.Client
	debounce      time.Duration
}

// NewHandler creates a new combat handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		combatService: cfg.CombatService,
		subscriber:    cfg.Subscriber,
		bestiary:      cfg.Bestiary,
		debounce:      cfg.RosterDebounce,
	}, nil
}

// GetActiveFight returns the active fight, if any
func (h *Handler) GetActiveFight(
	ctx context.Context,
	_ *combatv1alpha1.GetActiveFightRequest,
) (*combatv1alpha1.GetActiveFightResponse, error) {
	out, err := h.combatService.GetActiveFight(ctx, &combat.GetActiveFightInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.GetActiveFightResponse{Fight: convertFightToProto(out.Fight)}, nil
}

// ListParticipants returns the roster as the caller may see it
func (h *Handler) ListParticipants(
	ctx context.Context,
	req *combatv1alpha1.ListParticipantsRequest,
) (*combatv1alpha1.ListParticipantsResponse, error) {
	if req.FightId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("fight_id is required"))
	}

	out, err := h.combatService.ListParticipants(ctx, &combat.ListParticipantsInput{
		FightID:         req.FightId,
		ViewerAccountID: authctx.AccountID(ctx),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &combatv1alpha1.ListParticipantsResponse{
		Participants: convertParticipantsToProto(out.Participants),
		ViewerIsDm:   out.ViewerIsDM,
	}, nil
}

// SubscribeParticipants pushes the roster on subscribe and after every change
// until the client goes away
func (h *Handler) SubscribeParticipants(
	req *combatv1alpha1.SubscribeParticipantsRequest,
	stream combatv1alpha1.CombatService_SubscribeParticipantsServer,
) error {
	ctx := stream.Context()
	if req.FightId == "" {
		return errors.ToGRPCError(errors.InvalidArgument("fight_id is required"))
	}

	engine, err := roster.NewEngine(&roster.Config{
		Lister:          h.combatService,
		Subscriber:      h.subscriber,
		FightID:         req.FightId,
		ViewerAccountID: authctx.AccountID(ctx),
		Debounce:        h.debounce,
	})
	if err != nil {
		return errors.ToGRPCError(err)
	}

	// only the newest roster matters to a slow reader
	updates := make(chan []*entities.Participant, 1)
	engine.OnChange(func(p []*entities.Participant) {
		for {
			select {
			case updates <- p:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	engine.OnError(func(err error) {
		slog.WarnContext(ctx, "roster refresh failed", "fight_id", req.FightId, "error", err)
	})

	if err := engine.Start(ctx); err != nil {
		return errors.ToGRPCError(err)
	}
	defer func() { _ = engine.Close() }()

	var seq uint64
	for {
		select {
		case <-ctx.Done():
			return nil
		case p := <-updates:
			seq++
			if err := stream.Send(&combatv1alpha1.ParticipantsSnapshot{
				FightId:      req.FightId,
				Participants: convertParticipantsToProto(p),
				Sequence:     seq,
			}); err != nil {
				return err
			}
		case <-engine.Done():
			if ctx.Err() != nil {
				return nil
			}
			return errors.ToGRPCError(errors.Unavailable("roster feed ended"))
		}
	}
}

// StartFight finishes any active fight and starts a new one
func (h *Handler) StartFight(
	ctx context.Context,
	_ *combatv1alpha1.StartFightRequest,
) (*combatv1alpha1.StartFightResponse, error) {
	out, err := h.combatService.StartFight(ctx, &combat.StartFightInput{AccountID: authctx.AccountID(ctx)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.StartFightResponse{
		Fight:            convertFightToProto(out.Fight),
		FinishedFightIds: out.FinishedFightIDs,
	}, nil
}

// FinishFight finishes the fight and purges its roster
func (h *Handler) FinishFight(
	ctx context.Context,
	req *combatv1alpha1.FinishFightRequest,
) (*combatv1alpha1.FinishFightResponse, error) {
	if req.FightId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("fight_id is required"))
	}

	out, err := h.combatService.FinishFight(ctx, &combat.FinishFightInput{
		AccountID: authctx.AccountID(ctx),
		FightID:   req.FightId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.FinishFightResponse{
		Fight:              convertFightToProto(out.Fight),
		ParticipantsPurged: out.ParticipantsPurged,
	}, nil
}

// JoinFight adds or refreshes the caller's row
func (h *Handler) JoinFight(
	ctx context.Context,
	req *combatv1alpha1.JoinFightRequest,
) (*combatv1alpha1.JoinFightResponse, error) {
	if req.FightId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("fight_id is required"))
	}

	out, err := h.combatService.JoinFight(ctx, &combat.JoinFightInput{
		AccountID:  authctx.AccountID(ctx),
		FightID:    req.FightId,
		Initiative: req.Initiative,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.JoinFightResponse{
		Participant: convertParticipantToProto(out.Participant),
		Created:     out.Created,
	}, nil
}

// SetOwnHp sets the caller's current HP
func (h *Handler) SetOwnHp(
	ctx context.Context,
	req *combatv1alpha1.SetOwnHpRequest,
) (*combatv1alpha1.SetOwnHpResponse, error) {
	if req.FightId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("fight_id is required"))
	}

	out, err := h.combatService.SetOwnHP(ctx, &combat.SetOwnHPInput{
		AccountID: authctx.AccountID(ctx),
		FightID:   req.FightId,
		HP:        req.Hp,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.SetOwnHpResponse{Participant: convertParticipantToProto(out.Participant)}, nil
}

// SetParticipantHp sets any participant's current HP (DM)
func (h *Handler) SetParticipantHp(
	ctx context.Context,
	req *combatv1alpha1.SetParticipantHpRequest,
) (*combatv1alpha1.SetParticipantHpResponse, error) {
	if req.ParticipantId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("participant_id is required"))
	}

	out, err := h.combatService.SetParticipantHP(ctx, &combat.SetParticipantHPInput{
		AccountID:     authctx.AccountID(ctx),
		ParticipantID: req.ParticipantId,
		HP:            req.Hp,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.SetParticipantHpResponse{Participant: convertParticipantToProto(out.Participant)}, nil
}

// AddEnemy adds an enemy (DM)
func (h *Handler) AddEnemy(
	ctx context.Context,
	req *combatv1alpha1.AddEnemyRequest,
) (*combatv1alpha1.AddEnemyResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("fight_id", req.FightId, vb)
	if req.Enemy == nil {
		vb.RequiredField("enemy")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.combatService.AddEnemy(ctx, &combat.AddEnemyInput{
		AccountID: authctx.AccountID(ctx),
		FightID:   req.FightId,
		Enemy: entities.EnemyAttributes{
			Name:       req.Enemy.Name,
			CurrentHP:  req.Enemy.CurrentHp,
			MaxHP:      req.Enemy.MaxHp,
			ArmorClass: req.Enemy.ArmorClass,
			Initiative: req.Enemy.Initiative,
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.AddEnemyResponse{Participant: convertParticipantToProto(out.Participant)}, nil
}

// AddMonster adds an enemy from a bestiary stat block (DM)
func (h *Handler) AddMonster(
	ctx context.Context,
	req *combatv1alpha1.AddMonsterRequest,
) (*combatv1alpha1.AddMonsterResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("fight_id", req.FightId, vb)
	errors.ValidateRequired("monster_key", req.MonsterKey, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.combatService.AddMonster(ctx, &combat.AddMonsterInput{
		AccountID:  authctx.AccountID(ctx),
		FightID:    req.FightId,
		MonsterKey: req.MonsterKey,
		Name:       req.Name,
		Initiative: req.Initiative,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.AddMonsterResponse{
		Participant:    convertParticipantToProto(out.Participant),
		InitiativeRoll: convertInitiativeRollToProto(out.InitiativeRoll),
	}, nil
}

// EditEnemy applies a partial update to an enemy (DM)
func (h *Handler) EditEnemy(
	ctx context.Context,
	req *combatv1alpha1.EditEnemyRequest,
) (*combatv1alpha1.EditEnemyResponse, error) {
	if req.ParticipantId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("participant_id is required"))
	}

	out, err := h.combatService.EditEnemy(ctx, &combat.EditEnemyInput{
		AccountID:     authctx.AccountID(ctx),
		ParticipantID: req.ParticipantId,
		Patch:         convertEditToPatch(req),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.EditEnemyResponse{Participant: convertParticipantToProto(out.Participant)}, nil
}

// DeleteEnemy removes an enemy (DM)
func (h *Handler) DeleteEnemy(
	ctx context.Context,
	req *combatv1alpha1.DeleteEnemyRequest,
) (*combatv1alpha1.DeleteEnemyResponse, error) {
	if req.ParticipantId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("participant_id is required"))
	}

	out, err := h.combatService.DeleteEnemy(ctx, &combat.DeleteEnemyInput{
		AccountID:     authctx.AccountID(ctx),
		ParticipantID: req.ParticipantId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.DeleteEnemyResponse{FightId: out.FightID}, nil
}

// ResyncStats re-snapshots the caller's stats from their sheet
func (h *Handler) ResyncStats(
	ctx context.Context,
	req *combatv1alpha1.ResyncStatsRequest,
) (*combatv1alpha1.ResyncStatsResponse, error) {
	if req.FightId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("fight_id is required"))
	}

	out, err := h.combatService.ResyncStats(ctx, &combat.ResyncStatsInput{
		AccountID: authctx.AccountID(ctx),
		FightID:   req.FightId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.ResyncStatsResponse{Participant: convertParticipantToProto(out.Participant)}, nil
}

// ListMonsters lists the bestiary
func (h *Handler) ListMonsters(
	ctx context.Context,
	_ *combatv1alpha1.ListMonstersRequest,
) (*combatv1alpha1.ListMonstersResponse, error) {
	if h.bestiary == nil {
		return nil, errors.ToGRPCError(errors.Unavailable("bestiary is not configured"))
	}

	refs, err := h.bestiary.ListMonsters(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &combatv1alpha1.ListMonstersResponse{Monsters: convertMonstersToProto(refs)}, nil
}
