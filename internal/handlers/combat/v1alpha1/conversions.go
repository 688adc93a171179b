package v1alpha1

import (
	"time"

	combatv1alpha1 "github.com/KirkDiggler/fight-tracker/internal/api/combat/v1alpha1"
	"github.com/KirkDiggler/fight-tracker/internal/clients/bestiary"
	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/orchestrators/combat"
)

func unixMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func convertFightToProto(f *entities.Fight) *combatv1alpha1.Fight {
	if f == nil {
		return nil
	}
	out := &combatv1alpha1.Fight{
		Id:        f.ID,
		DmId:      f.DMID,
		Status:    string(f.Status),
		CreatedAt: unixMillis(f.CreatedAt),
	}
	if f.FinishedAt != nil {
		out.FinishedAt = unixMillis(*f.FinishedAt)
	}
	return out
}

func convertParticipantToProto(p *entities.Participant) *combatv1alpha1.Participant {
	if p == nil {
		return nil
	}
	return &combatv1alpha1.Participant{
		Id:          p.ID,
		FightId:     p.FightID,
		IsEnemy:     p.IsEnemy,
		AccountId:   p.AccountID,
		Name:        p.Name,
		CurrentHp:   p.CurrentHP,
		MaxHp:       p.MaxHP,
		ArmorClass:  p.ArmorClass,
		Initiative:  p.Initiative,
		StatsHidden: p.StatsHidden,
		UpdatedAt:   unixMillis(p.UpdatedAt),
	}
}

func convertParticipantsToProto(participants []*entities.Participant) []*combatv1alpha1.Participant {
	out := make([]*combatv1alpha1.Participant, 0, len(participants))
	for _, p := range participants {
		if p != nil {
			out = append(out, convertParticipantToProto(p))
		}
	}
	return out
}

func convertInitiativeRollToProto(r *combat.InitiativeRoll) *combatv1alpha1.InitiativeRoll {
	if r == nil {
		return nil
	}
	return &combatv1alpha1.InitiativeRoll{Die: r.Die, Modifier: r.Modifier, Total: r.Total}
}

func convertMonstersToProto(refs []*bestiary.MonsterRef) []*combatv1alpha1.MonsterRef {
	out := make([]*combatv1alpha1.MonsterRef, 0, len(refs))
	for _, r := range refs {
		if r != nil {
			out = append(out, &combatv1alpha1.MonsterRef{Key: r.Key, Name: r.Name})
		}
	}
	return out
}

func convertEditToPatch(req *combatv1alpha1.EditEnemyRequest) entities.ParticipantPatch {
	return entities.ParticipantPatch{
		Name:       req.Name,
		CurrentHP:  req.CurrentHp,
		MaxHP:      req.MaxHp,
		ArmorClass: req.ArmorClass,
		Initiative: req.Initiative,
	}
}
