package combat

import "github.com/KirkDiggler/fight-tracker/internal/entities"

// Redact returns the roster as a viewer may render it. Players see enemy rows
// without HP or AC. This is presentation filtering at the query boundary and
// not a confidentiality guarantee: anyone with store access sees everything.
func Redact(participants []*entities.Participant, viewerIsDM bool) []*entities.Participant {
	out := make([]*entities.Participant, 0, len(participants))
	for _, p := range participants {
		if p == nil {
			continue
		}
		cp := *p
		if cp.IsEnemy && !viewerIsDM {
			cp.CurrentHP = 0
			cp.MaxHP = 0
			cp.ArmorClass = 0
			cp.StatsHidden = true
		}
		out = append(out, &cp)
	}
	return out
}
