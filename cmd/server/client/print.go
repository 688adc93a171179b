package client

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	combatv1alpha1 "github.com/KirkDiggler/fight-tracker/internal/api/combat/v1alpha1"
)

func printFight(f *combatv1alpha1.Fight) {
	if f == nil {
		fmt.Println("No active fight")
		return
	}
	fmt.Printf("Fight %s\n", f.Id)
	fmt.Printf("  Status:  %s\n", f.Status)
	fmt.Printf("  DM:      %s\n", f.DmId)
	fmt.Printf("  Started: %s\n", time.UnixMilli(f.CreatedAt).Format(time.RFC3339))
	if f.FinishedAt != 0 {
		fmt.Printf("  Ended:   %s\n", time.UnixMilli(f.FinishedAt).Format(time.RFC3339))
	}
}

func printParticipant(p *combatv1alpha1.Participant) {
	if p == nil {
		return
	}
	kind := "player"
	if p.IsEnemy {
		kind = "enemy"
	}
	fmt.Printf("%s %s (%s)\n", kind, p.Name, p.Id)
	fmt.Printf("  Initiative: %d\n", p.Initiative)
	if p.StatsHidden {
		fmt.Println("  HP/AC:      hidden")
		return
	}
	fmt.Printf("  HP:         %d/%d\n", p.CurrentHp, p.MaxHp)
	fmt.Printf("  AC:         %d\n", p.ArmorClass)
}

// printRoster prints participants in the order the server returned them,
// which is turn order
func printRoster(participants []*combatv1alpha1.Participant) {
	if len(participants) == 0 {
		fmt.Println("No participants")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "INIT\tNAME\tHP\tAC\tKIND\tID")
	for _, p := range participants {
		hp := fmt.Sprintf("%d/%d", p.CurrentHp, p.MaxHp)
		ac := fmt.Sprintf("%d", p.ArmorClass)
		if p.StatsHidden {
			hp, ac = "?", "?"
		}
		kind := "player"
		if p.IsEnemy {
			kind = "enemy"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", p.Initiative, p.Name, hp, ac, kind, p.Id)
	}
	_ = w.Flush()
}
