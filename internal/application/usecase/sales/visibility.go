package sales

import (
	"github.com/phoenix-field/backend/internal/domain/entity"
)

// DashboardView is the slice of the aggregates the effective actor is
// allowed to see. Exactly one of the three sections is populated,
// according to tier:
//
//   - Representative: MyRep only (nil when the actor has no in-window
//     transactions — an empty view, not an error).
//   - TeamLead: MyTeam only, with its nested rep list.
//   - Executive: every TeamSummary plus a global top-N rep ranking.
type DashboardView struct {
	Tier entity.Tier

	MyRep *entity.RepSummary

	MyTeam *entity.TeamSummary

	Teams         []entity.TeamSummary
	TopPerformers []entity.RepSummary
}

// Visible projects the aggregates down to what the effective actor's tier
// permits. Pure: no side effects, inputs are never modified.
func Visible(actor entity.ActorProfile, reps []entity.RepSummary, teams []entity.TeamSummary, topN int) DashboardView {
	view := DashboardView{Tier: actor.Tier}

	switch {
	case actor.Tier.IsExecutive():
		view.Teams = teams
		if topN > len(reps) {
			topN = len(reps)
		}
		if topN > 0 {
			view.TopPerformers = reps[:topN]
		}
	case actor.Tier.IsTeamLead():
		for i := range teams {
			if teams[i].Team == actor.Team {
				view.MyTeam = &teams[i]
				break
			}
		}
	default:
		for i := range reps {
			if actor.SameIdentity(reps[i].RepEmail) {
				view.MyRep = &reps[i]
				break
			}
		}
	}

	return view
}
