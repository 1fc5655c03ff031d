// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// Tier represents the visibility level a role grants over company data.
type Tier string

const (
	// TierExecutive sees every team and the global performer ranking.
	TierExecutive Tier = "executive"
	// TierTeamLead sees their own team's rollup and members.
	TierTeamLead Tier = "team_lead"
	// TierRepresentative sees only their own numbers.
	TierRepresentative Tier = "representative"
)

// executiveKeywords are matched as case-sensitive substrings against the
// free-text role title. Titles in the roster sheet are inconsistent
// ("Owner/CEO", "VO - East", ...), so substring matching is deliberate.
var executiveKeywords = []string{"Owner", "VO", "CEO", "COO", "Director"}

// ClassifyRole maps a free-text role title to a Tier. An empty or
// unrecognized title classifies as Representative, the least-privileged tier.
func ClassifyRole(role string) Tier {
	if role == "" {
		return TierRepresentative
	}
	for _, keyword := range executiveKeywords {
		if strings.Contains(role, keyword) {
			return TierExecutive
		}
	}
	if strings.Contains(role, "Team Lead") {
		return TierTeamLead
	}
	return TierRepresentative
}

// IsExecutive reports whether the tier grants executive visibility.
func (t Tier) IsExecutive() bool { return t == TierExecutive }

// IsTeamLead reports whether the tier grants team-lead visibility.
func (t Tier) IsTeamLead() bool { return t == TierTeamLead }

// CanSeeAllTeams reports whether the tier may view every team's data.
func (t Tier) CanSeeAllTeams() bool { return t == TierExecutive }

// CanSeeTeamData reports whether the tier may view team-level rollups.
func (t Tier) CanSeeTeamData() bool { return t == TierExecutive || t == TierTeamLead }

// CanSwitchProfiles reports whether the tier may view the app as another
// identity. Only executives and team leads may.
func (t Tier) CanSwitchProfiles() bool { return t == TierExecutive || t == TierTeamLead }
