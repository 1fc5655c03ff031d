// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
)

// UpdateTargetAll addresses an announcement to every user.
const UpdateTargetAll = "All"

// Update is one row of the Updates sheet: an announcement targeted at
// everyone, a team, or a single email, optionally limited to a date window.
type Update struct {
	ID      string
	Message string
	// Target is "All", a team name, or an email address.
	Target string
	// StartDate/EndDate bound the active window; nil means open-ended.
	StartDate *time.Time
	EndDate   *time.Time
}

// VisibleTo reports whether the update is addressed to the given viewer.
// Team names compare exactly (they are sheet-controlled identifiers);
// emails compare case-insensitively.
func (u Update) VisibleTo(actor ActorProfile) bool {
	if u.Target == UpdateTargetAll {
		return true
	}
	if u.Target == actor.Team {
		return true
	}
	return strings.EqualFold(u.Target, actor.Email)
}

// ActiveAt reports whether the update's date window contains now.
// A missing bound leaves that side open.
func (u Update) ActiveAt(now time.Time) bool {
	if u.StartDate != nil && now.Before(*u.StartDate) {
		return false
	}
	if u.EndDate != nil && now.After(u.EndDate.AddDate(0, 0, 1).Add(-time.Nanosecond)) {
		return false
	}
	return true
}
