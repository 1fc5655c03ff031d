// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// Employee is one row of the roster (Logins) sheet. The password cell is
// carried only as far as credential verification and never serialized.
type Employee struct {
	Name     string
	Email    string
	Password string
	Role     string
	Team     string
}

// SameEmail reports whether the employee's email matches the given one.
// Email is the stable join key across all sheets and compares
// case-insensitively.
func (e Employee) SameEmail(email string) bool {
	return strings.EqualFold(e.Email, email)
}

// ActorProfile is a resolved viewer identity with its tier computed once.
// The authenticated actor and the effective ("view as") actor are both
// ActorProfile values; visibility decisions only ever read the effective one.
type ActorProfile struct {
	Name  string
	Email string
	Team  string
	Role  string
	Tier  Tier
}

// SameIdentity reports whether the profile belongs to the given email,
// compared case-insensitively.
func (p ActorProfile) SameIdentity(email string) bool {
	return strings.EqualFold(p.Email, email)
}

// NewActorProfile builds a profile from a roster row, classifying the
// free-text role exactly once.
func NewActorProfile(emp Employee) ActorProfile {
	return ActorProfile{
		Name:  emp.Name,
		Email: emp.Email,
		Team:  emp.Team,
		Role:  emp.Role,
		Tier:  ClassifyRole(emp.Role),
	}
}
