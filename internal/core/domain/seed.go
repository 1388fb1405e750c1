package domain

import (
	"errors"
	"time"
)

var (
	ErrCollectionExists = errors.New("collection already exists")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrSeedInProgress   = errors.New("seed already in progress")
	ErrInvalidFixture   = errors.New("invalid seed fixture")
)

// SeedSet is the full literal content written by one seeding run.
type SeedSet struct {
	Roles []Role `json:"roles" validate:"required,min=1,dive"`
	Users []User `json:"users" validate:"required,min=1,dive"`
}

// SeedReport summarises a completed seeding run.
type SeedReport struct {
	Database      string        `json:"database"`
	RolesInserted int           `json:"roles_inserted"`
	UsersInserted int           `json:"users_inserted"`
	Duration      time.Duration `json:"duration"`
}

// VerifyReport is the result of comparing stored documents against a SeedSet.
// Problems lists every mismatch; an empty list means the store matches.
type VerifyReport struct {
	Database string   `json:"database"`
	Roles    int      `json:"roles"`
	Users    int      `json:"users"`
	Problems []string `json:"problems,omitempty"`
}

// Seeded reports whether no mismatches were found.
func (r *VerifyReport) Seeded() bool {
	return len(r.Problems) == 0
}
