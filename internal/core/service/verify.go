package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/food-planner/seeder/internal/api/metrics"
	"github.com/food-planner/seeder/internal/core/domain"
)

// Verify reads both collections back and lists every difference from the
// seed set. It never writes.
func (s *SeedService) Verify(ctx context.Context) (*domain.VerifyReport, error) {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify roles: %w", err)
	}
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify users: %w", err)
	}

	report := &domain.VerifyReport{
		Database: s.database,
		Roles:    len(roles),
		Users:    len(users),
	}
	report.Problems = append(report.Problems, compareRoles(s.set.Roles, roles)...)
	report.Problems = append(report.Problems, compareUsers(s.set.Users, users)...)

	metrics.VerifyProblems.Set(float64(len(report.Problems)))
	if report.Seeded() {
		s.log.Info().Int("roles", report.Roles).Int("users", report.Users).Msg("seed data verified")
	} else {
		s.log.Warn().Strs("problems", report.Problems).Msg("seed data does not match")
	}

	return report, nil
}

func compareRoles(want, got []domain.Role) []string {
	var problems []string
	if len(got) != len(want) {
		problems = append(problems, fmt.Sprintf("Roles: expected %d documents, found %d", len(want), len(got)))
	}

	byID := make(map[string]domain.Role, len(got))
	for _, r := range got {
		byID[r.ID] = r
	}
	for _, w := range want {
		r, ok := byID[w.ID]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("Roles: missing %s (%s)", w.Name, w.ID))
		case r.Name != w.Name:
			problems = append(problems, fmt.Sprintf("Roles: %s is named %q, expected %q", w.ID, r.Name, w.Name))
		}
	}
	return problems
}

func compareUsers(want, got []domain.User) []string {
	var problems []string
	if len(got) != len(want) {
		problems = append(problems, fmt.Sprintf("Users: expected %d documents, found %d", len(want), len(got)))
	}

	byID := make(map[string]*domain.User, len(got))
	for i := range got {
		byID[got[i].ID] = &got[i]
	}
	for i := range want {
		w := &want[i]
		u, ok := byID[w.ID]
		if !ok {
			problems = append(problems, fmt.Sprintf("Users: missing %s (%s)", w.Username, w.ID))
			continue
		}
		problems = append(problems, compareUser(w, u)...)
	}
	return problems
}

func compareUser(want, got *domain.User) []string {
	var problems []string
	prefix := "Users." + want.Username

	if got.Username != want.Username {
		problems = append(problems, fmt.Sprintf("%s: username is %q", prefix, got.Username))
	}
	if got.Email != want.Email {
		problems = append(problems, fmt.Sprintf("%s: email is %q, expected %q", prefix, got.Email, want.Email))
	}
	if got.PasswordHash != want.PasswordHash {
		problems = append(problems, prefix+": password hash differs")
	}
	if !slices.Equal(got.Roles, want.Roles) {
		problems = append(problems, fmt.Sprintf("%s: roles are %v, expected %v", prefix, got.Roles, want.Roles))
	}

	gotIDs, wantIDs := got.MenuIDs(), want.MenuIDs()
	if !slices.Equal(gotIDs, wantIDs) {
		problems = append(problems, fmt.Sprintf("%s: menu is %v, expected %v", prefix, gotIDs, wantIDs))
		return problems
	}
	for i := range want.Menu {
		w, g := want.Menu[i], got.Menu[i]
		if g.PrimarilyCarbohydrate != w.PrimarilyCarbohydrate {
			problems = append(problems, fmt.Sprintf("%s.menu.%s: primarilyCarbohydrate is %v", prefix, w.ID, g.PrimarilyCarbohydrate))
		}
		if g.Name != w.Name || g.Recipe != w.Recipe || g.CourseType != w.CourseType {
			problems = append(problems, fmt.Sprintf("%s.menu.%s: dish details differ", prefix, w.ID))
		}
		if !slices.Equal(g.Ingredients, w.Ingredients) || !slices.Equal(g.Categories, w.Categories) {
			problems = append(problems, fmt.Sprintf("%s.menu.%s: ingredients or categories differ", prefix, w.ID))
		}
	}
	return problems
}
