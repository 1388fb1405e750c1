// Package fixtures holds the literal seed data for the food-planner database
// as an embedded YAML asset and turns it into domain values.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/food-planner/seeder/internal/core/domain"
)

//go:embed food-planner.yaml
var foodPlanner []byte

type fileSet struct {
	Roles []domain.Role `yaml:"roles"`
	Users []fileUser    `yaml:"users"`
}

type fileUser struct {
	ID       string            `yaml:"id"`
	Username string            `yaml:"username"`
	Email    string            `yaml:"email"`
	Password string            `yaml:"password"`
	Roles    []string          `yaml:"roles"`
	Menu     []domain.MenuItem `yaml:"menu"`
}

var validate = validator.New()

// Raw returns the embedded fixture document.
func Raw() []byte {
	return foodPlanner
}

// Load parses the embedded food-planner fixture.
func Load() (*domain.SeedSet, error) {
	return Parse(foodPlanner)
}

// Parse decodes a fixture document, resolves user role names into copies of
// the declared roles and checks the result for structural problems.
func Parse(data []byte) (*domain.SeedSet, error) {
	var f fileSet
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrInvalidFixture, err)
	}

	byName := make(map[string]domain.Role, len(f.Roles))
	for _, r := range f.Roles {
		byName[r.Name] = r
	}

	set := &domain.SeedSet{Roles: f.Roles}
	for _, fu := range f.Users {
		user := domain.User{
			ID:           fu.ID,
			Username:     fu.Username,
			Email:        fu.Email,
			PasswordHash: fu.Password,
			Menu:         fu.Menu,
		}
		for _, name := range fu.Roles {
			role, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("%w: user %q references unknown role %q", domain.ErrInvalidFixture, fu.Username, name)
			}
			user.Roles = append(user.Roles, role)
		}
		set.Users = append(set.Users, user)
	}

	if err := check(set); err != nil {
		return nil, err
	}
	return set, nil
}

func check(set *domain.SeedSet) error {
	if err := validate.Struct(set); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidFixture, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidFixture, err)
	}

	if dup := firstDuplicate(len(set.Roles), func(i int) string { return set.Roles[i].ID }); dup != "" {
		return fmt.Errorf("%w: duplicate role id %s", domain.ErrInvalidFixture, dup)
	}
	if dup := firstDuplicate(len(set.Users), func(i int) string { return set.Users[i].ID }); dup != "" {
		return fmt.Errorf("%w: duplicate user id %s", domain.ErrInvalidFixture, dup)
	}
	if dup := firstDuplicate(len(set.Users), func(i int) string { return set.Users[i].Username }); dup != "" {
		return fmt.Errorf("%w: duplicate username %s", domain.ErrInvalidFixture, dup)
	}
	for _, u := range set.Users {
		menu := u.Menu
		if dup := firstDuplicate(len(menu), func(i int) string { return menu[i].ID }); dup != "" {
			return fmt.Errorf("%w: user %s has duplicate menu item %s", domain.ErrInvalidFixture, u.Username, dup)
		}
	}
	return nil
}

func firstDuplicate(n int, key func(int) string) string {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if _, ok := seen[k]; ok {
			return k
		}
		seen[k] = struct{}{}
	}
	return ""
}
