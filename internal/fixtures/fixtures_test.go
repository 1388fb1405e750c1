package fixtures

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/crypto/bcrypt"

	"github.com/food-planner/seeder/internal/core/domain"
)

func TestLoad_Roles(t *testing.T) {
	set, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := []domain.Role{
		{ID: "000000000000000000000001", Name: domain.RoleUser},
		{ID: "000000000000000000000002", Name: domain.RoleAdmin},
		{ID: "000000000000000000000003", Name: domain.RoleModerator},
	}
	if diff := cmp.Diff(want, set.Roles); diff != "" {
		t.Fatalf("roles mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_NiceUser(t *testing.T) {
	set, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(set.Users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(set.Users))
	}

	u := set.Users[0]
	if u.ID != "682c646cd176f11c48d861e0" {
		t.Errorf("unexpected user id %q", u.ID)
	}
	if u.Username != "nice-user" || u.Email != "nice-user@admin.com" {
		t.Errorf("unexpected identity: %s <%s>", u.Username, u.Email)
	}

	wantRoles := []domain.Role{{ID: "000000000000000000000002", Name: domain.RoleAdmin}}
	if diff := cmp.Diff(wantRoles, u.Roles); diff != "" {
		t.Errorf("user roles mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"food1", "food2", "food3"}, u.MenuIDs()); diff != "" {
		t.Errorf("menu order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MenuItems(t *testing.T) {
	set, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	carbs := map[string]bool{"food1": true, "food2": false, "food3": true}
	for _, item := range set.Users[0].Menu {
		if item.PrimarilyCarbohydrate != carbs[item.ID] {
			t.Errorf("%s: primarilyCarbohydrate = %v, want %v", item.ID, item.PrimarilyCarbohydrate, carbs[item.ID])
		}
		if item.CourseType != domain.CourseMain {
			t.Errorf("%s: unexpected course type %q", item.ID, item.CourseType)
		}
		if len(item.Ingredients) == 0 {
			t.Errorf("%s: expected at least one ingredient", item.ID)
		}
		for _, ing := range item.Ingredients {
			if ing.Name == "" || ing.Unit == "" {
				t.Errorf("%s: incomplete ingredient %+v", item.ID, ing)
			}
		}
	}

	pizza := set.Users[0].Menu[2]
	want := domain.MenuItem{
		ID:                    "food3",
		Name:                  "Margarita Pizza",
		Ingredients:           []domain.Ingredient{{Name: "mozzarella", Quantity: 100, Unit: "g"}},
		Categories:            []string{"Pizza"},
		CourseType:            domain.CourseMain,
		PrimarilyCarbohydrate: true,
		Recipe:                "Bake with tomato and cheese",
	}
	if diff := cmp.Diff(want, pizza); diff != "" {
		t.Errorf("food3 mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PasswordIsStoredHash(t *testing.T) {
	set, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	hash := set.Users[0].PasswordHash
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("hash is not well formed: %v", err)
	}
	if cost != 10 {
		t.Errorf("expected cost 10, got %d", cost)
	}
}

func TestParse_UnknownRole(t *testing.T) {
	doc := `
roles:
  - id: "000000000000000000000001"
    name: ROLE_USER
users:
  - id: "682c646cd176f11c48d861e0"
    username: someone
    email: someone@example.com
    password: x
    roles: [ROLE_ROOT]
`
	_, err := Parse([]byte(doc))
	if !errors.Is(err, domain.ErrInvalidFixture) {
		t.Fatalf("expected ErrInvalidFixture, got %v", err)
	}
	if !strings.Contains(err.Error(), "ROLE_ROOT") {
		t.Errorf("error should name the role: %v", err)
	}
}

func TestParse_DuplicateRoleID(t *testing.T) {
	doc := `
roles:
  - id: "000000000000000000000001"
    name: ROLE_USER
  - id: "000000000000000000000001"
    name: ROLE_ADMIN
users:
  - id: "682c646cd176f11c48d861e0"
    username: someone
    email: someone@example.com
    password: x
    roles: [ROLE_USER]
`
	_, err := Parse([]byte(doc))
	if !errors.Is(err, domain.ErrInvalidFixture) {
		t.Fatalf("expected ErrInvalidFixture, got %v", err)
	}
}

func TestParse_MenuItemWithoutIngredients(t *testing.T) {
	doc := `
roles:
  - id: "000000000000000000000001"
    name: ROLE_USER
users:
  - id: "682c646cd176f11c48d861e0"
    username: someone
    email: someone@example.com
    password: x
    roles: [ROLE_USER]
    menu:
      - id: food1
        name: Air
        courseType: Main
`
	_, err := Parse([]byte(doc))
	if !errors.Is(err, domain.ErrInvalidFixture) {
		t.Fatalf("expected ErrInvalidFixture, got %v", err)
	}
}

func TestParse_BadObjectID(t *testing.T) {
	doc := `
roles:
  - id: "not-an-object-id"
    name: ROLE_USER
users:
  - id: "682c646cd176f11c48d861e0"
    username: someone
    email: someone@example.com
    password: x
    roles: [ROLE_USER]
`
	if _, err := Parse([]byte(doc)); !errors.Is(err, domain.ErrInvalidFixture) {
		t.Fatalf("expected ErrInvalidFixture, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("roles: [")); !errors.Is(err, domain.ErrInvalidFixture) {
		t.Fatalf("expected ErrInvalidFixture, got %v", err)
	}
}
