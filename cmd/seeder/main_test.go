package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/food-planner/seeder/internal/infrastructure/config"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"seed", "verify", "status", "fixture"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("expected subcommand %q, got %v (%v)", name, cmd, err)
		}
	}
}

func TestFixtureCommand_JSON(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"fixture"})

	if err := root.Execute(); err != nil {
		t.Fatalf("fixture command failed: %v", err)
	}

	var set struct {
		Roles []struct{ Name string } `json:"roles"`
		Users []struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"users"`
	}
	if err := json.Unmarshal(out.Bytes(), &set); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out.String())
	}
	if len(set.Roles) != 3 || len(set.Users) != 1 || set.Users[0].Username != "nice-user" {
		t.Errorf("unexpected fixture output: %+v", set)
	}
	if set.Users[0].Password != "" {
		t.Error("password hash must not be printed")
	}
}

func TestFixtureCommand_Raw(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"fixture", "--raw"})

	if err := root.Execute(); err != nil {
		t.Fatalf("fixture --raw failed: %v", err)
	}
	if !strings.Contains(out.String(), "username: nice-user") {
		t.Errorf("expected embedded YAML, got:\n%s", out.String())
	}
}

func TestSeedCommand_RejectsArgs(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed", "extra"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unexpected argument")
	}
}

func TestLoggerOptions_ProductionForcesJSON(t *testing.T) {
	cfg := &config.Config{Env: "production", LogLevel: "debug", LogPretty: true}

	opts := loggerOptions(cfg)
	if opts.Pretty {
		t.Error("expected JSON output in production")
	}
	if opts.Level != "debug" {
		t.Errorf("expected level debug, got %q", opts.Level)
	}
}

func TestLoggerOptions_PrettyOutsideProduction(t *testing.T) {
	cfg := &config.Config{Env: "development", LogPretty: true}

	if !loggerOptions(cfg).Pretty {
		t.Error("expected pretty output in development")
	}
}
