package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/food-planner/seeder/internal/core/domain"
)

// Verifier checks stored seed data without changing it.
type Verifier interface {
	Verify(ctx context.Context) (*domain.VerifyReport, error)
}

// LastRunFunc returns when the database was last seeded, zero if unknown.
type LastRunFunc func(ctx context.Context) (time.Time, error)

// StatusHandler handles GET /seed/status.
type StatusHandler struct {
	verifier Verifier
	lastRun  LastRunFunc
}

// NewStatusHandler returns a StatusHandler. lastRun may be nil when no run
// history is kept.
func NewStatusHandler(verifier Verifier, lastRun LastRunFunc) *StatusHandler {
	return &StatusHandler{verifier: verifier, lastRun: lastRun}
}

type statusResponse struct {
	Seeded      bool       `json:"seeded"`
	Database    string     `json:"database"`
	Roles       int        `json:"roles"`
	Users       int        `json:"users"`
	Problems    []string   `json:"problems,omitempty"`
	LastSeedRun *time.Time `json:"last_seed_run,omitempty"`
}

// Status reports whether the database holds the expected seed data.
// Responds 200 when it does and 409 when it is empty or has drifted.
func (h *StatusHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.verifier.Verify(ctx)
	if err != nil {
		return err
	}

	resp := statusResponse{
		Seeded:   report.Seeded(),
		Database: report.Database,
		Roles:    report.Roles,
		Users:    report.Users,
		Problems: report.Problems,
	}

	if h.lastRun != nil {
		ts, err := h.lastRun(ctx)
		if err != nil {
			return err
		}
		if !ts.IsZero() {
			resp.LastSeedRun = &ts
		}
	}

	code := http.StatusOK
	if !resp.Seeded {
		code = http.StatusConflict
	}
	return c.JSON(code, resp)
}
