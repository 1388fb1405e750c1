package mongo

import (
	"context"
	"testing"
	"time"
)

func TestDisconnectContext_SurvivesCancelledParent(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	cancel()

	ctx, dcancel := disconnectContext(parent)
	defer dcancel()

	if err := ctx.Err(); err != nil {
		t.Fatalf("expected live context, got %v", err)
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if until := time.Until(deadline); until <= 0 || until > disconnectTimeout {
		t.Errorf("unexpected deadline in %v", until)
	}
}

func TestDisconnectContext_SurvivesExpiredParent(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-parent.Done()

	ctx, dcancel := disconnectContext(parent)
	defer dcancel()

	if err := ctx.Err(); err != nil {
		t.Fatalf("expected live context, got %v", err)
	}
}
