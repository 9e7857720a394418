package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct{}

func (testMessage) Type() string { return "importer.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "importer.test.invalid" }

func (invalidMessage) Validate() error {
	return validationError()
}

type workspaceMessage struct {
	Workspace string
}

func (workspaceMessage) Type() string { return "importer.test.workspace" }

func (workspaceMessage) Validate() error { return nil }

func validationError() error {
	return errors.New("invalid")
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler[invalidMessage](func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return execErr
	})

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected wrapped execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !goerrors.HasCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category to propagate, got %v", err)
	}
}

func TestHandlerRunsUnboundedByDefault(t *testing.T) {
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		if _, ok := ctx.Deadline(); ok {
			return errors.New("unexpected deadline")
		}
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected no deadline without WithTimeout, got %v", err)
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
}

func TestHandlerReportsTelemetryWithMessageFields(t *testing.T) {
	var calls int
	var got TelemetryInfo

	h := NewHandler[workspaceMessage](func(ctx context.Context, msg workspaceMessage) error {
		return nil
	},
		WithOperation[workspaceMessage]("plan workspace"),
		WithMessageFields(func(msg workspaceMessage) map[string]any {
			return map[string]any{"workspace": msg.Workspace}
		}),
		WithTelemetry[workspaceMessage](func(ctx context.Context, msg workspaceMessage, info TelemetryInfo) {
			calls++
			got = info
		}),
	)

	if err := h.Execute(context.Background(), workspaceMessage{Workspace: "./notes"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected telemetry to fire once, got %d", calls)
	}
	if got.Status != TelemetryStatusSuccess {
		t.Fatalf("expected success status, got %q", got.Status)
	}
	if got.Command != "importer.test.workspace" {
		t.Fatalf("expected command type in telemetry, got %q", got.Command)
	}
	if got.Operation != "plan workspace" {
		t.Fatalf("expected operation in telemetry, got %q", got.Operation)
	}
	if got.Error != nil {
		t.Fatalf("expected nil telemetry error, got %v", got.Error)
	}
	if got.Duration < 0 {
		t.Fatalf("expected non-negative duration, got %v", got.Duration)
	}
	if got.Fields["command"] != "importer.test.workspace" {
		t.Fatalf("expected command field, got %v", got.Fields["command"])
	}
	if got.Fields["workspace"] != "./notes" {
		t.Fatalf("expected message-derived workspace field, got %v", got.Fields["workspace"])
	}
}

func TestHandlerTelemetryObservesFailure(t *testing.T) {
	execErr := errors.New("boom")
	var got TelemetryInfo

	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return execErr
	}, WithTelemetry[testMessage](func(ctx context.Context, msg testMessage, info TelemetryInfo) {
		got = info
	}))

	if err := h.Execute(context.Background(), testMessage{}); err == nil {
		t.Fatal("expected wrapped execution error")
	}
	if got.Status != TelemetryStatusFailed {
		t.Fatalf("expected failed status, got %q", got.Status)
	}
	if !errors.Is(got.Error, execErr) {
		t.Fatalf("expected telemetry to carry the execution error, got %v", got.Error)
	}
}
