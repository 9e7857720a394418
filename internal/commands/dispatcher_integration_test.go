package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
)

// publishPageMessage stands in for an importer operation dispatched through
// go-command's global dispatcher.
type publishPageMessage struct {
	Title string
}

func (publishPageMessage) Type() string { return "importer.test.publish_page" }

func (m publishPageMessage) Validate() error {
	if m.Title == "" {
		return errors.New("title required")
	}
	return nil
}

func TestDispatcherRetriesTransientFailure(t *testing.T) {
	t.Parallel()

	attempts := 0
	publish := func(ctx context.Context, msg publishPageMessage) error {
		attempts++
		if attempts == 1 {
			return errors.New("wiki unavailable")
		}
		return nil
	}

	sub := dispatcher.SubscribeCommand(
		NewHandler(publish, WithTimeout[publishPageMessage](time.Second)),
		runner.WithMaxRetries(1),
	)
	t.Cleanup(sub.Unsubscribe)

	err := dispatcher.Dispatch(context.Background(), publishPageMessage{Title: "Team Handbook"})
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts (initial + retry), got %d", attempts)
	}
}

func TestDispatcherReportsExhaustedRetries(t *testing.T) {
	t.Parallel()

	attempts := 0
	publish := func(ctx context.Context, msg publishPageMessage) error {
		attempts++
		return errors.New("wiki unavailable")
	}

	sub := dispatcher.SubscribeCommand(
		NewHandler(publish, WithTimeout[publishPageMessage](time.Second)),
		runner.WithMaxRetries(2),
	)
	t.Cleanup(sub.Unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), publishPageMessage{Title: "Team Handbook"}); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts (initial + 2 retries), got %d", attempts)
	}
}
