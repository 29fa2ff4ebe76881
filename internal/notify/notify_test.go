package notify

import (
	"testing"
	"time"
)

func TestPublishAndCurrent(t *testing.T) {
	c := NewCenter()

	if _, ok := c.Current(); ok {
		t.Fatalf("fresh center must have no notification")
	}

	c.Publish("支出を記録しました", KindSuccess)
	n, ok := c.Current()
	if !ok {
		t.Fatalf("expected active notification")
	}
	if n.Message != "支出を記録しました" || n.Kind != KindSuccess {
		t.Fatalf("unexpected notification %+v", n)
	}
}

func TestPublishSupersedes(t *testing.T) {
	c := NewCenter()
	c.Publish("first", KindSuccess)
	c.Publish("second", KindError)

	n, ok := c.Current()
	if !ok || n.Message != "second" || n.Kind != KindError {
		t.Fatalf("new publication must supersede, got %+v ok=%v", n, ok)
	}
}

func TestExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewCenter()
	c.now = func() time.Time { return now }

	c.Publish("done", KindSuccess)
	now = now.Add(SuccessDuration - time.Millisecond)
	if _, ok := c.Current(); !ok {
		t.Fatalf("notification expired too early")
	}
	now = now.Add(2 * time.Millisecond)
	if _, ok := c.Current(); ok {
		t.Fatalf("notification should have expired")
	}
}

func TestKindDurations(t *testing.T) {
	if KindSuccess.Duration() != SuccessDuration {
		t.Fatalf("success duration mismatch")
	}
	if KindError.Duration() != ErrorDuration {
		t.Fatalf("error duration mismatch")
	}
}
