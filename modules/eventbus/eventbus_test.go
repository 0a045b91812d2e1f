package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/example/modular-calculator-demo/domain/calc"
)

func TestEventBus_PublishSubscribe(t *testing.T) {
	bus := New()
	received := make(chan calc.Event, 1)

	bus.Subscribe(calc.EventCalculationDone, func(event calc.Event) {
		received <- event
	})

	bus.PublishCalculationDone(context.Background(), calc.SourceStandard, "2+2", "4")

	select {
	case event := <-received:
		if event.Type != calc.EventCalculationDone {
			t.Errorf("event.Type = %q, want %q", event.Type, calc.EventCalculationDone)
		}
		if event.Source != calc.SourceStandard {
			t.Errorf("event.Source = %q, want %q", event.Source, calc.SourceStandard)
		}
		if event.Expression != "2+2" || event.Result != "4" {
			t.Errorf("event payload = %q = %q, want 2+2 = 4", event.Expression, event.Result)
		}
		if event.Timestamp.IsZero() {
			t.Error("event.Timestamp should be set")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestEventBus_NoHandlersIsNoop(t *testing.T) {
	bus := New()
	// Must not panic or block.
	bus.PublishHistoryCleared(context.Background())
}

func TestEventBus_MultipleHandlers(t *testing.T) {
	bus := New()
	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)

	bus.Subscribe(calc.EventHistoryCleared, func(calc.Event) { first <- struct{}{} })
	bus.Subscribe(calc.EventHistoryCleared, func(calc.Event) { second <- struct{}{} })

	bus.PublishHistoryCleared(context.Background())

	for name, ch := range map[string]chan struct{}{"first": first, "second": second} {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s handler", name)
		}
	}
}

// A panicking handler must not take down the publisher or other handlers.
func TestEventBus_HandlerPanicIsRecovered(t *testing.T) {
	bus := New()
	received := make(chan struct{}, 1)

	bus.Subscribe(calc.EventCalculationDone, func(calc.Event) { panic("boom") })
	bus.Subscribe(calc.EventCalculationDone, func(calc.Event) { received <- struct{}{} })

	bus.PublishCalculationDone(context.Background(), calc.SourceScientific, "sin(30)", "0.5")

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("surviving handler was not invoked")
	}
}

func TestEventBus_OnlyMatchingTypeDelivered(t *testing.T) {
	bus := New()
	cleared := make(chan struct{}, 1)

	bus.Subscribe(calc.EventHistoryCleared, func(calc.Event) { cleared <- struct{}{} })

	bus.PublishCalculationDone(context.Background(), calc.SourceConverter, "1 kg -> g", "1000 g")

	select {
	case <-cleared:
		t.Fatal("handler for a different event type should not fire")
	case <-time.After(100 * time.Millisecond):
	}
}
