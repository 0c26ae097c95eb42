package refresh_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hostelworks/hostel-dashboard/refresh"
)

func TestTriggerIncrementsByOne(t *testing.T) {
	bus := refresh.NewBus()
	require.EqualValues(t, 0, bus.Value())

	for i := 1; i <= 5; i++ {
		bus.Trigger()
		require.EqualValues(t, i, bus.Value())
	}
}

func TestSubscriberObservesEveryDistinctValue(t *testing.T) {
	bus := refresh.NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Trigger()
	select {
	case v := <-ch:
		require.EqualValues(t, 1, v)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not observe trigger")
	}

	bus.Trigger()
	select {
	case v := <-ch:
		require.EqualValues(t, 2, v)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not observe second trigger")
	}
}

func TestSlowSubscriberCoalescesToLatest(t *testing.T) {
	bus := refresh.NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Trigger()
	bus.Trigger()
	bus.Trigger()

	select {
	case v := <-ch:
		require.EqualValues(t, 3, v, "a slow subscriber is only guaranteed the latest value")
	case <-time.After(time.Second):
		t.Fatal("subscriber did not observe any value")
	}

	select {
	case v := <-ch:
		t.Fatalf("unexpected extra delivery %d", v)
	default:
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := refresh.NewBus()
	ch, cancel := bus.Subscribe()
	cancel()

	bus.Trigger()
	select {
	case <-ch:
		t.Fatal("unsubscribed channel must not receive")
	default:
	}
}

func TestTriggerWithNoSubscribersDoesNotBlock(t *testing.T) {
	bus := refresh.NewBus()
	done := make(chan struct{})
	go func() {
		bus.Trigger()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("trigger blocked")
	}
}
