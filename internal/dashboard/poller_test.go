package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return logger
}

func TestPollerImmediateFetch(t *testing.T) {
	fetched := make(chan string, 16)

	p := NewPoller(time.Hour, func(ctx context.Context, symbol string) {
		fetched <- symbol
	}, testLogger())
	defer p.Clear()

	p.Select("BTCUSDT")

	select {
	case symbol := <-fetched:
		assert.Equal(t, "BTCUSDT", symbol)
	case <-time.After(time.Second):
		t.Fatal("no immediate fetch after select")
	}

	assert.True(t, p.Active())
}

func TestPollerRepeats(t *testing.T) {
	fetched := make(chan string, 64)

	p := NewPoller(20*time.Millisecond, func(ctx context.Context, symbol string) {
		fetched <- symbol
	}, testLogger())
	defer p.Clear()

	p.Select("ETHUSDT")

	for i := 0; i < 3; i++ {
		select {
		case <-fetched:
		case <-time.After(time.Second):
			t.Fatal("poll loop stopped repeating")
		}
	}
}

func TestPollerSwitchCancelsPrevious(t *testing.T) {
	fetched := make(chan string, 64)

	p := NewPoller(30*time.Millisecond, func(ctx context.Context, symbol string) {
		fetched <- symbol
	}, testLogger())
	defer p.Clear()

	p.Select("AAAUSDT")

	select {
	case symbol := <-fetched:
		require.Equal(t, "AAAUSDT", symbol)
	case <-time.After(time.Second):
		t.Fatal("no fetch for first symbol")
	}

	p.Select("BBBUSDT")

	deadline := time.After(150 * time.Millisecond)
	sawB := false
	for {
		select {
		case symbol := <-fetched:
			assert.NotEqual(t, "AAAUSDT", symbol, "cancelled loop kept fetching")
			if symbol == "BBBUSDT" {
				sawB = true
			}
		case <-deadline:
			assert.True(t, sawB)
			return
		}
	}
}

func TestPollerClear(t *testing.T) {
	fetched := make(chan string, 64)

	p := NewPoller(20*time.Millisecond, func(ctx context.Context, symbol string) {
		fetched <- symbol
	}, testLogger())

	p.Select("BTCUSDT")
	<-fetched

	p.Clear()
	assert.False(t, p.Active())

	// Drain anything already in flight, then expect silence.
	time.Sleep(50 * time.Millisecond)
	for len(fetched) > 0 {
		<-fetched
	}

	select {
	case symbol := <-fetched:
		t.Fatalf("fetch after clear: %s", symbol)
	case <-time.After(80 * time.Millisecond):
	}
}

func TestPollerSelectEmptyStops(t *testing.T) {
	p := NewPoller(time.Hour, func(ctx context.Context, symbol string) {}, testLogger())

	p.Select("BTCUSDT")
	assert.True(t, p.Active())

	p.Select("")
	assert.False(t, p.Active())
}
