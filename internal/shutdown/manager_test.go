package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-streams/internal/logger"
)

func TestShutdownRunsInReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop())

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}
	m.Register(record("first"))
	m.Register(record("second"))
	m.Register(record("third"))

	m.Shutdown()

	assert.Equal(t, []string{"third", "second", "first"}, order)
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel should be closed")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	m := NewManager(logger.Nop())
	calls := 0
	m.Register(Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestShutdownTimeoutDoesNotBlock(t *testing.T) {
	m := NewManager(logger.Nop())
	m.SetTimeout(20 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	m.Register(Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()
	require.Less(t, time.Since(start), 2*time.Second)
}
