package pool_test

import (
	"errors"
	"testing"

	"github.com/eotpcomic/squads/api"
	"github.com/eotpcomic/squads/pool"
)

type conn struct {
	id    int
	dirty bool
}

func newConnPool(t *testing.T, capacity int) *pool.HandlePool[conn] {
	t.Helper()
	nextID := 0
	hp, err := pool.NewHandlePool(capacity,
		func() *conn { nextID++; return &conn{id: nextID, dirty: true} },
		func(c *conn) { c.dirty = false },
	)
	if err != nil {
		t.Fatalf("NewHandlePool: %v", err)
	}
	return hp
}

func TestHandlePoolReuse(t *testing.T) {
	hp := newConnPool(t, 4)
	h1, err := hp.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	first := h1.Get()
	h1.Release()

	h2, err := hp.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if h2.Get() != first {
		t.Error("pool did not reuse the recycled value")
	}
	if h2.Get().dirty {
		t.Error("reset hook did not run before reuse")
	}
}

func TestHandlePoolRecyclesOnLastRelease(t *testing.T) {
	hp := newConnPool(t, 4)
	h, err := hp.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	peer := h.Clone()

	h.Release()
	if s := hp.Stats(); s.Recycled != 0 {
		t.Error("value recycled while a sharing peer still owned it")
	}
	peer.Release()
	if s := hp.Stats(); s.Recycled != 1 || s.FreeLen != 1 {
		t.Errorf("stats after last release = %+v, want one recycled value", s)
	}
}

func TestHandlePoolCapacityBound(t *testing.T) {
	hp := newConnPool(t, 1)
	h1, _ := hp.Acquire()
	h2, _ := hp.Acquire()
	h1.Release()
	h2.Release()

	s := hp.Stats()
	if s.FreeLen != 1 {
		t.Errorf("free list length = %d, want capacity 1", s.FreeLen)
	}
	if s.Dropped != 1 {
		t.Errorf("dropped = %d, want 1", s.Dropped)
	}
}

func TestHandlePoolClose(t *testing.T) {
	hp := newConnPool(t, 4)
	h, _ := hp.Acquire()

	if err := hp.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := hp.Close(); !errors.Is(err, api.ErrPoolClosed) {
		t.Errorf("second Close error = %v, want ErrPoolClosed", err)
	}
	if _, err := hp.Acquire(); !errors.Is(err, api.ErrPoolClosed) {
		t.Errorf("Acquire after Close error = %v, want ErrPoolClosed", err)
	}

	// Outstanding handle stays valid; release drops instead of recycling.
	h.Release()
	if s := hp.Stats(); s.Recycled != 0 || s.FreeLen != 0 {
		t.Errorf("closed pool accepted a value back: %+v", s)
	}
}

func TestHandlePoolInvalidArgs(t *testing.T) {
	if _, err := pool.NewHandlePool[conn](0, func() *conn { return &conn{} }, nil); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("zero capacity error = %v, want ErrInvalidArgument", err)
	}
	if _, err := pool.NewHandlePool[conn](1, nil, nil); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("nil alloc error = %v, want ErrInvalidArgument", err)
	}
}

func TestSyncHandlePool(t *testing.T) {
	sp := pool.NewSyncHandlePool(
		func() *conn { return &conn{dirty: true} },
		func(c *conn) { c.dirty = false },
	)
	h := sp.Acquire()
	peer := h.Clone()
	h.Release()
	peer.Release()

	h2 := sp.Acquire()
	if h2.Get() == nil {
		t.Fatal("sync pool returned a nil value")
	}
	if !h2.Unique() {
		t.Error("freshly acquired handle should be unique")
	}
	h2.Release()
}
