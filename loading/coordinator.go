package loading

import (
	"sync"

	"github.com/taskman/client-go/internal/stream"
)

// Coordinator counts in-flight operations and derives the Busy/Idle phase
// driving the global progress indicator. Every tracked operation must call
// Enter exactly once at dispatch and Leave exactly once when it settles,
// whichever exit path it takes. The final phase depends only on how many
// enters and leaves happened, not on their order.
type Coordinator struct {
	mux   sync.Mutex
	count int
	busy  *stream.Value[bool]
}

func NewCoordinator() *Coordinator {
	return &Coordinator{busy: stream.NewValue(false)}
}

// Enter records the start of a tracked operation.
func (c *Coordinator) Enter() {
	c.mux.Lock()
	c.count++
	count := c.count
	c.mux.Unlock()
	c.busy.Set(count > 0)
}

// Leave records the end of a tracked operation. The count never drops
// below zero; an unpaired Leave keeps the coordinator Idle.
func (c *Coordinator) Leave() {
	c.mux.Lock()
	if c.count > 0 {
		c.count--
	}
	count := c.count
	c.mux.Unlock()
	c.busy.Set(count > 0)
}

// IsLoading reports whether at least one tracked operation is outstanding.
func (c *Coordinator) IsLoading() bool {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.count > 0
}

// Busy is the push view of IsLoading, emitting only on Idle<->Busy
// transitions, never on enters or leaves within the Busy phase.
func (c *Coordinator) Busy() *stream.Value[bool] {
	return c.busy
}
