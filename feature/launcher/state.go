package launcher

import (
	"sync"
	"time"

	"chroma-launcher/core/chroma"
)

// Phase is the lifecycle position of the launcher.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseStarted Phase = "started"
	PhaseFailed  Phase = "failed"
	PhaseServing Phase = "serving"
	PhaseReady   Phase = "ready"
	PhaseStopped Phase = "stopped"
	PhaseCrashed Phase = "crashed"
)

// State is a point-in-time view of the launcher.
type State struct {
	Phase     Phase            `json:"phase"`
	Settings  *chroma.Settings `json:"settings,omitempty"`
	PID       int              `json:"pid,omitempty"`
	StartedAt *time.Time       `json:"started_at,omitempty"`
	ReadyAt   *time.Time       `json:"ready_at,omitempty"`
	LastError string           `json:"last_error,omitempty"`
}

type stateBox struct {
	mu sync.RWMutex
	s  State
}

func (b *stateBox) get() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.s
}

func (b *stateBox) update(fn func(*State)) {
	b.mu.Lock()
	fn(&b.s)
	b.mu.Unlock()
}
