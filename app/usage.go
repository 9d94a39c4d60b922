package app

import "sync"

// FreeUseLimit is how many times a non-premium session may run each feature.
const FreeUseLimit = 2

type quotaError struct {
	Limit int
	Used  int
}

func (e quotaError) Error() string {
	return "usage limit reached"
}

// Gate counts feature uses per session subject. Counters live in process
// memory only; restarting the server (the page-reload analog) resets them,
// and they are never consulted for premium sessions.
type Gate struct {
	mu       sync.Mutex
	counters map[string]map[string]int
}

func NewGate() *Gate {
	return &Gate{counters: map[string]map[string]int{}}
}

// Allow reports whether the session may run the feature. Premium sessions
// are unlimited regardless of counter state.
func (g *Gate) Allow(subject, featureID string, premium bool) bool {
	if premium {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counters[subject][featureID] < FreeUseLimit
}

// RecordUse increments the feature counter. No-op for premium sessions.
func (g *Gate) RecordUse(subject, featureID string, premium bool) {
	if premium {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	byFeature, ok := g.counters[subject]
	if !ok {
		byFeature = map[string]int{}
		g.counters[subject] = byFeature
	}
	byFeature[featureID]++
}

// Used returns the recorded count for a session and feature.
func (g *Gate) Used(subject, featureID string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counters[subject][featureID]
}
