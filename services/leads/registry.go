package leads

import (
	"sync"
	"time"
)

// DefaultSessionTTL is how long an idle visitor workflow is kept
const DefaultSessionTTL = 30 * time.Minute

type registryEntry struct {
	workflow *Workflow
	lastSeen time.Time
}

// Registry holds one workflow per visitor session
type Registry struct {
	newWorkflow func() *Workflow
	ttl         time.Duration
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]*registryEntry
}

// NewRegistry creates a registry that builds workflows with newWorkflow
func NewRegistry(newWorkflow func() *Workflow, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Registry{
		newWorkflow: newWorkflow,
		ttl:         ttl,
		now:         time.Now,
		entries:     make(map[string]*registryEntry),
	}
}

// Get returns the workflow for a session, creating a Closed one on first use
func (r *Registry) Get(sessionID string) *Workflow {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, ok := r.entries[sessionID]
	if !ok {
		entry = &registryEntry{workflow: r.newWorkflow()}
		r.entries[sessionID] = entry
	}
	entry.lastSeen = now
	return entry.workflow
}

// Lookup returns the workflow for a session without creating or touching it
func (r *Registry) Lookup(sessionID string) (*Workflow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[sessionID]
	if !ok {
		return nil, false
	}
	return entry.workflow, true
}

// Len returns the number of live workflows
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep closes and removes workflows idle for longer than the TTL.
// It returns the number of removed entries.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			entry.workflow.Close()
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until stop is closed
func (r *Registry) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
