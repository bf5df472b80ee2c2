package effects

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"
)

// Manager tracks the conditions attached to one actor
type Manager struct {
	conditions map[string]*Condition
	mu         sync.RWMutex
}

// NewManager creates a manager seeded with existing conditions
func NewManager(existing ...*Condition) *Manager {
	m := &Manager{
		conditions: make(map[string]*Condition),
	}
	for _, c := range existing {
		if c != nil && c.ID != "" {
			m.conditions[c.ID] = c
		}
	}
	return m
}

// AddCondition attaches a condition. A condition with the same name from
// the same effect replaces the earlier instance.
func (m *Manager) AddCondition(condition *Condition) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if condition.ID == "" {
		return fmt.Errorf("condition must have an ID")
	}

	for id, existing := range m.conditions {
		if existing.Name == condition.Name && existing.Origin.EffectID == condition.Origin.EffectID {
			delete(m.conditions, id)
		}
	}

	m.conditions[condition.ID] = condition
	return nil
}

// RemoveCondition removes a condition by ID
func (m *Manager) RemoveCondition(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conditions, id)
}

// RemoveByAction removes every condition attached by an action
func (m *Manager) RemoveByAction(actionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, c := range m.conditions {
		if c.Origin.ActionID == actionID {
			delete(m.conditions, id)
		}
	}
}

// Active returns non-expired conditions ordered by application time
func (m *Manager) Active() []*Condition {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := []*Condition{}
	for _, c := range m.conditions {
		if !c.IsExpired() {
			active = append(active, c)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].AppliedAt.Equal(active[j].AppliedAt) {
			return active[i].ID < active[j].ID
		}
		return active[i].AppliedAt.Before(active[j].AppliedAt)
	})
	return active
}

// ProcessRoundEnd ticks every timed condition down one round and returns
// those that expired
func (m *Manager) ProcessRoundEnd() []*Condition {
	m.mu.Lock()
	defer m.mu.Unlock()

	expired := []*Condition{}
	for id, c := range m.conditions {
		if c.Permanent {
			continue
		}
		c.RemainingRounds--
		if c.IsExpired() {
			expired = append(expired, c)
			delete(m.conditions, id)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i].ID < expired[j].ID })
	return expired
}

// Apply layers the changes of every active condition over values
func (m *Manager) Apply(values map[string]int) map[string]int {
	changes := []Change{}
	for _, c := range m.Active() {
		changes = append(changes, c.Changes...)
	}
	return ApplyChanges(values, changes)
}

// ApplyChanges returns a copy of values with changes applied in ascending
// priority order. Non-numeric values and custom-mode changes are skipped.
func ApplyChanges(values map[string]int, changes []Change) map[string]int {
	out := make(map[string]int, len(values))
	for k, v := range values {
		out[k] = v
	}

	ordered := make([]Change, len(changes))
	copy(ordered, changes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].EffectivePriority() < ordered[j].EffectivePriority()
	})

	for _, change := range ordered {
		if change.Mode == ModeCustom {
			continue
		}
		delta, err := strconv.Atoi(change.Value)
		if err != nil {
			log.Printf("Conditions: skipping change %s=%q: not an integer", change.Key, change.Value)
			continue
		}

		current := out[change.Key]
		switch change.Mode {
		case ModeAdd:
			out[change.Key] = current + delta
		case ModeMultiply:
			out[change.Key] = current * delta
		case ModeOverride:
			out[change.Key] = delta
		case ModeUpgrade:
			if delta > current {
				out[change.Key] = delta
			}
		case ModeDowngrade:
			if delta < current {
				out[change.Key] = delta
			}
		}
	}
	return out
}
