package actor

import (
	"encoding/json"
	"fmt"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/effects"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// Patch is a typed partial update to an actor document. Values are new
// absolute values, except HitPointsDelta, which is added to the hit points
// stored when the patch is applied.
type Patch struct {
	HitPoints      *int                 `json:"hp,omitempty"`
	HitPointsDelta *int                 `json:"hpDelta,omitempty"`
	ItemQuantity   map[string]int       `json:"itemQuantity,omitempty"`
	ItemUses       map[string]int       `json:"itemUses,omitempty"`
	ActionUses     map[string]int       `json:"actionUses,omitempty"`
	SpellSlots     map[int]int          `json:"spellSlots,omitempty"`
	AddConditions  []*effects.Condition `json:"addConditions,omitempty"`

	// ConditionRounds sets remaining rounds by condition id; conditions at
	// zero are removed
	ConditionRounds map[string]int `json:"conditionRounds,omitempty"`

	RemoveConditions []string `json:"removeConditions,omitempty"`
}

// NewPatch creates an empty patch
func NewPatch() *Patch {
	return &Patch{}
}

// SetHitPoints sets current hit points
func (p *Patch) SetHitPoints(value int) *Patch {
	p.HitPoints = &value
	return p
}

// AdjustHitPoints adds delta to whatever hit points the actor has when the
// patch is applied. Repeated calls accumulate.
func (p *Patch) AdjustHitPoints(delta int) *Patch {
	if p.HitPointsDelta == nil {
		p.HitPointsDelta = new(int)
	}
	*p.HitPointsDelta += delta
	return p
}

// SetItemQuantity sets an item's quantity
func (p *Patch) SetItemQuantity(itemID string, value int) *Patch {
	if p.ItemQuantity == nil {
		p.ItemQuantity = make(map[string]int)
	}
	p.ItemQuantity[itemID] = value
	return p
}

// SetItemUses sets an item's remaining uses
func (p *Patch) SetItemUses(itemID string, value int) *Patch {
	if p.ItemUses == nil {
		p.ItemUses = make(map[string]int)
	}
	p.ItemUses[itemID] = value
	return p
}

// SetActionUses sets an action's remaining uses
func (p *Patch) SetActionUses(actionID string, value int) *Patch {
	if p.ActionUses == nil {
		p.ActionUses = make(map[string]int)
	}
	p.ActionUses[actionID] = value
	return p
}

// SetSpellSlots sets the remaining slots of a spell level
func (p *Patch) SetSpellSlots(level, value int) *Patch {
	if p.SpellSlots == nil {
		p.SpellSlots = make(map[int]int)
	}
	p.SpellSlots[level] = value
	return p
}

// AddCondition attaches a condition instance
func (p *Patch) AddCondition(c *effects.Condition) *Patch {
	p.AddConditions = append(p.AddConditions, c)
	return p
}

// SetConditionRounds sets a timed condition's remaining rounds
func (p *Patch) SetConditionRounds(conditionID string, rounds int) *Patch {
	if p.ConditionRounds == nil {
		p.ConditionRounds = make(map[string]int)
	}
	p.ConditionRounds[conditionID] = rounds
	return p
}

// RemoveCondition detaches a condition instance by id
func (p *Patch) RemoveCondition(conditionID string) *Patch {
	p.RemoveConditions = append(p.RemoveConditions, conditionID)
	return p
}

// IsEmpty reports a patch that changes nothing
func (p *Patch) IsEmpty() bool {
	return p == nil || (p.HitPoints == nil && p.HitPointsDelta == nil && len(p.ItemQuantity) == 0 && len(p.ItemUses) == 0 &&
		len(p.ActionUses) == 0 && len(p.SpellSlots) == 0 && len(p.AddConditions) == 0 &&
		len(p.ConditionRounds) == 0 && len(p.RemoveConditions) == 0)
}

// Apply writes the patch into the actor. Hit points are clamped to
// [0, max]. Unknown items, actions or slot levels are not found errors and
// leave the actor untouched.
func (a *Actor) Apply(p *Patch) error {
	if p.IsEmpty() {
		return nil
	}

	for itemID := range p.ItemQuantity {
		if a.Item(itemID) == nil {
			return dnderr.NotFoundf("item %s not found on actor %s", itemID, a.ID)
		}
	}
	for itemID := range p.ItemUses {
		it := a.Item(itemID)
		if it == nil {
			return dnderr.NotFoundf("item %s not found on actor %s", itemID, a.ID)
		}
		if it.Uses == nil {
			return dnderr.InvalidArgumentf("item %s has no uses to set", itemID)
		}
	}
	for actionID := range p.ActionUses {
		if act, _ := a.FindAction(actionID); act == nil {
			return dnderr.NotFoundf("action %s not found on actor %s", actionID, a.ID)
		}
	}
	for level := range p.SpellSlots {
		if a.SpellSlots[level] == nil {
			return dnderr.NotFoundf("actor %s has no level %d spell slots", a.ID, level)
		}
	}

	for _, c := range p.AddConditions {
		if c == nil || c.ID == "" {
			return dnderr.InvalidArgument("condition must have an ID")
		}
	}

	if p.HitPoints != nil {
		a.HP.Value = a.HP.Clamp(*p.HitPoints)
	}
	if p.HitPointsDelta != nil {
		a.HP.Value = a.HP.Clamp(a.HP.Value + *p.HitPointsDelta)
	}
	for itemID, qty := range p.ItemQuantity {
		a.Item(itemID).Quantity = max(qty, 0)
	}
	for itemID, uses := range p.ItemUses {
		it := a.Item(itemID)
		it.Uses.Value = clamp(uses, it.Uses.Max)
	}
	for actionID, uses := range p.ActionUses {
		act, _ := a.FindAction(actionID)
		act.Uses.Value = clamp(uses, act.Uses.Max)
	}
	for level, value := range p.SpellSlots {
		slot := a.SpellSlots[level]
		slot.Value = clamp(value, slot.Max)
	}

	if len(p.AddConditions) > 0 || len(p.ConditionRounds) > 0 || len(p.RemoveConditions) > 0 {
		for _, c := range a.Conditions {
			if rounds, ok := p.ConditionRounds[c.ID]; ok && !c.Permanent {
				c.RemainingRounds = max(rounds, 0)
			}
		}
		manager := effects.NewManager(a.Conditions...)
		for _, id := range p.RemoveConditions {
			manager.RemoveCondition(id)
		}
		for _, c := range p.AddConditions {
			_ = manager.AddCondition(c)
		}
		a.Conditions = manager.Active()
	}
	return nil
}

func clamp(v, maximum int) int {
	if v < 0 {
		return 0
	}
	if maximum > 0 && v > maximum {
		return maximum
	}
	return v
}

// Clone returns a deep copy of the actor
func (a *Actor) Clone() (*Actor, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal actor %s: %w", a.ID, err)
	}
	var out Actor
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal actor %s: %w", a.ID, err)
	}
	return &out, nil
}
