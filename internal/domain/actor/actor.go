package actor

import (
	"strconv"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/effects"
)

// Kind separates player characters from monsters
type Kind string

const (
	KindCharacter Kind = "character"
	KindMonster   Kind = "monster"
)

// Ability keys
const (
	Strength     = "str"
	Intelligence = "int"
	Wisdom       = "wis"
	Dexterity    = "dex"
	Constitution = "con"
	Charisma     = "cha"
)

// Abilities lists ability keys in sheet order
var Abilities = []string{Strength, Intelligence, Wisdom, Dexterity, Constitution, Charisma}

// HitPoints tracks current and maximum hit points
type HitPoints struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// Clamp bounds v to [0, Max]
func (hp HitPoints) Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > hp.Max {
		return hp.Max
	}
	return v
}

// AttackBonuses are the derived to-hit bonuses
type AttackBonuses struct {
	Base    int `json:"base"`
	Melee   int `json:"melee"`
	Missile int `json:"missile"`
}

// DamageBonuses are the derived damage bonuses
type DamageBonuses struct {
	Melee   int `json:"melee"`
	Missile int `json:"missile"`
}

// Class is the class-like component carrying the save table. Saves maps the
// first level of each bracket to save targets by name.
type Class struct {
	Key   string                 `json:"key"`
	Name  string                 `json:"name"`
	Saves map[int]map[string]int `json:"saves,omitempty"`
}

// SaveTarget returns the target for save at level, reading the highest
// bracket at or below level
func (c *Class) SaveTarget(level int, save string) (int, bool) {
	if c == nil {
		return 0, false
	}
	best := -1
	for bracket := range c.Saves {
		if bracket <= level && bracket > best {
			best = bracket
		}
	}
	if best < 0 {
		return 0, false
	}
	target, ok := c.Saves[best][save]
	return target, ok
}

// Limited is a value/max counter for item uses and spell slots
type Limited struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// Item is an owned item that may carry actions
type Item struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Quantity int               `json:"quantity"`
	Uses     *Limited          `json:"uses,omitempty"`
	Weight   int               `json:"weight,omitempty"`
	Actions  []*actions.Action `json:"actions,omitempty"`
}

// Action looks up an action carried by the item
func (i *Item) Action(id string) *actions.Action {
	for _, a := range i.Actions {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Actor is a character or monster document
type Actor struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Kind                Kind                 `json:"kind"`
	Level               int                  `json:"level"`
	Abilities           map[string]int       `json:"abilities"`
	HP                  HitPoints            `json:"hp"`
	ArmorClass          int                  `json:"ac"`
	AscendingArmorClass int                  `json:"aac"`
	THAC0Value          int                  `json:"thac0,omitempty"`
	Attack              AttackBonuses        `json:"attack"`
	Damage              DamageBonuses        `json:"damage"`
	Class               *Class               `json:"class,omitempty"`
	Items               []*Item              `json:"items,omitempty"`
	Actions             []*actions.Action    `json:"actions,omitempty"`
	SpellSlots          map[int]*Limited     `json:"spellSlots,omitempty"`
	Conditions          []*effects.Condition `json:"conditions,omitempty"`
	SavingThrowSystem   string               `json:"savingThrowSystem,omitempty"`
	Movement            int                  `json:"movement,omitempty"`
	ArmorWeight         string               `json:"armorWeight,omitempty"`
}

// Ref returns the document reference for the actor
func (a *Actor) Ref() string {
	return "Actor." + a.ID
}

// Item looks up an owned item by id
func (a *Actor) Item(id string) *Item {
	for _, it := range a.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// FindAction locates an action on the actor or one of its items. The item
// is nil when the action belongs to the actor itself.
func (a *Actor) FindAction(id string) (*actions.Action, *Item) {
	for _, act := range a.Actions {
		if act.ID == id {
			return act, nil
		}
	}
	for _, it := range a.Items {
		if act := it.Action(id); act != nil {
			return act, it
		}
	}
	return nil, nil
}

// AbilityScore returns an ability score, zero when unknown
func (a *Actor) AbilityScore(ability string) int {
	return a.Abilities[ability]
}

// THAC0 returns the actor's own THAC0, zero when unset
func (a *Actor) THAC0() int {
	return a.THAC0Value
}

// Defense returns the armour class values after active conditions
func (a *Actor) Defense() (ac, aac int) {
	vars := effects.NewManager(a.Conditions...).Apply(map[string]int{
		"ac":  a.ArmorClass,
		"aac": a.AscendingArmorClass,
	})
	return vars["ac"], vars["aac"]
}

// ModifierTable maps an ability score to its modifier
type ModifierTable interface {
	Modifier(score int) int
}

// Variables returns the actor's derived stats as formula bindings, with
// active conditions applied
func (a *Actor) Variables(table ModifierTable) dice.Variables {
	vars := map[string]int{
		"level":             a.Level,
		"hp.value":          a.HP.Value,
		"hp.max":            a.HP.Max,
		"ac":                a.ArmorClass,
		"aac":               a.AscendingArmorClass,
		"thac0":             a.THAC0Value,
		"movement":          a.Movement,
		"mod.baseAttack":    a.Attack.Base,
		"mod.meleeAttack":   a.Attack.Melee,
		"mod.missileAttack": a.Attack.Missile,
		"mod.meleeDamage":   a.Damage.Melee,
		"mod.missileDamage": a.Damage.Missile,
	}
	for key, score := range a.Abilities {
		vars["abilities."+key+".value"] = score
		if table != nil {
			vars["abilities."+key+".mod"] = table.Modifier(score)
		}
	}
	for level, slot := range a.SpellSlots {
		vars["spells."+strconv.Itoa(level)+".value"] = slot.Value
	}
	return dice.Variables(effects.NewManager(a.Conditions...).Apply(vars))
}
