package srd

import (
	"regexp"
	"strconv"
	"strings"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
)

// monsterSaves is the classic monster save table, by hit dice bracket
var monsterSaves = map[int]map[string]int{
	1:  {"death": 12, "wands": 13, "paralysis": 14, "breath": 15, "spell": 16},
	4:  {"death": 10, "wands": 11, "paralysis": 12, "breath": 13, "spell": 14},
	7:  {"death": 8, "wands": 9, "paralysis": 10, "breath": 10, "spell": 12},
	10: {"death": 6, "wands": 7, "paralysis": 8, "breath": 8, "spell": 10},
	13: {"death": 4, "wands": 5, "paralysis": 6, "breath": 5, "spell": 8},
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// MonsterToActor converts an SRD monster. Hit dice become the level and
// every attack or damaging action becomes an attack-like Action. A
// condition named in an action's description becomes a status effect.
func MonsterToActor(m *apiEntities.Monster) *actor.Actor {
	if m == nil {
		return nil
	}

	saves := make(map[int]map[string]int, len(monsterSaves))
	for bracket, table := range monsterSaves {
		row := make(map[string]int, len(table))
		for k, v := range table {
			row[k] = v
		}
		saves[bracket] = row
	}

	a := &actor.Actor{
		ID:                  m.Key,
		Name:                m.Name,
		Kind:                actor.KindMonster,
		Level:               hitDiceLevel(m.HitDice),
		HP:                  actor.HitPoints{Value: m.HitPoints, Max: m.HitPoints},
		AscendingArmorClass: m.ArmorClass,
		ArmorClass:          19 - m.ArmorClass,
		Class:               &actor.Class{Key: "monster", Name: m.Type, Saves: saves},
	}

	for _, ma := range m.MonsterActions {
		if ma == nil {
			continue
		}
		a.Actions = append(a.Actions, monsterAction(m.Key, ma))
	}
	return a
}

// hitDiceLevel reads the die count of "NdX"; anything else is level 1
func hitDiceLevel(hitDice string) int {
	count, _, ok := strings.Cut(strings.TrimSpace(hitDice), "d")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func monsterAction(monsterKey string, ma *apiEntities.MonsterAction) *actions.Action {
	id := monsterKey + "." + strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(ma.Name), "-"), "-")
	act := &actions.Action{
		ID:          id,
		Name:        ma.Name,
		Description: ma.Description,
		Effects:     []*actions.Effect{},
	}

	for i, d := range ma.Damage {
		if d == nil || strings.TrimSpace(d.DamageDice) == "" {
			continue
		}
		act.AddEffect(&actions.Effect{
			ID:   id + ".damage-" + strconv.Itoa(i+1),
			Name: "Damage",
			Kind: &actions.Damage{Formula: strings.ReplaceAll(d.DamageDice, " ", "")},
		})
	}

	damaging := len(act.Effects) > 0
	if status := conditionEffect(id, ma.Description); status != nil {
		act.AddEffect(status)
	}

	if ma.AttackBonus == 0 && !damaging {
		return act
	}

	attackType := actions.AttackMelee
	if strings.Contains(strings.ToLower(ma.Description), "ranged") {
		attackType = actions.AttackMissile
	}
	act.Flags.UsesAttempt = true
	act.Attempt = actions.Attempt{
		Flags:  actions.AttemptFlags{IsLikeAttack: true},
		Attack: actions.AttackSpec{Type: attackType},
		Roll:   actions.RollSpec{Modifier: ma.AttackBonus},
		Flavor: actions.Flavor{Success: "Hit!", Fail: "Miss."},
	}
	return act
}
