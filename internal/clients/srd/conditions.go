package srd

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/effects"
)

var (
	saveClause      = regexp.MustCompile(`(?i)\bDC (\d+) (strength|dexterity|constitution|intelligence|wisdom|charisma) saving throw`)
	conditionClause = regexp.MustCompile(`(?i)\b(paralyzed|stunned|restrained|grappled|poisoned|frightened|blinded|charmed)\b`)
	durationClause  = regexp.MustCompile(`(?i)\bfor (\d+|one) (round|minute|hour)s?\b`)
)

// saveByAbility maps SRD saving throw abilities onto the classic save table
var saveByAbility = map[string]string{
	"strength":     "paralysis",
	"dexterity":    "breath",
	"constitution": "death",
	"intelligence": "spell",
	"wisdom":       "spell",
	"charisma":     "spell",
}

func immobile(b *effects.Builder) *effects.Builder {
	return b.AddChangeWithPriority("movement.encounter", "0", effects.ModeOverride, 100)
}

func shaken(b *effects.Builder) *effects.Builder {
	return b.AddChange("mod.meleeAttack", "-2", effects.ModeAdd).
		AddChange("mod.missileAttack", "-2", effects.ModeAdd)
}

// conditionChanges are the changes each SRD condition carries. Conditions
// without an entry only mark the actor.
var conditionChanges = map[string]func(*effects.Builder) *effects.Builder{
	"paralyzed":  immobile,
	"stunned":    immobile,
	"restrained": immobile,
	"grappled":   immobile,
	"poisoned":   shaken,
	"frightened": shaken,
	"blinded":    shaken,
}

// conditionEffect reads the first condition an SRD action description
// inflicts and turns it into a status effect. A saving throw named in the
// description becomes the resistance.
func conditionEffect(actionID, description string) *actions.Effect {
	m := conditionClause.FindStringSubmatch(description)
	if m == nil {
		return nil
	}
	name := strings.ToLower(m[1])

	b := effects.NewBuilder(strings.ToUpper(name[:1]) + name[1:]).
		WithDescription(description)
	if change, ok := conditionChanges[name]; ok {
		b = change(b)
	}
	condition := withDuration(b, description).Build()

	effect := &actions.Effect{
		ID:   actionID + "." + name,
		Name: condition.Name,
		Kind: &actions.Status{Condition: condition},
	}
	if save := saveClause.FindStringSubmatch(description); save != nil {
		effect.Flags.CanBeResisted = true
		effect.Resistance = &actions.Resistance{
			Check: &actions.SavingThrow{Save: saveByAbility[strings.ToLower(save[2])]},
		}
	}
	return effect
}

// withDuration converts "for N rounds|minutes|hours". A minute is ten
// rounds and an hour is six turns; anything else lasts one round.
func withDuration(b *effects.Builder, description string) *effects.Builder {
	m := durationClause.FindStringSubmatch(description)
	if m == nil {
		return b.ForRounds(1)
	}
	n := 1
	if v, err := strconv.Atoi(m[1]); err == nil && v > 0 {
		n = v
	}
	switch strings.ToLower(m[2]) {
	case "minute":
		return b.ForRounds(n * 10)
	case "hour":
		return b.ForTurns(n * 6)
	default:
		return b.ForRounds(n)
	}
}
