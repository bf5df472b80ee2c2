package actions

import (
	"encoding/json"
	"fmt"
	"strings"
)

// VariantData wraps a tagged-union payload with its type for JSON marshaling
type VariantData struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

func variantToData(typ string, payload any) (*VariantData, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", typ, err)
	}
	return &VariantData{Type: typ, Data: data}, nil
}

func decodePayload[T any](data json.RawMessage) (*T, error) {
	out := new(T)
	if len(data) == 0 || string(data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// dataToConsumption converts VariantData back to a Consumption
func dataToConsumption(v *VariantData) (Consumption, error) {
	var (
		c   Consumption
		err error
	)
	switch ConsumptionType(strings.ToLower(v.Type)) {
	case ConsumeSelfQuantity:
		c, err = decodePayload[SelfQuantity](v.Data)
	case ConsumeSelfUses:
		c, err = decodePayload[SelfUses](v.Data)
	case ConsumeItemQuantity:
		c, err = decodePayload[ItemQuantity](v.Data)
	case ConsumeItemUses:
		c, err = decodePayload[ItemUses](v.Data)
	case ConsumeHitPoints:
		c, err = decodePayload[HitPoints](v.Data)
	case ConsumeSpellSlot:
		c, err = decodePayload[SpellSlot](v.Data)
	case ConsumeActionUses:
		c, err = decodePayload[ActionUses](v.Data)
	default:
		return nil, fmt.Errorf("unknown consumption type %q", v.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s consumption: %w", v.Type, err)
	}
	return c, nil
}

// dataToEffectKind converts VariantData back to an EffectKind
func dataToEffectKind(v *VariantData) (EffectKind, error) {
	var (
		k   EffectKind
		err error
	)
	switch EffectType(strings.ToLower(v.Type)) {
	case EffectDamage:
		k, err = decodePayload[Damage](v.Data)
	case EffectHealing:
		k, err = decodePayload[Healing](v.Data)
	case EffectStatus:
		k, err = decodePayload[Status](v.Data)
	case EffectMacro:
		k, err = decodePayload[Macro](v.Data)
	case EffectScript:
		k, err = decodePayload[Script](v.Data)
	case EffectRollTable:
		k, err = decodePayload[RollTable](v.Data)
	case EffectNone, "":
		k = &NoEffect{}
	default:
		return nil, fmt.Errorf("unknown effect type %q", v.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s effect: %w", v.Type, err)
	}
	return k, nil
}

// dataToResistanceCheck converts VariantData back to a ResistanceCheck
func dataToResistanceCheck(v *VariantData) (ResistanceCheck, error) {
	var (
		r   ResistanceCheck
		err error
	)
	switch ResistanceType(strings.ToLower(v.Type)) {
	case ResistSavingThrow:
		r, err = decodePayload[SavingThrow](v.Data)
	case ResistAbilityCheck:
		r, err = decodePayload[AbilityCheck](v.Data)
	case ResistStaticRoll:
		r, err = decodePayload[StaticRoll](v.Data)
	default:
		return nil, fmt.Errorf("unknown resistance type %q", v.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s resistance: %w", v.Type, err)
	}
	return r, nil
}

// MarshalJSON writes the consumption variant under a type envelope
func (a Action) MarshalJSON() ([]byte, error) {
	type alias Action
	out := struct {
		alias
		Consumption *VariantData `json:"consumption,omitempty"`
	}{alias: alias(a)}

	if a.Consumption != nil {
		data, err := variantToData(string(a.Consumption.Type()), a.Consumption)
		if err != nil {
			return nil, err
		}
		out.Consumption = data
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the consumption envelope back into its variant
func (a *Action) UnmarshalJSON(b []byte) error {
	type alias Action
	in := struct {
		*alias
		Consumption *VariantData `json:"consumption,omitempty"`
	}{alias: (*alias)(a)}

	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	a.Consumption = nil
	if in.Consumption != nil {
		c, err := dataToConsumption(in.Consumption)
		if err != nil {
			return err
		}
		a.Consumption = c
	}
	return nil
}

// MarshalJSON writes the effect kind as type and data
func (e Effect) MarshalJSON() ([]byte, error) {
	type alias Effect
	out := struct {
		alias
		Type EffectType      `json:"type"`
		Data json.RawMessage `json:"data,omitempty"`
	}{alias: alias(e), Type: EffectNone}

	if e.Kind != nil {
		data, err := variantToData(string(e.Kind.Type()), e.Kind)
		if err != nil {
			return nil, err
		}
		out.Type = e.Kind.Type()
		out.Data = data.Data
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads type and data back into the effect kind
func (e *Effect) UnmarshalJSON(b []byte) error {
	type alias Effect
	in := struct {
		*alias
		Type string          `json:"type"`
		Data json.RawMessage `json:"data,omitempty"`
	}{alias: (*alias)(e)}

	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	kind, err := dataToEffectKind(&VariantData{Type: in.Type, Data: in.Data})
	if err != nil {
		return err
	}
	e.Kind = kind
	return nil
}

// MarshalJSON writes the resistance check as type and data
func (r Resistance) MarshalJSON() ([]byte, error) {
	type alias Resistance
	out := struct {
		alias
		Type ResistanceType  `json:"type,omitempty"`
		Data json.RawMessage `json:"data,omitempty"`
	}{alias: alias(r)}

	if r.Check != nil {
		data, err := variantToData(string(r.Check.Type()), r.Check)
		if err != nil {
			return nil, err
		}
		out.Type = r.Check.Type()
		out.Data = data.Data
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads type and data back into the resistance check
func (r *Resistance) UnmarshalJSON(b []byte) error {
	type alias Resistance
	in := struct {
		*alias
		Type string          `json:"type"`
		Data json.RawMessage `json:"data,omitempty"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	r.Check = nil
	if in.Type == "" {
		return nil
	}
	check, err := dataToResistanceCheck(&VariantData{Type: in.Type, Data: in.Data})
	if err != nil {
		return err
	}
	r.Check = check
	return nil
}
