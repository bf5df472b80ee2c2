package resolver

import (
	"context"
	"fmt"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// consume charges the declared resource and the action's own uses in one
// document update, before anything is rolled
func (r *ActionResolver) consume(ctx context.Context) error {
	patch := actor.NewPatch()
	consumed := &Consumed{}
	usesCost := 1

	if r.action.Flags.UsesConsumption {
		cost, err := r.chargeResource(ctx, patch, consumed)
		if err != nil {
			return err
		}
		if cost > 0 {
			usesCost = cost
		}
	}

	if r.action.Uses.Finite() {
		if r.action.Uses.Value < usesCost {
			return dnderr.Validationf("%s needs %d uses but has %d", r.action.Name, usesCost, r.action.Uses.Value).
				WithAction(r.action.ID)
		}
		patch.SetActionUses(r.action.ID, r.action.Uses.Value-usesCost)
		consumed.ActionUses = usesCost
	}

	if patch.IsEmpty() {
		return nil
	}

	updated, err := r.documents.UpdateDocument(ctx, r.source.Ref(), patch)
	if err != nil {
		return dnderr.Wrapf(err, "failed to charge %s for %s", r.source.ID, r.action.Name)
	}
	if updated != nil {
		r.source = updated
	}
	r.result.Consumed = consumed
	return nil
}

// chargeResource adds the declared consumption to patch. It returns the
// action-uses cost when the action consumes its own uses, zero otherwise.
func (r *ActionResolver) chargeResource(ctx context.Context, patch *actor.Patch, consumed *Consumed) (int, error) {
	c := r.action.Consumption
	cost := c.Cost()
	consumed.Type = c.Type()
	consumed.Amount = cost

	insufficient := func(what string, have int) error {
		return dnderr.Validationf("%s needs %d %s but only %d remain", r.action.Name, cost, what, have).
			WithAction(r.action.ID)
	}

	switch v := c.(type) {
	case *actions.SelfQuantity:
		if r.item.Quantity < cost {
			return 0, insufficient(r.item.Name, r.item.Quantity)
		}
		patch.SetItemQuantity(r.item.ID, r.item.Quantity-cost)
		consumed.ItemID = r.item.ID

	case *actions.SelfUses:
		if r.item.Uses == nil {
			return 0, dnderr.Validationf("%s has no uses to spend", r.item.Name)
		}
		if r.item.Uses.Value < cost {
			return 0, insufficient("uses of "+r.item.Name, r.item.Uses.Value)
		}
		patch.SetItemUses(r.item.ID, r.item.Uses.Value-cost)
		consumed.ItemID = r.item.ID

	case *actions.ItemQuantity:
		item, err := r.ownedItem(ctx, v.ItemRef)
		if err != nil {
			return 0, err
		}
		if item.Quantity < cost {
			return 0, insufficient(item.Name, item.Quantity)
		}
		patch.SetItemQuantity(item.ID, item.Quantity-cost)
		consumed.ItemID = item.ID

	case *actions.ItemUses:
		item, err := r.ownedItem(ctx, v.ItemRef)
		if err != nil {
			return 0, err
		}
		if item.Uses == nil {
			return 0, dnderr.Validationf("%s has no uses to spend", item.Name)
		}
		if item.Uses.Value < cost {
			return 0, insufficient("uses of "+item.Name, item.Uses.Value)
		}
		patch.SetItemUses(item.ID, item.Uses.Value-cost)
		consumed.ItemID = item.ID

	case *actions.HitPoints:
		if r.source.HP.Value < cost {
			return 0, insufficient("hit points", r.source.HP.Value)
		}
		patch.AdjustHitPoints(-cost)

	case *actions.SpellSlot:
		slot := r.source.SpellSlots[v.Level]
		if slot == nil || slot.Value < cost {
			have := 0
			if slot != nil {
				have = slot.Value
			}
			return 0, insufficient(spellSlotLabel(v.Level), have)
		}
		patch.SetSpellSlots(v.Level, slot.Value-cost)

	case *actions.ActionUses:
		return cost, nil

	default:
		return 0, dnderr.Validationf("%s declares unsupported consumption %T", r.action.Name, c)
	}
	return 0, nil
}

// ownedItem finds a consumed item on the acting actor, by id or by
// reference
func (r *ActionResolver) ownedItem(ctx context.Context, ref string) (*actor.Item, error) {
	if item := r.source.Item(ref); item != nil {
		return item, nil
	}
	if r.references == nil {
		return nil, dnderr.Validationf("item %s is not carried by %s", ref, r.source.Name)
	}

	owner, item, err := r.references.ResolveItem(ctx, ref)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to resolve item %s", ref)
	}
	if item == nil {
		return nil, dnderr.Validationf("item %s does not exist", ref)
	}
	if owner == nil || owner.ID != r.source.ID {
		return nil, dnderr.Validationf("item %s is not carried by %s", ref, r.source.Name)
	}

	// Spend from the actor being patched, not the resolved copy
	own := r.source.Item(item.ID)
	if own == nil {
		return nil, dnderr.Validationf("item %s is not carried by %s", ref, r.source.Name)
	}
	return own, nil
}

func spellSlotLabel(level int) string {
	return fmt.Sprintf("level %d spell slots", level)
}
