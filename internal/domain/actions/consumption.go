package actions

// ConsumptionType names a consumption variant
type ConsumptionType string

const (
	ConsumeSelfQuantity ConsumptionType = "self-quantity"
	ConsumeSelfUses     ConsumptionType = "self-uses"
	ConsumeItemQuantity ConsumptionType = "item-quantity"
	ConsumeItemUses     ConsumptionType = "item-uses"
	ConsumeHitPoints    ConsumptionType = "hit-points"
	ConsumeSpellSlot    ConsumptionType = "spell-slot"
	ConsumeActionUses   ConsumptionType = "action-uses"
)

// Consumption is the resource an action spends when used
type Consumption interface {
	Type() ConsumptionType
	// Cost is the amount spent, at least one
	Cost() int
}

// cost treats an unset amount as one
func cost(amount int) int {
	if amount <= 0 {
		return 1
	}
	return amount
}

// SelfQuantity spends the quantity of the originating item
type SelfQuantity struct {
	Amount int `json:"amount"`
}

func (*SelfQuantity) Type() ConsumptionType { return ConsumeSelfQuantity }
func (c *SelfQuantity) Cost() int { return cost(c.Amount) }

// SelfUses spends uses of the originating item
type SelfUses struct {
	Amount int `json:"amount"`
}

func (*SelfUses) Type() ConsumptionType { return ConsumeSelfUses }
func (c *SelfUses) Cost() int { return cost(c.Amount) }

// ItemQuantity spends the quantity of another owned item
type ItemQuantity struct {
	Amount  int    `json:"amount"`
	ItemRef string `json:"item"`
}

func (*ItemQuantity) Type() ConsumptionType { return ConsumeItemQuantity }
func (c *ItemQuantity) Cost() int { return cost(c.Amount) }

// ItemUses spends uses of another owned item
type ItemUses struct {
	Amount  int    `json:"amount"`
	ItemRef string `json:"item"`
}

func (*ItemUses) Type() ConsumptionType { return ConsumeItemUses }
func (c *ItemUses) Cost() int { return cost(c.Amount) }

// HitPoints spends the actor's own hit points
type HitPoints struct {
	Amount int `json:"amount"`
}

func (*HitPoints) Type() ConsumptionType { return ConsumeHitPoints }
func (c *HitPoints) Cost() int { return cost(c.Amount) }

// SpellSlot spends a spell slot of the given level
type SpellSlot struct {
	Amount int `json:"amount"`
	Level  int `json:"level"`
}

func (*SpellSlot) Type() ConsumptionType { return ConsumeSpellSlot }
func (c *SpellSlot) Cost() int { return cost(c.Amount) }

// ActionUses spends the action's own uses counter by Amount
type ActionUses struct {
	Amount int `json:"amount"`
}

func (*ActionUses) Type() ConsumptionType { return ConsumeActionUses }
func (c *ActionUses) Cost() int { return cost(c.Amount) }

// NeedsOriginItem reports whether the consumption spends the item the
// action was used from
func NeedsOriginItem(c Consumption) bool {
	switch c.(type) {
	case *SelfQuantity, *SelfUses:
		return true
	}
	return false
}
