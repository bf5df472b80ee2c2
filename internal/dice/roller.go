package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult is the outcome of rolling one group of identical dice
type RollResult struct {
	Total int   // Sum of all dice plus bonus
	Rolls []int // Individual die results
	Bonus int   // Bonus applied
	Count int   // Number of dice rolled
	Sides int   // Number of sides on each die
}
