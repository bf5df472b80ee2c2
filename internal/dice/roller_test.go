package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	mockdice "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice/mock"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

func TestManualMockRoller(t *testing.T) {
	tests := []struct {
		name      string
		rolls     []int
		count     int
		sides     int
		bonus     int
		wantTotal int
		wantErr   bool
	}{
		{name: "attack roll", rolls: []int{15}, count: 1, sides: 20, wantTotal: 15},
		{name: "ability score", rolls: []int{4, 5, 6}, count: 3, sides: 6, wantTotal: 15},
		{name: "sword damage with bonus", rolls: []int{7}, count: 1, sides: 8, bonus: 1, wantTotal: 8},
		{name: "exhausted", rolls: []int{10}, count: 2, sides: 6, wantErr: true},
		{name: "face off the die", rolls: []int{7}, count: 1, sides: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.rolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.rolls, result.Rolls)
			assert.Equal(t, 0, roller.Remaining())
		})
	}
}

func TestManualMockRoller_OnRoll(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetNextRoll(3)
	roller.SetNextRoll(20)

	var seen []int
	roller.OnRoll(func(_, sides int) { seen = append(seen, sides) })

	_, err := roller.Roll(1, 6, 0)
	require.NoError(t, err)
	_, err = roller.Roll(1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 20}, seen)
}

func TestRandomRoller(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 50; i++ {
		result, err := roller.Roll(3, 6, 0)
		require.NoError(t, err)
		assert.Len(t, result.Rolls, 3)
		assert.GreaterOrEqual(t, result.Total, 3)
		assert.LessOrEqual(t, result.Total, 18)
	}

	_, err := roller.Roll(0, 6, 0)
	assert.True(t, dnderr.IsInvalidArgument(err))
	_, err = roller.Roll(1, 0, 0)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestSeededRoller_Deterministic(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 20; i++ {
		ra, err := a.Roll(1, 20, 0)
		require.NoError(t, err)
		rb, err := b.Roll(1, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, ra.Rolls, rb.Rolls)
	}
}
