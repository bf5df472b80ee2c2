package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice/mock"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

func TestEvaluate_Formulas(t *testing.T) {
	tests := []struct {
		name      string
		formula   string
		vars      dice.Variables
		rolls     []int
		wantTotal int
		wantExpr  string
	}{
		{name: "constant", formula: "7", wantTotal: 7, wantExpr: "7"},
		{name: "single die", formula: "1d20", rolls: []int{13}, wantTotal: 13, wantExpr: "1d20"},
		{name: "implicit count", formula: "d6+1", rolls: []int{4}, wantTotal: 5, wantExpr: "d6+1"},
		{name: "multiple dice", formula: "2d6 + 3", rolls: []int{2, 5}, wantTotal: 10, wantExpr: "2d6 + 3"},
		{name: "subtraction", formula: "1d8-2", rolls: []int{1}, wantTotal: -1, wantExpr: "1d8-2"},
		{name: "precedence", formula: "2+3*4", wantTotal: 14, wantExpr: "2+3*4"},
		{name: "parentheses", formula: "(1d4+1)*2", rolls: []int{3}, wantTotal: 8, wantExpr: "(1d4+1)*2"},
		{name: "division truncates", formula: "7/2", wantTotal: 3, wantExpr: "7/2"},
		{name: "keep highest", formula: "4d6kh3", rolls: []int{1, 6, 3, 5}, wantTotal: 14, wantExpr: "4d6kh3"},
		{name: "keep lowest", formula: "2d20kl", rolls: []int{17, 4}, wantTotal: 4, wantExpr: "2d20kl"},
		{name: "percentile", formula: "d%", rolls: []int{64}, wantTotal: 64, wantExpr: "d%"},
		{
			name:      "bound variable",
			formula:   "1d20+@mod.meleeAttack",
			vars:      dice.Variables{"mod.meleeAttack": 2},
			rolls:     []int{13},
			wantTotal: 15,
			wantExpr:  "1d20+2",
		},
		{
			name:      "negative variable",
			formula:   "1d6+@mod.str",
			vars:      dice.Variables{"mod.str": -1},
			rolls:     []int{3},
			wantTotal: 2,
			wantExpr:  "1d6+(-1)",
		},
		{
			name:      "unresolved variable is zero",
			formula:   "1d6+@missing.path",
			rolls:     []int{3},
			wantTotal: 3,
			wantExpr:  "1d6+0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.rolls)
			evaluator := dice.NewEvaluator(roller)

			outcome, err := evaluator.Evaluate(tt.formula, tt.vars, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, outcome.Total)
			assert.Equal(t, tt.wantExpr, outcome.Formula)
			assert.Nil(t, outcome.Success, "plain roll has no success")
			assert.True(t, outcome.IsPlain())
			assert.Zero(t, roller.Remaining())
		})
	}
}

func TestEvaluate_Malformed(t *testing.T) {
	evaluator := dice.NewEvaluator(dice.NewSeededRoller(1))
	for _, formula := range []string{"", "1d", "2d6+", "(1d6", "1d6)", "abc", "1d6 ^ 2", "0d6", "1/0", "99999999999999999999", "1d99999999999999999999", "4d6k99999999999999999999"} {
		t.Run(formula, func(t *testing.T) {
			_, err := evaluator.Evaluate(formula, nil, nil)
			require.Error(t, err)
			assert.True(t, dnderr.IsEvaluation(err), "got %v", err)
		})
	}
}

func TestEvaluate_ModifierAppended(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{10, 10, 10})
	evaluator := dice.NewEvaluator(roller)

	out, err := evaluator.Evaluate("1d20", nil, &dice.Options{Modifier: 3})
	require.NoError(t, err)
	assert.Equal(t, "1d20+3", out.Formula)
	assert.Equal(t, 13, out.Total)

	out, err = evaluator.Evaluate("1d20", nil, &dice.Options{Modifier: -4})
	require.NoError(t, err)
	assert.Equal(t, "1d20-4", out.Formula)
	assert.Equal(t, 6, out.Total)

	out, err = evaluator.Evaluate("1d20", nil, &dice.Options{})
	require.NoError(t, err)
	assert.Equal(t, "1d20", out.Formula)
}

func TestEvaluate_TargetAndOperator(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{12, 12})
	evaluator := dice.NewEvaluator(roller)

	out, err := evaluator.Evaluate("1d20", nil, dice.Against(dice.GreaterOrEqual, 12))
	require.NoError(t, err)
	require.NotNil(t, out.Success)
	assert.True(t, out.Succeeded())
	assert.Equal(t, "{1d20}cs>=12", out.Formula)

	out, err = evaluator.Evaluate("1d20", nil, dice.Against(dice.Less, 12))
	require.NoError(t, err)
	assert.False(t, out.Succeeded())
	assert.False(t, out.IsPlain())

	_, err = evaluator.Evaluate("1d20", nil, dice.Against(dice.Operator("!="), 12))
	assert.True(t, dnderr.IsEvaluation(err))
}

func TestEvaluate_Natural(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1, 19, 4})
	evaluator := dice.NewEvaluator(roller)

	out, err := evaluator.Evaluate("1d20+5", nil, nil)
	require.NoError(t, err)
	natural, ok := out.Natural()
	require.True(t, ok)
	assert.Equal(t, 1, natural)

	out, err = evaluator.Evaluate("2d20kh", nil, nil)
	require.NoError(t, err)
	natural, ok = out.Natural()
	require.True(t, ok)
	assert.Equal(t, 19, natural)

	roller.SetRolls([]int{4})
	out, err = evaluator.Evaluate("1d6", nil, nil)
	require.NoError(t, err)
	_, ok = out.Natural()
	assert.False(t, ok)
}

func TestEvaluate_RerollStrategies(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	evaluator := dice.NewEvaluator(roller)

	roller.SetRolls([]int{5, 16})
	best, err := evaluator.Evaluate("1d20", nil, &dice.Options{Reroll: dice.RerollBestOfTwo})
	require.NoError(t, err)
	assert.Equal(t, 16, best.Total)
	require.NotNil(t, best.Discarded)
	assert.Equal(t, 5, best.Discarded.Total)

	roller.SetRolls([]int{5, 16})
	worst, err := evaluator.Evaluate("1d20", nil, &dice.Options{Reroll: dice.RerollWorstOfTwo})
	require.NoError(t, err)
	assert.Equal(t, 5, worst.Total)
	assert.Equal(t, 16, worst.Discarded.Total)
}

func TestEvaluate_RerollSecondaryFailureKeepsPrimary(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{9}) // nothing left for the second roll
	evaluator := dice.NewEvaluator(roller)

	out, err := evaluator.Evaluate("1d20", nil, &dice.Options{Reroll: dice.RerollBestOfTwo})
	require.NoError(t, err)
	assert.Equal(t, 9, out.Total)
	assert.Nil(t, out.Discarded)
}

func TestEvaluate_RerollBoundsAgainstIndependentRolls(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		// Two seeded rollers replay the exact pair of totals the strategy sees.
		first := dice.NewEvaluator(dice.NewSeededRoller(seed))
		a, err := first.Evaluate("3d6+1", nil, nil)
		require.NoError(t, err)
		b, err := first.Evaluate("3d6+1", nil, nil)
		require.NoError(t, err)

		best, err := dice.NewEvaluator(dice.NewSeededRoller(seed)).
			Evaluate("3d6+1", nil, &dice.Options{Reroll: dice.RerollBestOfTwo})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, best.Total, a.Total)
		assert.GreaterOrEqual(t, best.Total, b.Total)

		worst, err := dice.NewEvaluator(dice.NewSeededRoller(seed)).
			Evaluate("3d6+1", nil, &dice.Options{Reroll: dice.RerollWorstOfTwo})
		require.NoError(t, err)
		assert.LessOrEqual(t, worst.Total, a.Total)
		assert.LessOrEqual(t, worst.Total, b.Total)
	}
}

func TestEvaluate_RerollRecomputesSuccess(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{3, 18})
	evaluator := dice.NewEvaluator(roller)

	opts := dice.Against(dice.GreaterOrEqual, 15)
	opts.Reroll = dice.RerollBestOfTwo
	out, err := evaluator.Evaluate("1d20", nil, opts)
	require.NoError(t, err)
	assert.True(t, out.Succeeded())
	assert.False(t, out.Discarded.Succeeded())
}

func TestSubstitute(t *testing.T) {
	vars := dice.Variables{"a": 3, "x.y_z": -2}
	assert.Equal(t, "1d6+3+(-2)+0", dice.Substitute("1d6+@a+@x.y_z+@nope", vars))
	assert.Equal(t, "1d6", dice.Substitute("1d6", nil))
}

func TestValidate(t *testing.T) {
	evaluator := dice.NewEvaluator(dice.NewSeededRoller(1))
	assert.NoError(t, evaluator.Validate("1d8+@mod.meleeDamage"))
	assert.Error(t, evaluator.Validate("1d8+"))

	err := evaluator.Validate("1 + 99999999999999999999")
	require.Error(t, err)
	assert.True(t, dnderr.IsEvaluation(err))
	assert.Contains(t, err.Error(), "out of range")
}
