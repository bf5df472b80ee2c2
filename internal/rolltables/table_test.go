package rolltables

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	mockdice "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice/mock"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/resolver"
)

type tableMap map[string]*Table

func (m tableMap) Table(_ context.Context, ref string) (*Table, error) {
	if ref == "RollTable.broken" {
		return nil, errors.New("store offline")
	}
	return m[ref], nil
}

func wandering() *Table {
	return &Table{
		ID:   "wandering",
		Name: "Wandering Monsters",
		Entries: []*Entry{
			{Low: 1, High: 2, Text: "Goblins"},
			{Low: 3, High: 5, Text: "Giant rats"},
			{Low: 6, High: 6, Text: "Ogre"},
		},
	}
}

func TestRollFormula(t *testing.T) {
	assert.Equal(t, "1d6", wandering().RollFormula())

	table := wandering()
	table.Formula = "2d4"
	assert.Equal(t, "2d4", table.RollFormula())
}

func TestValidate(t *testing.T) {
	eval := dice.NewEvaluator(mockdice.NewManualMockRoller())

	tests := []struct {
		name    string
		mutate  func(*Table)
		wantErr string
	}{
		{name: "valid", mutate: func(*Table) {}},
		{name: "missing id", mutate: func(t *Table) { t.ID = "" }, wantErr: "id is required"},
		{name: "no entries", mutate: func(t *Table) { t.Entries = nil }, wantErr: "no entries"},
		{name: "inverted band", mutate: func(t *Table) { t.Entries[0].Low = 3 }, wantErr: "empty band"},
		{name: "overlap", mutate: func(t *Table) { t.Entries[1].Low = 2 }, wantErr: "overlap"},
		{name: "bad formula", mutate: func(t *Table) { t.Formula = "1d" }, wantErr: "bad formula"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := wandering()
			tt.mutate(table)
			err := table.Validate(eval)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDraw(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	eval := dice.NewEvaluator(roller)

	for roll, want := range map[int]string{1: "Goblins", 4: "Giant rats", 6: "Ogre"} {
		roller.SetRolls([]int{roll})
		drawn, err := wandering().Draw(eval, nil)
		require.NoError(t, err)
		assert.Equal(t, want, drawn.Text())
		assert.Equal(t, roll, drawn.Roll.Total)
	}
}

func TestDrawOutsideBands(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	table := wandering()
	table.Formula = "1d8"
	roller.SetRolls([]int{8})

	drawn, err := table.Draw(dice.NewEvaluator(roller), nil)
	require.NoError(t, err)
	assert.Nil(t, drawn.Entry)
	assert.Equal(t, "no entry on wandering for 8", drawn.Text())
}

func TestDrawerDrawTable(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	eval := dice.NewEvaluator(roller)
	drawer := NewDrawer(eval, tableMap{"RollTable.wandering": wandering()})

	roller.SetRolls([]int{6})
	text, err := drawer.DrawTable(context.Background(), "RollTable.wandering", &resolver.Invocation{})
	require.NoError(t, err)
	assert.Equal(t, "Ogre", text)
}

func TestDrawerVariables(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	eval := dice.NewEvaluator(roller)
	table := wandering()
	table.Formula = "1d4 + @level"
	drawer := NewDrawer(eval, tableMap{"RollTable.scaled": table})

	roller.SetRolls([]int{3})
	text, err := drawer.DrawTable(context.Background(), "RollTable.scaled", &resolver.Invocation{
		Variables: dice.Variables{"level": 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "Giant rats", text)
}

func TestDrawerFailures(t *testing.T) {
	eval := dice.NewEvaluator(mockdice.NewManualMockRoller())
	broken := wandering()
	broken.Entries[1].Low = 1
	drawer := NewDrawer(eval, tableMap{"RollTable.overlap": broken})

	for _, ref := range []string{"RollTable.missing", "RollTable.broken", "RollTable.overlap"} {
		t.Run(ref, func(t *testing.T) {
			_, err := drawer.DrawTable(context.Background(), ref, nil)
			require.Error(t, err)
			assert.True(t, dnderr.IsDelegation(err))
		})
	}
}

var _ resolver.TableDrawer = (*Drawer)(nil)
