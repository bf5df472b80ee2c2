package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	t.Run("creates basic template", func(t *testing.T) {
		tmpl := NewBuilder("Test Condition").
			WithIcon("icons/test.webp").
			WithDescription("A test condition").
			ForRounds(5).
			AddChange("ac", "-2", ModeAdd).
			Build()

		assert.Equal(t, "Test Condition", tmpl.Name)
		assert.Equal(t, "icons/test.webp", tmpl.Icon)
		assert.Equal(t, "A test condition", tmpl.Description)
		assert.Equal(t, 5, tmpl.Duration.Rounds)
		assert.Len(t, tmpl.Changes, 1)
		assert.Equal(t, 20, tmpl.Changes[0].EffectivePriority())
		assert.NoError(t, tmpl.Validate())
	})

	t.Run("explicit priority", func(t *testing.T) {
		tmpl := NewBuilder("Ordered").AddChangeWithPriority("ac", "4", ModeOverride, 5).Build()
		assert.Equal(t, 5, tmpl.Changes[0].EffectivePriority())
	})
}

func TestDuration_TotalRounds(t *testing.T) {
	tests := []struct {
		name     string
		duration Duration
		expected int
	}{
		{"rounds", Duration{Rounds: 3}, 3},
		{"seconds round up", Duration{Seconds: 25}, 3},
		{"turns", Duration{Turns: 1}, 60},
		{"mixed", Duration{Rounds: 1, Seconds: 10, Turns: 1}, 62},
		{"indefinite", Duration{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.duration.TotalRounds())
		})
	}
}

func TestTemplate_Validate(t *testing.T) {
	assert.Error(t, (*Template)(nil).Validate())
	assert.Error(t, (&Template{}).Validate())
	assert.Error(t, (&Template{Name: "x", Duration: Duration{Rounds: -1}}).Validate())
	assert.Error(t, (&Template{Name: "x", Changes: []Change{{Value: "1"}}}).Validate())
	assert.Error(t, (&Template{Name: "x", Changes: []Change{{Key: "ac", Mode: 9}}}).Validate())
	assert.NoError(t, BuildHeldCondition(3).Validate())
}
