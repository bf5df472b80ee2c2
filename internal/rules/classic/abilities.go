package classic

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

// ClassicAbilityScores uses the 3-18 banded modifier table
type ClassicAbilityScores struct {
	rules.Info
}

// NewClassicAbilityScores creates the default ability score table
func NewClassicAbilityScores() *ClassicAbilityScores {
	return &ClassicAbilityScores{Info: rules.Info{Key: "classic", Label: "Classic (3-18 banded)", Default: true}}
}

// Modifier maps a score to its banded modifier
func (*ClassicAbilityScores) Modifier(score int) int {
	switch {
	case score <= 3:
		return -3
	case score <= 5:
		return -2
	case score <= 8:
		return -1
	case score <= 12:
		return 0
	case score <= 15:
		return 1
	case score <= 17:
		return 2
	}
	return 3
}

// ModernAbilityScores uses floor((score-10)/2)
type ModernAbilityScores struct {
	rules.Info
}

// NewModernAbilityScores creates the linear ability score table
func NewModernAbilityScores() *ModernAbilityScores {
	return &ModernAbilityScores{Info: rules.Info{Key: "modern", Label: "Modern (linear)"}}
}

// Modifier floors toward negative infinity so 9 gives -1
func (*ModernAbilityScores) Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}
