package classic

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

// DefaultTHAC0 is the to-hit number of a level 1 character
const DefaultTHAC0 = 19

// AscendingAC hits when the attack total meets the target's ascending AC
type AscendingAC struct {
	rules.Info
}

// NewAscendingAC creates the default combat module
func NewAscendingAC() *AscendingAC {
	return &AscendingAC{Info: rules.Info{Key: "ascending-ac", Label: "Ascending Armor Class", Default: true}}
}

// DefenseOf returns the ascending armour class
func (*AscendingAC) DefenseOf(target rules.Defender) int {
	_, aac := target.Defense()
	return aac
}

// TargetNumber is the defense itself
func (*AscendingAC) TargetNumber(_ rules.Attacker, defense int) int {
	return defense
}

// DescendingAC hits when the attack total meets THAC0 minus the target's
// descending AC
type DescendingAC struct {
	rules.Info
	THAC0 int `json:"thac0"`
}

// NewDescendingAC creates the THAC0 combat module
func NewDescendingAC(thac0 int) *DescendingAC {
	if thac0 <= 0 {
		thac0 = DefaultTHAC0
	}
	return &DescendingAC{
		Info:  rules.Info{Key: "descending-ac", Label: "Descending Armor Class (THAC0)"},
		THAC0: thac0,
	}
}

// DefenseOf returns the descending armour class
func (*DescendingAC) DefenseOf(target rules.Defender) int {
	ac, _ := target.Defense()
	return ac
}

// TargetNumber subtracts the defense from the attacker's THAC0, or the
// module's when the attacker has none
func (d *DescendingAC) TargetNumber(attacker rules.Attacker, defense int) int {
	thac0 := d.THAC0
	if attacker != nil && attacker.THAC0() > 0 {
		thac0 = attacker.THAC0()
	}
	return thac0 - defense
}
