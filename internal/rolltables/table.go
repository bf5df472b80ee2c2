// Package rolltables draws results from ranged random tables
package rolltables

import (
	"context"
	"fmt"
	"sort"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// Entry is one result band of a table, inclusive at both ends
type Entry struct {
	Low  int    `json:"low"`
	High int    `json:"high"`
	Text string `json:"text"`
}

// Covers reports whether total falls in the entry's band
func (e *Entry) Covers(total int) bool {
	return total >= e.Low && total <= e.High
}

// Table is a stored roll table document. An empty formula rolls one die
// sized to the highest band.
type Table struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Formula string   `json:"formula,omitempty"`
	Entries []*Entry `json:"entries"`
}

// Drawn is the result of one draw
type Drawn struct {
	TableID string        `json:"tableId"`
	Entry   *Entry        `json:"entry,omitempty"`
	Roll    *dice.Outcome `json:"roll"`
}

// Text returns the drawn entry's text, or a note when the roll fell
// outside every band
func (d *Drawn) Text() string {
	if d.Entry != nil {
		return d.Entry.Text
	}
	return fmt.Sprintf("no entry on %s for %d", d.TableID, d.Roll.Total)
}

// TableSource loads tables by reference. A missing table is nil with no
// error.
type TableSource interface {
	Table(ctx context.Context, ref string) (*Table, error)
}

// RollFormula returns the formula the table is rolled with
func (t *Table) RollFormula() string {
	if t.Formula != "" {
		return t.Formula
	}
	high := 0
	for _, e := range t.Entries {
		high = max(high, e.High)
	}
	return fmt.Sprintf("1d%d", high)
}

// Validate checks ids, bands and the formula. Bands must not overlap.
func (t *Table) Validate(eval *dice.Evaluator) error {
	if t == nil {
		return dnderr.InvalidArgument("roll table is required")
	}
	if t.ID == "" {
		return dnderr.InvalidArgument("roll table id is required")
	}
	if len(t.Entries) == 0 {
		return dnderr.InvalidArgumentf("roll table %s has no entries", t.ID)
	}

	sorted := make([]*Entry, len(t.Entries))
	copy(sorted, t.Entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Low < sorted[j].Low })
	for i, e := range sorted {
		if e.Low > e.High {
			return dnderr.InvalidArgumentf("roll table %s has an empty band %d-%d", t.ID, e.Low, e.High)
		}
		if i > 0 && e.Low <= sorted[i-1].High {
			return dnderr.InvalidArgumentf("roll table %s bands %d-%d and %d-%d overlap",
				t.ID, sorted[i-1].Low, sorted[i-1].High, e.Low, e.High)
		}
	}

	if eval != nil {
		if err := eval.Validate(t.RollFormula()); err != nil {
			return dnderr.Wrapf(err, "roll table %s has a bad formula", t.ID)
		}
	}
	return nil
}

// Draw rolls the table's formula and returns the covering entry
func (t *Table) Draw(eval *dice.Evaluator, vars dice.Variables) (*Drawn, error) {
	outcome, err := eval.Evaluate(t.RollFormula(), vars, nil)
	if err != nil {
		return nil, err
	}

	drawn := &Drawn{TableID: t.ID, Roll: outcome}
	for _, e := range t.Entries {
		if e.Covers(outcome.Total) {
			drawn.Entry = e
			break
		}
	}
	return drawn, nil
}
