package rolltables

import (
	"context"
	"log"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/resolver"
)

// Drawer draws from stored tables for roll-table effects
type Drawer struct {
	eval   *dice.Evaluator
	tables TableSource
}

// NewDrawer creates a drawer
func NewDrawer(eval *dice.Evaluator, tables TableSource) *Drawer {
	if eval == nil {
		panic("dice evaluator is required")
	}
	if tables == nil {
		panic("table source is required")
	}
	return &Drawer{eval: eval, tables: tables}
}

// Draw loads the table and draws once
func (d *Drawer) Draw(ctx context.Context, ref string, vars dice.Variables) (*Drawn, error) {
	table, err := d.tables.Table(ctx, ref)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeDelegation, "failed to load roll table "+ref)
	}
	if table == nil {
		return nil, dnderr.Delegationf("roll table %s not found", ref)
	}
	if err := table.Validate(d.eval); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeDelegation, "roll table "+ref+" is invalid")
	}

	drawn, err := table.Draw(d.eval, vars)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeDelegation, "failed to draw from "+ref)
	}
	if drawn.Entry == nil {
		log.Printf("RollTables: %s rolled %d, outside every entry", ref, drawn.Roll.Total)
	}
	return drawn, nil
}

// DrawTable draws for an effect and returns the entry text
func (d *Drawer) DrawTable(ctx context.Context, ref string, inv *resolver.Invocation) (string, error) {
	var vars dice.Variables
	if inv != nil {
		vars = inv.Variables
	}
	drawn, err := d.Draw(ctx, ref, vars)
	if err != nil {
		return "", err
	}
	return drawn.Text(), nil
}
