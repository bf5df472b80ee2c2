package scripting

import (
	"context"
	"strings"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// Macro is a stored script document
type Macro struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Command string `json:"command"`
}

// Validate checks the macro has an id and a body
func (m *Macro) Validate() error {
	if m == nil {
		return dnderr.InvalidArgument("macro is required")
	}
	if m.ID == "" {
		return dnderr.InvalidArgument("macro id is required")
	}
	if strings.TrimSpace(m.Command) == "" {
		return dnderr.InvalidArgumentf("macro %s has no command", m.ID)
	}
	return nil
}

// MacroSource loads macros by reference. A missing macro is nil with no
// error.
type MacroSource interface {
	Macro(ctx context.Context, ref string) (*Macro, error)
}
