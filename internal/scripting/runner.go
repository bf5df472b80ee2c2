package scripting

import (
	"context"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/resolver"
)

// Runner runs inline scripts and stored macros for resolved effects
type Runner struct {
	engine *Engine
	macros MacroSource
}

// NewRunner creates a runner. Macros may be nil when only inline scripts
// are used.
func NewRunner(engine *Engine, macros MacroSource) *Runner {
	if engine == nil {
		panic("script engine is required")
	}
	return &Runner{engine: engine, macros: macros}
}

// RunScript runs an inline script
func (r *Runner) RunScript(ctx context.Context, source string, inv *resolver.Invocation) (string, error) {
	return r.engine.Run(ctx, source, inv)
}

// RunMacro loads a macro by reference and runs its command
func (r *Runner) RunMacro(ctx context.Context, ref string, inv *resolver.Invocation) (string, error) {
	if r.macros == nil {
		return "", dnderr.Delegationf("no macro source configured for %s", ref)
	}
	macro, err := r.macros.Macro(ctx, ref)
	if err != nil {
		return "", dnderr.WrapWithCode(err, dnderr.CodeDelegation, "failed to load macro "+ref)
	}
	if macro == nil {
		return "", dnderr.Delegationf("macro %s not found", ref)
	}
	if err := macro.Validate(); err != nil {
		return "", dnderr.WrapWithCode(err, dnderr.CodeDelegation, "macro "+ref+" is invalid")
	}
	return r.engine.Run(ctx, macro.Command, inv)
}
