// Package scripting runs inline scripts and stored macros in an embedded
// Lua interpreter
package scripting

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/resolver"
)

// Engine runs Lua chunks with dice and invocation bindings. Every run gets
// a fresh interpreter.
//
// Globals available to scripts:
//
//	roll(formula [, operator, target]) -> total [, success]
//	var(path)                          -> bound variable, 0 when unknown
//	output(...)                        -> appends text to the result
//	print(...)                         -> same as output
//	invocation                         -> actionId, effectId, sourceId, targetId, magnitude
//
// A string returned by the chunk is appended to the output. Only the base,
// string, table and math libraries are loaded, without the chunk loaders.
type Engine struct {
	eval  *dice.Evaluator
	limit int
}

// DefaultInstructionLimit bounds how many VM instructions one run may execute
const DefaultInstructionLimit = 10_000_000

// hookInterval is how many instructions run between cancellation checks
const hookInterval = 1000

// sandboxLibraries are the only libraries scripts can reach
var sandboxLibraries = []lua.RegistryFunction{
	{Name: "_G", Function: lua.BaseOpen},
	{Name: "string", Function: lua.StringOpen},
	{Name: "table", Function: lua.TableOpen},
	{Name: "math", Function: lua.MathOpen},
}

// strippedGlobals would let a script load code from disk or compile new chunks
var strippedGlobals = []string{"dofile", "loadfile", "load"}

// NewEngine creates an engine rolling through eval
func NewEngine(eval *dice.Evaluator) *Engine {
	if eval == nil {
		panic("dice evaluator is required")
	}
	return &Engine{eval: eval, limit: DefaultInstructionLimit}
}

// SetInstructionLimit changes the per-run instruction budget
func (e *Engine) SetInstructionLimit(n int) {
	if n < hookInterval {
		n = hookInterval
	}
	e.limit = n
}

type run struct {
	ctx    context.Context
	eval   *dice.Evaluator
	inv    *resolver.Invocation
	output []string
	limit  int
	steps  int
}

// Run executes source. Compile and runtime failures are delegation errors.
func (e *Engine) Run(ctx context.Context, source string, inv *resolver.Invocation) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if inv == nil {
		inv = &resolver.Invocation{}
	}

	r := &run{ctx: ctx, eval: e.eval, inv: inv, limit: e.limit}
	state := lua.NewState()
	sandbox(state)
	r.register(state)
	lua.SetDebugHook(state, r.interrupt, lua.MaskCount, hookInterval)

	if err := lua.LoadString(state, source); err != nil {
		return "", dnderr.Delegationf("script does not compile: %v", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return "", dnderr.Delegationf("script failed: %v", err)
	}
	if s, ok := state.ToString(-1); ok && state.TypeOf(-1) == lua.TypeString {
		r.output = append(r.output, s)
	}
	state.Pop(1)

	return strings.Join(r.output, "\n"), nil
}

func sandbox(state *lua.State) {
	for _, lib := range sandboxLibraries {
		lua.Require(state, lib.Name, lib.Function, true)
		state.Pop(1)
	}
	for _, name := range strippedGlobals {
		state.PushNil()
		state.SetGlobal(name)
	}
}

// interrupt runs every hookInterval instructions and aborts the chunk once
// the context is done or the budget is spent
func (r *run) interrupt(state *lua.State, _ lua.Debug) {
	if err := r.ctx.Err(); err != nil {
		lua.Errorf(state, "script interrupted: %s", err.Error())
		return
	}
	r.steps += hookInterval
	if r.steps > r.limit {
		lua.Errorf(state, "script exceeded %d instructions", r.limit)
	}
}

func (r *run) register(state *lua.State) {
	state.Register("roll", r.roll)
	state.Register("var", r.variable)
	state.Register("output", r.write)
	state.Register("print", r.write)

	state.NewTable()
	state.PushString(r.inv.ActionID)
	state.SetField(-2, "actionId")
	state.PushString(r.inv.EffectID)
	state.SetField(-2, "effectId")
	state.PushString(r.inv.SourceID)
	state.SetField(-2, "sourceId")
	state.PushString(r.inv.TargetID)
	state.SetField(-2, "targetId")
	state.PushInteger(r.inv.Magnitude)
	state.SetField(-2, "magnitude")
	state.SetGlobal("invocation")
}

func (r *run) roll(state *lua.State) int {
	if err := r.ctx.Err(); err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}

	formula := lua.CheckString(state, 1)
	opts := &dice.Options{}
	checked := state.Top() >= 3
	if checked {
		op, err := dice.ParseOperator(lua.CheckString(state, 2))
		if err != nil {
			lua.Errorf(state, "%s", err.Error())
			return 0
		}
		target := lua.CheckInteger(state, 3)
		opts.Operator = op
		opts.Target = &target
	}

	outcome, err := r.eval.Evaluate(formula, r.inv.Variables, opts)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	state.PushInteger(outcome.Total)
	if !checked {
		return 1
	}
	state.PushBoolean(outcome.Succeeded())
	return 2
}

func (r *run) variable(state *lua.State) int {
	value, _ := r.inv.Variables.Lookup(lua.CheckString(state, 1))
	state.PushInteger(value)
	return 1
}

func (r *run) write(state *lua.State) int {
	parts := make([]string, 0, state.Top())
	for i := 1; i <= state.Top(); i++ {
		parts = append(parts, luaString(state, i))
	}
	r.output = append(r.output, strings.Join(parts, " "))
	return 0
}

func luaString(state *lua.State, index int) string {
	switch state.TypeOf(index) {
	case lua.TypeNil:
		return "nil"
	case lua.TypeBoolean:
		return fmt.Sprint(state.ToBoolean(index))
	}
	if s, ok := state.ToString(index); ok {
		return s
	}
	return lua.TypeNameOf(state, index)
}
