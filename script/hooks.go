package script

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/cartcourse/mech"
)

// Hook scripts define on_event(engine, state, event, id, progress). The
// dispatch snippet is appended to the user source so a recompiled script
// always runs through the same entry point.
const hookDispatchScript = `
if __event != "" {
	on_event(__engine, __state, __event, __id, __progress)
}
`

// Hooks runs a tengo script for mechanism events so downstream gameplay
// (scoring, narrative triggers) can react without touching mechanism state.
// The script keeps its own state map across calls and receives a small
// engine of host functions.
type Hooks struct {
	compiled *tengo.Compiled
	state    *tengo.Map
	engine   *tengo.ImmutableMap
}

// NewHooks compiles a hook script. onEmit receives every name the script
// emits back to the host; it may be nil.
func NewHooks(src []byte, onEmit func(name string)) (*Hooks, error) {
	combined := string(src) + "\n" + hookDispatchScript
	s := tengo.NewScript([]byte(combined))
	_ = s.Add("__event", "")
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__id", 0)
	_ = s.Add("__progress", 0.0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile hooks: %w", err)
	}

	return &Hooks{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		engine:   buildHookEngine(onEmit),
	}, nil
}

// MechanismEvent implements mech.EventSink. Script errors are logged, never
// surfaced into the simulation.
func (h *Hooks) MechanismEvent(event string, m *mech.Mechanism) {
	if h == nil || h.compiled == nil || m == nil {
		return
	}
	if err := h.run(event, m.ID, m.Progress); err != nil {
		log.Printf("script: hook %s for mechanism %d: %v", event, m.ID, err)
	}
}

func (h *Hooks) run(event string, id int, progress float64) error {
	if err := h.compiled.Set("__event", event); err != nil {
		return err
	}
	if err := h.compiled.Set("__engine", h.engine); err != nil {
		return err
	}
	if err := h.compiled.Set("__state", h.state); err != nil {
		return err
	}
	if err := h.compiled.Set("__id", id); err != nil {
		return err
	}
	if err := h.compiled.Set("__progress", progress); err != nil {
		return err
	}
	return h.compiled.Run()
}

func buildHookEngine(onEmit func(string)) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["emit"] = &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if onEmit == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name, _ := tengo.ToString(args[0])
		if name == "" {
			return tengo.FalseValue, nil
		}
		onEmit(name)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
