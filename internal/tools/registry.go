package tools

import (
	"context"
	"fmt"
)

// Arguments is the decoded JSON argument object of a tool call. The typed
// getters apply a default on absence or type mismatch, matching the
// defaulting discipline of the normalizers: a malformed argument reads as
// unspecified rather than failing the call.
type Arguments map[string]interface{}

// String returns the named string argument, or def.
func (a Arguments) String(key, def string) string {
	if v, ok := a[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Int returns the named integer argument, or def. JSON numbers decode as
// float64; both forms are accepted.
func (a Arguments) Int(key string, def int) int {
	switch v := a[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

// StringList returns the named string-array argument, or nil when absent.
// Non-string elements are skipped.
func (a Arguments) StringList(key string) []string {
	raw, ok := a[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Handler executes one operation. Handlers never return a Go error; every
// outcome, including upstream failure, is expressed as an envelope.
type Handler func(ctx context.Context, args Arguments) *Envelope

// Tool is one named operation with its declared input shape.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema,omitempty"`
	Handler     Handler                `json:"-"`
}

// Registry is an explicit collection of tools built once at startup and
// handed to the serving layer. It is not mutated after that, so dispatch
// needs no locking.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Duplicate names and nil handlers are registration
// bugs and fail loudly.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool has no name")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %s has no handler", t.Name)
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %s already registered", t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// MustRegister is Register for startup wiring, where a duplicate is fatal.
func (r *Registry) MustRegister(t Tool) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List returns the registered tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Dispatch invokes the named tool. An unknown name is an error envelope,
// not a panic: the caller chose the name, not the wiring.
func (r *Registry) Dispatch(ctx context.Context, name string, args Arguments) *Envelope {
	t, ok := r.tools[name]
	if !ok {
		return Failure(fmt.Errorf("unknown tool %q", name))
	}
	if args == nil {
		args = Arguments{}
	}
	return t.Handler(ctx, args)
}
