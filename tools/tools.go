// Package tools defines the capabilities the model may request and the
// registry the agent dispatches them through.
package tools

import (
	"context"
	"time"

	"wayfarer/logx"
)

// ParamType is the declared type of a tool argument. Arguments are
// always flat maps of primitives.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeInteger ParamType = "integer"
)

// Param describes one declared argument.
type Param struct {
	Type        ParamType
	Description string
	Required    bool
}

// Schema is a tool's flat argument schema, keyed by argument name.
type Schema map[string]Param

// Tool defines the interface for any capability the agent can expose
// to the model. Implementations are stateless; failures are returned
// as errors and converted to text at the dispatch boundary.
type Tool interface {
	Name() string
	Description() string
	Schema() Schema
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
}

// EssentialToolNames is the reduced capability set used in fast mode.
var EssentialToolNames = []string{
	"get_airport_code",
	"search_flights",
	"search_hotels",
	"calculate_total_cost",
	"recommend_best_package",
}

// Registry holds the available tools, keyed by name, preserving
// registration order for the model-facing listing. Immutable after
// construction and safe for concurrent reads.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry builds a registry from the given tools.
func NewRegistry(ts ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range ts {
		r.register(t)
	}
	return r
}

func (r *Registry) register(t Tool) {
	if _, exists := r.tools[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.tools[t.Name()] = t
}

// Get looks a tool up by exact name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List returns the tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}

// Subset returns a new registry limited to the named tools, in the
// order given. Unknown names are skipped.
func (r *Registry) Subset(names ...string) *Registry {
	sub := &Registry{tools: make(map[string]Tool)}
	for _, name := range names {
		if t, ok := r.tools[name]; ok {
			sub.register(t)
		}
	}
	return sub
}

// Essential returns the fast-mode registry: the five essential tools.
func (r *Registry) Essential() *Registry {
	return r.Subset(EssentialToolNames...)
}

// Dispatch executes the named tool with the supplied arguments. The
// second return value reports whether the tool was found; an unknown
// name is logged and skipped, not raised. An execution error is logged
// with its latency and converted to a textual result so the model can
// see the failure and adapt.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]interface{}) (string, bool) {
	t, ok := r.tools[name]
	if !ok {
		logx.Warn().
			Str("tool", name).
			Strs("available", r.order).
			Msg("unknown tool requested")
		return "", false
	}

	start := time.Now()
	result, err := t.Execute(ctx, args)
	elapsed := time.Since(start)
	if err != nil {
		logx.Warn().
			Str("tool", name).
			Dur("elapsed", elapsed).
			Err(err).
			Msg("tool execution failed")
		return "error: " + name + ": " + err.Error(), true
	}

	logx.Info().
		Str("tool", name).
		Dur("elapsed", elapsed).
		Int("result_length", len(result)).
		Msg("tool executed")
	return result, true
}
