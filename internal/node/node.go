// Package node exposes the catalog operations as workflow nodes: named
// units with declared ports that take a map of inputs and always return a
// Result, never an error.
package node

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// PortType is the value type carried by a port.
type PortType string

const (
	TypeString  PortType = "STRING"
	TypeBoolean PortType = "BOOLEAN"
	TypeObject  PortType = "OBJECT"
)

// Port describes one named input or output of a node.
type Port struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Type        PortType `json:"type"`
	Required    bool     `json:"required,omitempty"`
}

// Node is a catalog operation runnable by a workflow engine.
type Node interface {
	Name() string
	Description() string
	Category() string
	Inputs() []Port
	Outputs() []Port
	// Run performs the operation. Errors are turned into a failed Result by Execute.
	Run(ctx context.Context, inputs map[string]any) (map[string]any, error)
}

// Result is the uniform node outcome. It always has a boolean "success"
// entry; failures carry "error_message", successes the node's outputs.
type Result map[string]any

const (
	keySuccess      = "success"
	keyErrorMessage = "error_message"
)

// OK reports whether the node succeeded.
func (r Result) OK() bool {
	ok, _ := r[keySuccess].(bool)
	return ok
}

// ErrorMessage returns the failure message, or "" on success.
func (r Result) ErrorMessage() string {
	msg, _ := r[keyErrorMessage].(string)
	return msg
}

func success(outputs map[string]any) Result {
	r := make(Result, len(outputs)+1)
	for k, v := range outputs {
		r[k] = v
	}
	r[keySuccess] = true
	return r
}

func failure(err error) Result {
	return Result{keySuccess: false, keyErrorMessage: err.Error()}
}

// Execute validates the required inputs and runs n, converting any error
// or panic into a failed Result.
func Execute(ctx context.Context, n Node, inputs map[string]any) (res Result) {
	logger := log.With().Str("node", n.Name()).Logger()

	defer func() {
		if p := recover(); p != nil {
			err := fmt.Errorf("node panicked: %v", p)
			logger.Error().Err(err).Msg("Node failed")
			res = failure(err)
		}
	}()

	for _, p := range n.Inputs() {
		if !p.Required {
			continue
		}
		if _, ok := inputs[p.Name]; !ok {
			err := fmt.Errorf("missing required input %q", p.Name)
			logger.Error().Err(err).Msg("Node failed")
			return failure(err)
		}
	}

	outputs, err := n.Run(ctx, inputs)
	if err != nil {
		logger.Error().Err(err).Msg("Node failed")
		return failure(err)
	}
	return success(outputs)
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Node)
)

// Register adds n to the node registry. Registering a name twice panics.
func Register(n Node) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := registry[n.Name()]; dup {
		panic("node: duplicate registration of " + n.Name())
	}
	registry[n.Name()] = n
}

// Lookup returns the registered node with the given name.
func Lookup(name string) (Node, bool) {
	mu.RLock()
	defer mu.RUnlock()

	n, ok := registry[name]
	return n, ok
}

// All returns every registered node ordered by name.
func All() []Node {
	mu.RLock()
	defer mu.RUnlock()

	nodes := make([]Node, 0, len(registry))
	for _, n := range registry {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(a, b Node) int { return strings.Compare(a.Name(), b.Name()) })
	return nodes
}

func stringInput(inputs map[string]any, name string) (string, error) {
	v, ok := inputs[name]
	if !ok {
		return "", fmt.Errorf("missing required input %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("input %q must be a string, got %T", name, v)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("input %q is empty", name)
	}
	return s, nil
}
