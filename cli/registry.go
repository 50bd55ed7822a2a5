package cli

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Values is what a handler receives: option values overlaid by answers.
type Values map[string]any

func (it Values) String(name string) string {
	value, ok := it[name]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func (it Values) Bool(name string) bool {
	value, _ := it[name].(bool)
	return value
}

// Handler carries out a command once its questions have been answered.
type Handler func(ctx context.Context, values Values) error

// HandlerResolutionError is returned when no handler is registered under a
// command name.
type HandlerResolutionError struct {
	Name string
}

func (it *HandlerResolutionError) Error() string {
	return fmt.Sprintf("no handler registered for command %q", it.Name)
}

// Registry maps command names to handlers. It is filled at startup and
// read while commands run.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds or replaces the handler for name.
func (it *Registry) Register(name string, handler Handler) *Registry {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.handlers[name] = handler
	return it
}

func (it *Registry) Resolve(name string) (Handler, error) {
	it.mu.RLock()
	defer it.mu.RUnlock()
	handler, ok := it.handlers[name]
	if !ok || handler == nil {
		return nil, &HandlerResolutionError{Name: name}
	}
	return handler, nil
}

func (it *Registry) Names() []string {
	it.mu.RLock()
	defer it.mu.RUnlock()
	result := make([]string, 0, len(it.handlers))
	for name := range it.handlers {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
