package command

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps command names to their definitions. Registration happens at
// startup from package init functions; lookups are concurrent afterwards.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds a command. Names are case-insensitive and must be unique; a
// duplicate is a programming error and is reported immediately.
func (r *Registry) Register(cmd *Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("command with empty name")
	}
	if cmd.Run == nil {
		return fmt.Errorf("command %q has no handler", cmd.Name)
	}
	name := strings.ToLower(cmd.Name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %q registered twice", name)
	}
	r.commands[name] = cmd
	return nil
}

// MustRegister panics on registration failure. Used from init functions so a
// duplicate name fails at startup instead of silently shadowing.
func (r *Registry) MustRegister(cmd *Command) {
	if err := r.Register(cmd); err != nil {
		panic(err)
	}
}

// Lookup finds a command by name, case-insensitive.
func (r *Registry) Lookup(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// All returns every command sorted by name.
func (r *Registry) All() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByCategory groups all commands by their category, each group sorted by
// name.
func (r *Registry) ByCategory() map[string][]*Command {
	out := make(map[string][]*Command)
	for _, cmd := range r.All() {
		out[cmd.Category] = append(out[cmd.Category], cmd)
	}
	return out
}

// Default is the registry handler packages register into.
var Default = NewRegistry()

// MustRegister adds a command to the default registry.
func MustRegister(cmd *Command) {
	Default.MustRegister(cmd)
}
