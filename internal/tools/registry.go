package tools

import (
	"sort"
	"time"
)

// Registry holds the registered tools.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool to the registry.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// All returns all registered tools sorted by name.
func (r *Registry) All() []Tool {
	result := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// DefaultRegistry creates the registry with the three built-in
// network diagnostic tools, enumerated once at startup.
func DefaultRegistry(dnsTimeout, tcpTimeout, httpTimeout time.Duration) *Registry {
	r := NewRegistry()
	r.Register(NewDNSLookupTool(dnsTimeout))
	r.Register(NewTCPCheckTool(tcpTimeout))
	r.Register(NewHTTPProbeTool(httpTimeout))
	return r
}
