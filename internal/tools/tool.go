// Package tools defines the fixed set of diagnostic tools the
// assistant can invoke mid-conversation, and the registry that
// describes them to the completion API as function schemas.
package tools

import (
	"context"
	"encoding/json"
)

// Tool is a single invocable diagnostic capability.
type Tool interface {
	// Name is the function name exposed to the model.
	Name() string
	// Description tells the model when to use the tool.
	Description() string
	// Parameters returns the JSON-schema property map for the tool's
	// arguments.
	Parameters() map[string]any
	// Execute runs the tool with raw JSON arguments and returns a
	// string result for the model.
	Execute(ctx context.Context, params json.RawMessage) (string, error)
}
