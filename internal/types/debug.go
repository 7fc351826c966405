package types

// DebugEndpointArgs defines the arguments for the debug_endpoint tool.
type DebugEndpointArgs struct {
	Endpoint string         `json:"endpoint" jsonschema:"API endpoint to probe (relative to the configured base URL)"`
	Method   *string        `json:"method,omitempty" jsonschema:"HTTP method to use (default: GET)"`
	Data     map[string]any `json:"data,omitempty" jsonschema:"Optional JSON body to send"`
}
