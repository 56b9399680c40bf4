package mcp

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// sampleRefProperties is shared by every tool that reads a sample:
// either the name of a stored sample or an inline array of observations.
func sampleRefProperties() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"sample": {
			Type:        "string",
			Description: "Name of a stored sample (see list_samples). Ignored when 'values' is given.",
		},
		"values": {
			Type:        "array",
			Items:       &jsonschema.Schema{Type: "number"},
			Description: "Inline observations. An empty array is a valid (empty) sample.",
		},
	}
}

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "list_samples",
				"description": "List the names and sizes of all samples currently held in memory.",
				"inputSchema": &jsonschema.Schema{Type: "object"},
			},
			map[string]interface{}{
				"name":        "put_sample",
				"description": "Store an array of observations under a name for later analysis. Replaces any sample already stored under that name.",
				"inputSchema": &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"name": {Type: "string", Description: "Name to store the sample under"},
						"values": {
							Type:        "array",
							Items:       &jsonschema.Schema{Type: "number"},
							Description: "The observations",
						},
					},
					Required: []string{"name", "values"},
				},
			},
			map[string]interface{}{
				"name":        "load_sample",
				"description": "Load <name>.sample from the configured samples folder into memory. Files hold one observation per line; blank lines and '#' comments are skipped.",
				"inputSchema": &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"name": {Type: "string", Description: "File name without the .sample extension"},
					},
					Required: []string{"name"},
				},
			},
			map[string]interface{}{
				"name": "compute_statistic",
				"description": "Compute one statistic over a sample. 'mean' and 'l2' are defined for every sample (0.0 when empty); 'stddev' and 'median' are undefined for an empty sample and report value null. " +
					"Note: stddev of a single observation is the Bessel-corrected estimator and comes back as the string \"NaN\".",
				"inputSchema": &jsonschema.Schema{
					Type: "object",
					Properties: withSampleRef(map[string]*jsonschema.Schema{
						"statistic": {
							Type:        "string",
							Enum:        []any{"mean", "stddev", "median", "l2"},
							Description: "Which statistic to compute",
						},
					}),
					Required: []string{"statistic"},
				},
			},
			map[string]interface{}{
				"name":        "describe_sample",
				"description": "Compute all four statistics (mean, sample stddev, lower-middle median, L2 norm) over a sample in one call. Undefined statistics are null.",
				"inputSchema": &jsonschema.Schema{
					Type:       "object",
					Properties: withSampleRef(nil),
				},
			},
		},
	}
}

func withSampleRef(props map[string]*jsonschema.Schema) map[string]*jsonschema.Schema {
	merged := sampleRefProperties()
	for k, v := range props {
		merged[k] = v
	}
	return merged
}
