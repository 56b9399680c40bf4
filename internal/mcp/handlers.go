package mcp

import (
	"fmt"
	"math"
	"strconv"

	"stat-mcp/internal/stats"
)

func (s *Server) handleListSamples() interface{} {
	names := s.store.Names()
	list := make([]map[string]interface{}, 0, len(names))
	for _, name := range names {
		list = append(list, map[string]interface{}{
			"name":  name,
			"count": s.store.Count(name),
		})
	}
	return map[string]interface{}{"samples": list}
}

func (s *Server) handlePutSample(args map[string]interface{}) (interface{}, error) {
	name, _ := args["name"].(string)
	if name == "" {
		return nil, fmt.Errorf("missing sample name")
	}
	values, err := toFloats(args["values"])
	if err != nil {
		return nil, err
	}

	s.store.Put(name, values)
	return map[string]interface{}{
		"name":  name,
		"count": len(values),
	}, nil
}

func (s *Server) handleLoadSample(args map[string]interface{}) (interface{}, error) {
	name, _ := args["name"].(string)
	if name == "" {
		return nil, fmt.Errorf("missing sample name")
	}

	if err := s.store.Load(s.cfg.SamplesDir, name); err != nil {
		return nil, fmt.Errorf("failed to load sample %q: %w", name, err)
	}
	return map[string]interface{}{
		"name":  name,
		"count": s.store.Count(name),
	}, nil
}

func (s *Server) handleComputeStatistic(args map[string]interface{}) (interface{}, error) {
	name, _ := args["statistic"].(string)
	fn, ok := s.statistics[name]
	if !ok {
		return nil, fmt.Errorf("unknown statistic %q", name)
	}

	sample, label, err := s.resolveSample(args)
	if err != nil {
		return nil, err
	}

	value, present := fn(sample)
	return map[string]interface{}{
		"statistic": name,
		"sample":    label,
		"count":     len(sample),
		"defined":   present,
		"value":     renderValue(value, present),
	}, nil
}

func (s *Server) handleDescribeSample(args map[string]interface{}) (interface{}, error) {
	sample, label, err := s.resolveSample(args)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"sample":  label,
		"summary": stats.Describe(sample),
	}, nil
}

// resolveSample extracts the target sample from tool arguments: inline
// values take precedence, otherwise the named stored sample is used.
func (s *Server) resolveSample(args map[string]interface{}) ([]float64, string, error) {
	if raw, ok := args["values"]; ok {
		values, err := toFloats(raw)
		if err != nil {
			return nil, "", err
		}
		return values, "(inline)", nil
	}

	name, _ := args["sample"].(string)
	if name == "" {
		return nil, "", fmt.Errorf("provide either 'sample' or 'values'")
	}
	values, ok := s.store.Get(name)
	if !ok {
		return nil, "", fmt.Errorf("no sample named %q", name)
	}
	return values, name, nil
}

func toFloats(raw interface{}) ([]float64, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("'values' must be an array of numbers")
	}
	values := make([]float64, 0, len(items))
	for i, item := range items {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("value at index %d is not a number", i)
		}
		values = append(values, f)
	}
	return values, nil
}

// renderValue keeps tool output valid JSON: absent becomes null and
// non-finite floats become strings.
func renderValue(v float64, present bool) interface{} {
	if !present {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}
