package client

import "fmt"

// Record is a plain mapping returned by the service: a listing, a summary or
// contact info. Values are map[string]any, []any, string or nil.
type Record = map[string]any

// lookup follows path through nested maps.
func lookup(v any, path ...string) (any, bool) {
	for _, key := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return v, true
}

// recordList reads a repeated element at path. The service collapses a
// single-item list into the bare item, so a map becomes a one-element slice.
// A missing or empty element yields an empty, non-nil slice.
func recordList(operation string, result any, path ...string) ([]Record, error) {
	v, ok := lookup(result, path...)
	if !ok || v == nil {
		return []Record{}, nil
	}

	switch t := v.(type) {
	case map[string]any:
		return []Record{t}, nil
	case []any:
		out := make([]Record, 0, len(t))
		for i, item := range t {
			rec, ok := item.(map[string]any)
			if !ok {
				return nil, &RemoteCallError{
					Operation: operation,
					Reason:    fmt.Sprintf("unexpected item %d of type %T", i, item),
				}
			}
			out = append(out, rec)
		}
		return out, nil
	case string:
		if t == "" {
			return []Record{}, nil
		}
	}
	return nil, &RemoteCallError{
		Operation: operation,
		Reason:    fmt.Sprintf("unexpected result of type %T", v),
	}
}

// record reads a single element at path; missing or empty yields an empty Record.
func record(operation string, result any, path ...string) (Record, error) {
	v, ok := lookup(result, path...)
	if !ok || v == nil {
		return Record{}, nil
	}

	switch t := v.(type) {
	case map[string]any:
		return t, nil
	case string:
		if t == "" {
			return Record{}, nil
		}
	}
	return nil, &RemoteCallError{
		Operation: operation,
		Reason:    fmt.Sprintf("unexpected result of type %T", v),
	}
}
