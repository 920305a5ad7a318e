package dataset

import "encoding/json"

// DecodePayload decodes a backend payload into its natural Go shape: a *Frame
// when the body carries the tabular {"columns":..., "rows":...} wire form,
// otherwise whatever generic value the JSON holds (nested maps, lists,
// scalars).
func DecodePayload(b []byte) (any, error) {
	var f Frame
	if err := json.Unmarshal(b, &f); err == nil && len(f.Columns) > 0 {
		return &f, nil
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}
