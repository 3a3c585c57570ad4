package codec

import gojson "github.com/goccy/go-json"

// GoJSON encodes with github.com/goccy/go-json. For records its output is
// byte-identical to JSON.
type GoJSON struct{}

// Append implements Codec.
func (GoJSON) Append(dst []byte, v any) ([]byte, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}

// Unmarshal implements Codec.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
