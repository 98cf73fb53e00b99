package report

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders the document as JSON. Compact output is a single line
// with HTML escaping off; pretty output is two-space indented. Map keys come
// out sorted either way, matching the YAML rendering.
func MarshalJSON(doc map[string]any, pretty bool) ([]byte, error) {
	if pretty {
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, b, "", "  "); err != nil {
			return nil, err
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
