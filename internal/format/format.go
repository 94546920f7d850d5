package format

import (
	"encoding/json"
	"io"
)

// Write renders a CLI payload as JSON. Compact by default so output stays
// script-friendly; pretty is for humans.
func Write(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
