package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/scenekit/gd-format/ir"
)

// EncodeJSON writes the JSON projection of f to w.
func EncodeJSON(f *ir.File, w io.Writer, opts ...EncodeOption) error {
	o := mkOpts(opts)
	enc := json.NewEncoder(w)
	enc.SetIndent("", o.indent)
	if err := enc.Encode(ToAny(f)); err != nil {
		return fmt.Errorf("error encoding json: %w", err)
	}
	return nil
}

// MarshalJSON returns the compact JSON projection of f.
func MarshalJSON(f *ir.File) ([]byte, error) {
	return json.Marshal(ToAny(f))
}
