package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/scenekit/gd-format/ir"
)

// EncodeYAML writes the YAML projection of f to w.
func EncodeYAML(f *ir.File, w io.Writer, opts ...EncodeOption) error {
	d, err := yaml.Marshal(ToAny(f))
	if err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	if _, err := w.Write(d); err != nil {
		return fmt.Errorf("error writing yaml: %w", err)
	}
	return nil
}
