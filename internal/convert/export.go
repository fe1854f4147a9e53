package convert

import (
	"errors"
	"fmt"
)

// ErrEmptyExportName indicates export synthesis was asked to format an
// absent name. Unreachable once a FooterMatch has been confirmed, but
// kept as a distinct failure for completeness.
var ErrEmptyExportName = errors.New("export name is empty")

// SynthesizeExport formats the default-export statement for name.
func SynthesizeExport(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyExportName
	}
	return fmt.Sprintf("export default %s;\n", name), nil
}
