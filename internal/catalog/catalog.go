// Package catalog holds the flash stub resources compiled into the program image.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/izu-co/espflash/chip"
)

//go:embed stubs/*.json
var embedded embed.FS

var stubs fs.FS = embedded

// files maps every chip to its resource below stubs/.
var files = [...]string{
	chip.Esp32:   "stubs/esp32.json",
	chip.Esp32c2: "stubs/esp32c2.json",
	chip.Esp32c3: "stubs/esp32c3.json",
	chip.Esp32c6: "stubs/esp32c6.json",
	chip.Esp32h2: "stubs/esp32h2.json",
	chip.Esp32p4: "stubs/esp32p4.json",
	chip.Esp32s2: "stubs/esp32s2.json",
	chip.Esp32s3: "stubs/esp32s3.json",
}

// Fails to compile unless every chip has a resource.
var _ = [1]struct{}{}[len(files)-chip.Count]

// Lookup returns the serialized stub resource of the given chip.
// The returned slice is owned by the caller.
//
// Values outside the supported chip set fail with *chip.UnknownChipError.
// A supported chip without a readable resource fails with *MissingResourceError.
func Lookup(c chip.Chip) ([]byte, error) {
	if !c.Valid() {
		return nil, &chip.UnknownChipError{Name: c.String()}
	}
	b, err := fs.ReadFile(stubs, files[c])
	if err != nil {
		return nil, &MissingResourceError{Name: files[c], Err: err}
	}
	return b, nil
}

// MissingResourceError reports a supported chip whose resource is not in the program image.
type MissingResourceError struct {
	Name string
	Err  error
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("resource %q: %s", e.Name, e.Err)
}

func (e *MissingResourceError) Unwrap() error {
	return e.Err
}

// Name returns the resource path of the given chip, or "" for unknown chips.
func Name(c chip.Chip) string {
	if !c.Valid() {
		return ""
	}
	return files[c]
}
