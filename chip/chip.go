// Package chip enumerates the target device variants a flash stub exists for.
package chip

import (
	"fmt"
	"strconv"
	"strings"
)

// Chip identifies a supported target variant.
type Chip uint8

// Supported chips. New variants must be appended before count.
const (
	Esp32 Chip = iota
	Esp32c2
	Esp32c3
	Esp32c6
	Esp32h2
	Esp32p4
	Esp32s2
	Esp32s3

	count
)

// Count is the number of supported chips.
const Count = int(count)

var names = [...]string{
	Esp32:   "esp32",
	Esp32c2: "esp32c2",
	Esp32c3: "esp32c3",
	Esp32c6: "esp32c6",
	Esp32h2: "esp32h2",
	Esp32p4: "esp32p4",
	Esp32s2: "esp32s2",
	Esp32s3: "esp32s3",
}

// Fails to compile unless every chip has a name.
var _ = [1]struct{}{}[len(names)-Count]

// All returns every supported chip in declaration order.
func All() []Chip {
	l := make([]Chip, Count)
	for i := range l {
		l[i] = Chip(i)
	}
	return l
}

// Valid reports whether c is one of the supported chips.
func (c Chip) Valid() bool {
	return c < count
}

func (c Chip) String() string {
	if !c.Valid() {
		return "chip(" + strconv.Itoa(int(c)) + ")"
	}
	return names[c]
}

// Parse returns the chip with the given name.
// Matching ignores case and '-' or '_' separators, so "ESP32-C3" yields Esp32c3.
func Parse(name string) (Chip, error) {
	n := strings.ToLower(name)
	n = strings.NewReplacer("-", "", "_", "").Replace(n)
	for i, s := range names {
		if s == n {
			return Chip(i), nil
		}
	}
	return 0, &UnknownChipError{Name: name}
}

// MarshalText implements encoding.TextMarshaler.
func (c Chip) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &UnknownChipError{Name: c.String()}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Chip) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = p
	return nil
}

// UnknownChipError reports a chip name or value outside the supported set.
type UnknownChipError struct {
	Name string
}

func (e *UnknownChipError) Error() string {
	return fmt.Sprintf("unknown chip %q", e.Name)
}
