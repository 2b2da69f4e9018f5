// Package stubimport converts flash stubs produced by the stub build (esptool's JSON format)
// into catalog resources.
package stubimport

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/izu-co/espflash"
	"github.com/izu-co/espflash/chip"
	"github.com/izu-co/espflash/internal/catalog"
)

// PrintlnFunc is used for logging the import progress.
type PrintlnFunc func(format string, args ...interface{})

// Import reads a stub from in, validates it and writes the catalog resource to out.
//
// Validation decodes both segments and checks their layout (see espflash.FlashStub.Validate).
// Fields besides the five resource fields are dropped.
//
// logger (optional) is used to report the progress.
func Import(out io.Writer, in io.Reader, logger PrintlnFunc) (espflash.FlashStub, error) {
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return espflash.FlashStub{}, fmt.Errorf("read stub: %w", err)
	}
	stub, err := espflash.ParseStub(b)
	if err != nil {
		return espflash.FlashStub{}, err
	}
	if err := stub.Validate(); err != nil {
		return espflash.FlashStub{}, err
	}

	segments, err := stub.Segments()
	if err != nil {
		return espflash.FlashStub{}, err
	}
	logger("Entry 0x%08X", stub.Entry())
	for i, name := range []string{"text", "data"} {
		id, err := segments[i].CID()
		if err != nil {
			return espflash.FlashStub{}, fmt.Errorf("%s segment: %w", name, err)
		}
		logger("Adding %s at 0x%08X (%d bytes, %s)", name, segments[i].Addr, segments[i].Len(), id)
	}

	if err := stub.Encode(out); err != nil {
		return espflash.FlashStub{}, fmt.Errorf("write resource: %w", err)
	}
	return stub, nil
}

// ImportFiles imports the given stub files into dir, one resource per chip,
// named like the catalog expects them. Existing resources are replaced.
//
// files is a map of chips to the respective stub's filepath.
//
// See Import for more information.
func ImportFiles(dir string, files map[chip.Chip]string, logger PrintlnFunc) error {
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}

	chips := make([]chip.Chip, 0, len(files))
	for c := range files {
		if !c.Valid() {
			return &chip.UnknownChipError{Name: c.String()}
		}
		chips = append(chips, c)
	}
	sort.Slice(chips, func(i, j int) bool { return chips[i] < chips[j] })

	for _, c := range chips {
		target := filepath.Join(dir, filepath.Base(catalog.Name(c)))
		logger("Importing %q for %s --> %q", files[c], c, target)
		if err := importFile(target, files[c], logger); err != nil {
			return fmt.Errorf("import %s (%q): %w", c, files[c], err)
		}
	}
	return nil
}

func importFile(target, source string, logger PrintlnFunc) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	// A failed import leaves the previous resource intact.
	tmp, err := os.CreateTemp(filepath.Dir(target), ".import-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := Import(tmp, in, logger); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}
