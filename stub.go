// Package espflash provides the flash stubs that are uploaded into a chip's RAM
// before the faster stub loader protocol can be used.
package espflash

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/izu-co/espflash/chip"
	"github.com/izu-co/espflash/internal/catalog"
	"github.com/izu-co/espflash/internal/resource"
	"go.uber.org/zap"
)

// FlashStub describes a stub program: its entry point and two load segments.
// Payloads are kept encoded and decoded on every access.
//
// A FlashStub is immutable; copying the value clones it.
type FlashStub struct {
	res    resource.Resource
	origin string
}

// GetStub returns the flash stub compiled in for the given chip.
// Each call parses the embedded resource anew.
//
// All errors indicate a defect in the program itself and should abort the flashing operation:
// an invalid chip value fails with *chip.UnknownChipError, a missing or corrupt embedded
// resource with *MalformedStubError naming the chip.
func GetStub(c chip.Chip) (FlashStub, error) {
	return getStub(c, catalog.Lookup)
}

func getStub(c chip.Chip, lookup func(chip.Chip) ([]byte, error)) (FlashStub, error) {
	data, err := lookup(c)
	var unknown *chip.UnknownChipError
	if errors.As(err, &unknown) {
		return FlashStub{}, err
	}

	stub := FlashStub{}
	if err != nil {
		err = &MalformedStubError{Origin: c.String(), Err: err}
	} else {
		stub, err = parse(data, c.String())
	}
	if err != nil {
		Logger().Error("Corrupt flash stub resource",
			zap.Stringer("chip", c),
			zap.String("resource", catalog.Name(c)),
			zap.Error(err))
		return FlashStub{}, err
	}

	Logger().Debug("Loaded flash stub",
		zap.Stringer("chip", c),
		zap.Uint32("entry", stub.res.Entry),
		zap.Uint32("text_start", stub.res.TextStart),
		zap.Uint32("data_start", stub.res.DataStart))
	return stub, nil
}

// ParseStub parses a serialized stub resource.
// Payloads are not decoded; use Validate to check them.
func ParseStub(b []byte) (FlashStub, error) {
	return parse(b, "")
}

func parse(b []byte, origin string) (FlashStub, error) {
	res, err := resource.Decode(b)
	if err != nil {
		return FlashStub{}, &MalformedStubError{Origin: origin, Err: err}
	}
	return FlashStub{res: res, origin: origin}, nil
}

// NewFlashStub creates a stub from raw segments.
func NewFlashStub(entry uint32, text, data Segment) FlashStub {
	return FlashStub{
		res: resource.Resource{
			Entry:     entry,
			Text:      resource.EncodePayload(text.Data),
			TextStart: text.Addr,
			Data:      resource.EncodePayload(data.Data),
			DataStart: data.Addr,
		},
	}
}

// Origin returns the chip name of catalog stubs and "" for all others.
func (s FlashStub) Origin() string {
	return s.origin
}

// Entry returns the address execution starts at once both segments are loaded.
func (s FlashStub) Entry() uint32 {
	return s.res.Entry
}

// Text returns the load address and a freshly decoded copy of the code segment.
func (s FlashStub) Text() (uint32, []byte, error) {
	b, err := s.decode("text", s.res.Text)
	return s.res.TextStart, b, err
}

// Data returns the load address and a freshly decoded copy of the data segment.
func (s FlashStub) Data() (uint32, []byte, error) {
	b, err := s.decode("data", s.res.Data)
	return s.res.DataStart, b, err
}

func (s FlashStub) decode(segment, payload string) ([]byte, error) {
	b, err := resource.DecodePayload(payload)
	if err != nil {
		return nil, &EncodingError{Origin: s.origin, Segment: segment, Err: err}
	}
	return b, nil
}

// Segments returns the decoded text and data segments, in that order.
func (s FlashStub) Segments() ([]Segment, error) {
	textAddr, text, err := s.Text()
	if err != nil {
		return nil, err
	}
	dataAddr, data, err := s.Data()
	if err != nil {
		return nil, err
	}
	return []Segment{
		{Addr: textAddr, Data: text},
		{Addr: dataAddr, Data: data},
	}, nil
}

// Validate decodes both segments and checks that they can be loaded:
// the text segment is not empty, no segment wraps the 32-bit address space,
// the segments do not overlap and the entry point lies within the text segment.
func (s FlashStub) Validate() error {
	segments, err := s.Segments()
	if err != nil {
		return err
	}
	text, data := segments[0], segments[1]

	if text.Len() == 0 {
		return newLayoutErr(s.origin, "empty text segment")
	}
	for i, seg := range segments {
		if seg.End() > 1<<32 {
			return newLayoutErr(s.origin, "%s segment at 0x%08X (%d bytes) exceeds the 32-bit address space",
				segmentNames[i], seg.Addr, seg.Len())
		}
	}
	if text.Overlaps(data) {
		return newLayoutErr(s.origin, "text [0x%08X, 0x%08X) overlaps data [0x%08X, 0x%08X)",
			text.Addr, text.End(), data.Addr, data.End())
	}
	if !text.Contains(s.res.Entry) {
		return newLayoutErr(s.origin, "entry 0x%08X outside text [0x%08X, 0x%08X)",
			s.res.Entry, text.Addr, text.End())
	}
	return nil
}

var segmentNames = [...]string{"text", "data"}

// Equal reports whether both stubs describe the same program.
// Unlike ==, the origin is not compared.
func (s FlashStub) Equal(o FlashStub) bool {
	return s.res == o.res
}

// Encode writes the stub in the indented resource format used by the catalog.
func (s FlashStub) Encode(w io.Writer) error {
	return resource.Encode(w, s.res)
}

// MarshalJSON writes the stub in its resource format.
func (s FlashStub) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.res)
}

// UnmarshalJSON parses the resource format, with the same checks as ParseStub.
func (s *FlashStub) UnmarshalJSON(b []byte) error {
	p, err := ParseStub(b)
	if err != nil {
		return err
	}
	*s = p
	return nil
}
