package resource

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Resource is the serialized form of a flash stub.
// Field names and the base64 flavour are shared with esptool and other flashing tools and must not change.
type Resource struct {
	Entry     uint32 `json:"entry"`      // Execution start address
	Text      string `json:"text"`       // Code segment, base64
	TextStart uint32 `json:"text_start"` // Load address of the code segment
	Data      string `json:"data"`       // Data segment, base64
	DataStart uint32 `json:"data_start"` // Load address of the data segment
}

// wire detects absent fields, which would otherwise decode as zero.
type wire struct {
	Entry     *uint32 `json:"entry"`
	Text      *string `json:"text"`
	TextStart *uint32 `json:"text_start"`
	Data      *string `json:"data"`
	DataStart *uint32 `json:"data_start"`
}

// payloadEncoding is standard base64 with padding; trailing bits must be zero.
var payloadEncoding = base64.StdEncoding.Strict()

// Decode parses a serialized stub resource.
// All five fields are required. Unknown fields (like esptool's "bss_start") are ignored.
func Decode(b []byte) (Resource, error) {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return Resource{}, err
	}

	switch {
	case w.Entry == nil:
		return Resource{}, missingField("entry")
	case w.Text == nil:
		return Resource{}, missingField("text")
	case w.TextStart == nil:
		return Resource{}, missingField("text_start")
	case w.Data == nil:
		return Resource{}, missingField("data")
	case w.DataStart == nil:
		return Resource{}, missingField("data_start")
	}

	return Resource{
		Entry:     *w.Entry,
		Text:      *w.Text,
		TextStart: *w.TextStart,
		Data:      *w.Data,
		DataStart: *w.DataStart,
	}, nil
}

// Encode writes the resource in its canonical indented form, followed by a newline.
func Encode(w io.Writer, r Resource) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return err
	}
	return nil
}

// DecodePayload decodes a base64 segment payload.
// Line breaks are rejected; the decoder would otherwise skip them.
func DecodePayload(s string) ([]byte, error) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}
	return payloadEncoding.DecodeString(s)
}

// EncodePayload encodes a segment payload to base64.
func EncodePayload(b []byte) string {
	return payloadEncoding.EncodeToString(b)
}

func missingField(name string) error {
	return fmt.Errorf("missing field %q", name)
}
