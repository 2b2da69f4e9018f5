package espflash

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	cause := errors.New("cause")

	malformed := &MalformedStubError{Origin: "esp32c3", Err: cause}
	assert.EqualError(t, malformed, "flash stub esp32c3: malformed resource: cause")
	assert.True(t, errors.Is(malformed, cause))

	enc := &EncodingError{Origin: "esp32", Segment: "data", Err: cause}
	assert.EqualError(t, enc, "flash stub esp32: decode data segment: cause")
	assert.True(t, errors.Is(enc, cause))

	layout := newLayoutErr("", "entry 0x%08X outside text", 0x10)
	assert.EqualError(t, layout, "flash stub: invalid layout: entry 0x00000010 outside text")
}
