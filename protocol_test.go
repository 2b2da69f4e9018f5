package espflash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProtocolConstants(t *testing.T) {
	assert.Equal(t, "OHAI", StubHandshake)
	assert.Equal(t, uint32(0x40001000), ChipDetectMagicRegAddr)
	assert.Equal(t, 3*time.Second, DefaultTimeout)
	assert.Equal(t, 0x1000, FlashSectorSize)
	assert.Equal(t, 0x400, FlashWriteSize)
	assert.Zero(t, FlashSectorSize%FlashWriteSize)
}
