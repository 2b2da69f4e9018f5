package espflash

import "time"

// Values shared with the serial layer that uploads and talks to a stub.
// Nothing in this module sends or receives them; they are exported so the serial layer
// uses the same numbers the stubs in the catalog are built against.
const (
	// StubHandshake is sent by a stub once it starts executing.
	StubHandshake = "OHAI"

	// ChipDetectMagicRegAddr holds a per-chip magic value used for chip detection.
	ChipDetectMagicRegAddr uint32 = 0x40001000

	DefaultTimeout = 3 * time.Second

	FlashSectorSize = 0x1000
	FlashWriteSize  = 0x400
)
