package espflash

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Segment is a block of bytes paired with the address it is loaded to.
type Segment struct {
	Addr uint32
	Data []byte
}

// Len returns the segment size in bytes.
func (s Segment) Len() int {
	return len(s.Data)
}

// End returns the first address after the segment.
// It is 64 bits wide so that a segment touching the top of the address space does not wrap.
func (s Segment) End() uint64 {
	return uint64(s.Addr) + uint64(len(s.Data))
}

// Contains reports whether addr lies within the segment.
func (s Segment) Contains(addr uint32) bool {
	return addr >= s.Addr && uint64(addr) < s.End()
}

// Overlaps reports whether both segments share at least one address.
// Empty segments overlap nothing.
func (s Segment) Overlaps(o Segment) bool {
	if len(s.Data) == 0 || len(o.Data) == 0 {
		return false
	}
	return uint64(s.Addr) < o.End() && uint64(o.Addr) < s.End()
}

// Chunks splits the segment into consecutive pieces of at most size bytes.
// The pieces share memory with s.
func (s Segment) Chunks(size int) []Segment {
	if size <= 0 || len(s.Data) == 0 {
		return nil
	}
	chunks := make([]Segment, 0, (len(s.Data)+size-1)/size)
	for off := 0; off < len(s.Data); off += size {
		end := off + size
		if end > len(s.Data) {
			end = len(s.Data)
		}
		chunks = append(chunks, Segment{
			Addr: s.Addr + uint32(off),
			Data: s.Data[off:end:end],
		})
	}
	return chunks
}

// CID returns a content identifier (CIDv1, raw codec, sha2-256) of the segment bytes.
// The load address is not part of the identifier.
func (s Segment) CID() (cid.Cid, error) {
	sum, err := multihash.Sum(s.Data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
