// Package section defines the low-level binary layout of a flat event.
//
// This package provides the fixed-size event header and the codecs of every
// sub-record that can follow it. It knows nothing about building order or
// capacity accounting; that belongs to the flat package.
//
// # Buffer Structure
//
// A flat event is one contiguous byte slice:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (96 bytes, fixed)                                │
//	│  - Magic, version, byte-order flag                      │
//	│  - Content size, event scalars, trigger masks           │
//	│  - Counts and section offsets                           │
//	├─────────────────────────────────────────────────────────┤
//	│ Trigger records (N × variable)                          │
//	├─────────────────────────────────────────────────────────┤
//	│ Tracks vertex record (88 bytes, optional)               │
//	├─────────────────────────────────────────────────────────┤
//	│ SPD vertex record (88 bytes, optional)                  │
//	├─────────────────────────────────────────────────────────┤
//	│ Track offset table (source tracks × 8 bytes)            │
//	├─────────────────────────────────────────────────────────┤
//	│ Track records (stored tracks × variable)                │
//	├─────────────────────────────────────────────────────────┤
//	│ V0 records (N × 8 bytes, optional)                      │
//	└─────────────────────────────────────────────────────────┘
//
// Every section offset in the header is relative to the first payload byte
// (byte 96), and every track table entry is relative to the first track
// record. No absolute address is ever stored, so the bytes can be copied to
// shared memory, sent over the wire or written to disk and read back as-is.
//
// # Header Format
//
//	Bytes  | Field                | Type
//	-------|----------------------|--------
//	0-1    | Magic (0xEF10)       | uint16, always little endian
//	2      | Version              | uint8
//	3      | Flag                 | uint8, bit 0 = big endian
//	4-7    | ContentSize          | uint32
//	8-15   | MagneticField        | float64
//	16-19  | PeriodNumber         | uint32
//	20-23  | RunNumber            | int32
//	24-27  | OrbitNumber          | uint32
//	28-31  | TimeStamp            | uint32
//	32-33  | BunchCrossNumber     | uint16
//	34     | EventSpecie          | uint8
//	35     | PrimaryVertexMask    | uint8, bit 0 = tracks, bit 1 = SPD
//	36-39  | NTriggerClasses      | uint32
//	40-47  | TriggerMask          | uint64
//	48-55  | TriggerMaskNext50    | uint64
//	56-59  | NPrimaryVertices     | uint32
//	60-63  | NTracks              | uint32
//	64-67  | NV0s                 | uint32
//	68-71  | TriggerOffset        | uint32
//	72-75  | VertexTracksOffset   | uint32
//	76-79  | VertexSPDOffset      | uint32
//	80-83  | TrackTableOffset     | uint32
//	84-87  | TracksOffset         | uint32
//	88-91  | V0Offset             | uint32
//	92-95  | NTrackSlots          | uint32
//
// # Records
//
// Each record reports its own size, which is also the stride to the next
// record of the same kind, so a section can be walked without an index:
//
//	for i, off := 0, start; i < n; i++ {
//	    tc, size, err := section.ReadTrigger(payload[off:], engine)
//	    ...
//	    off += size
//	}
//
// Records are plain data. Vertex records carry an explicit role tag instead of
// any embedded type identity, so nothing has to be fixed up after the bytes
// move.
package section
