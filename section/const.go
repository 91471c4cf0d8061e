package section

import "github.com/arloliu/flatesd/format"

const (
	// Magic number and version (bytes 0-2 of the header)
	MagicFlatEventV1 = 0xEF10 // MagicFlatEventV1 identifies a version 1 flat event.
	FormatVersion    = 1      // FormatVersion is the only layout version currently written.

	// Header flag bits (byte 3)
	FlagBigEndian    = 0x01 // 0=little, 1=big
	FlagReservedMask = 0xFE // reserved bits, must be 0

	// Primary vertex mask bits
	VertexTracksMask = 0x1 // tracks vertex present
	VertexSPDMask    = 0x2 // SPD vertex present

	// AbsentTrack marks a track table slot whose source track was not stored.
	AbsentTrack int64 = -1
)

// Fixed sizes of the header and records, in bytes.
const (
	HeaderSize = 96 // fixed event header size

	TriggerFixedSize     = 4                                       // index (2) + name length (1) + reserved (1)
	MaxTriggerNameLength = 255                                     // name length is stored in one byte
	MaxTriggerSize       = TriggerFixedSize + MaxTriggerNameLength // largest trigger record

	VertexSize = 88 // fixed vertex record size

	TrackTableEntrySize = 8   // one int64 per source track slot
	TrackHeaderSize     = 24  // fixed track record prefix
	TrackParamSize      = 88  // one external track parameter block
	TPCClusterSize      = 32  // one TPC cluster block
	MaxTPCClusters      = 160 // TPC pad rows

	// MaxTrackSize is the largest possible track record.
	MaxTrackSize = TrackHeaderSize + format.NumTrackParams*TrackParamSize + MaxTPCClusters*TPCClusterSize

	V0Size = 8 // negative + positive daughter index
)
