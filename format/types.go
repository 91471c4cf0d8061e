package format

type (
	CompressionType uint8
	VertexRole      uint8
	TrackParamRole  uint8
)

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone stores the payload as-is.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
	CompressionSnappy CompressionType = 0x5 // CompressionSnappy represents Snappy block compression.
)

// Vertex roles. The role is written into every vertex record as an explicit kind tag.
const (
	VertexTracks VertexRole = 0x1 // primary vertex fitted from tracks
	VertexSPD    VertexRole = 0x2 // primary vertex from the silicon pixel detector
	VertexTPC    VertexRole = 0x3 // TPC-only primary vertex, never persisted
)

// Track parameter roles, in the order their blocks appear in a track record.
const (
	ParamRefitted TrackParamRole = iota
	ParamInner
	ParamTPCInner
	ParamOuter

	NumTrackParams = 4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionSnappy
}

// ParseCompressionType maps a case-sensitive lower-case name to a CompressionType.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	case "snappy":
		return CompressionSnappy, true
	default:
		return 0, false
	}
}

func (r VertexRole) String() string {
	switch r {
	case VertexTracks:
		return "Tracks"
	case VertexSPD:
		return "SPD"
	case VertexTPC:
		return "TPC"
	default:
		return "Unknown"
	}
}

// Mask returns the single-bit mask of the parameter role.
func (r TrackParamRole) Mask() uint8 {
	return 1 << r
}

func (r TrackParamRole) String() string {
	switch r {
	case ParamRefitted:
		return "Refitted"
	case ParamInner:
		return "Inner"
	case ParamTPCInner:
		return "TPCInner"
	case ParamOuter:
		return "Outer"
	default:
		return "Unknown"
	}
}
