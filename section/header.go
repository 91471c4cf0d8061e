package section

import (
	"fmt"

	"github.com/arloliu/flatesd/endian"
	"github.com/arloliu/flatesd/errs"
)

// EventHeader is the fixed-size prefix of a flat event.
//
// All offsets are relative to the start of the variable payload, which begins
// right after the header at byte HeaderSize. The header stores no addresses,
// so a buffer stays valid after its bytes are copied elsewhere.
type EventHeader struct {
	// Flag holds the byte-order bit and reserved bits. Byte offset 3.
	Flag uint8

	// ContentSize is the number of payload bytes appended after the header.
	ContentSize uint32 // byte offset 4-7

	MagneticField    float64 // byte offset 8-15
	PeriodNumber     uint32  // byte offset 16-19
	RunNumber        int32   // byte offset 20-23
	OrbitNumber      uint32  // byte offset 24-27
	TimeStamp        uint32  // byte offset 28-31
	BunchCrossNumber uint16  // byte offset 32-33
	EventSpecie      uint8   // byte offset 34

	// PrimaryVertexMask has VertexTracksMask and VertexSPDMask bits. Byte offset 35.
	PrimaryVertexMask uint8

	NTriggerClasses   uint32 // byte offset 36-39
	TriggerMask       uint64 // byte offset 40-47
	TriggerMaskNext50 uint64 // byte offset 48-55
	NPrimaryVertices  uint32 // byte offset 56-59
	NTracks           uint32 // byte offset 60-63
	NV0s              uint32 // byte offset 64-67

	TriggerOffset      uint32 // byte offset 68-71
	VertexTracksOffset uint32 // byte offset 72-75
	VertexSPDOffset    uint32 // byte offset 76-79
	TrackTableOffset   uint32 // byte offset 80-83
	TracksOffset       uint32 // byte offset 84-87
	V0Offset           uint32 // byte offset 88-91

	// NTrackSlots is the number of track offset table entries, equal to the
	// number of tracks of the source event. Byte offset 92-95.
	NTrackSlots uint32
}

// IsBigEndian reports whether the payload uses big-endian byte order.
func (h *EventHeader) IsBigEndian() bool {
	return h.Flag&FlagBigEndian != 0
}

// SetBigEndian selects the payload byte order.
func (h *EventHeader) SetBigEndian(big bool) {
	if big {
		h.Flag |= FlagBigEndian
	} else {
		h.Flag &^= FlagBigEndian
	}
}

// Engine returns the endian engine selected by the flag.
func (h *EventHeader) Engine() endian.EndianEngine {
	return endian.ForFlag(h.IsBigEndian())
}

// Reset zeroes every field except the byte-order flag.
func (h *EventHeader) Reset() {
	*h = EventHeader{Flag: h.Flag}
}

// HasVertexTracks reports whether the tracks vertex record is present.
func (h *EventHeader) HasVertexTracks() bool {
	return h.PrimaryVertexMask&VertexTracksMask != 0
}

// HasVertexSPD reports whether the SPD vertex record is present.
func (h *EventHeader) HasVertexSPD() bool {
	return h.PrimaryVertexMask&VertexSPDMask != 0
}

// WriteToSlice serializes the header into b[0:HeaderSize].
//
// Returns:
//   - error: ErrInvalidHeaderSize if b is shorter than HeaderSize
func (h *EventHeader) WriteToSlice(b []byte) error {
	if len(b) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// magic and version are byte-order independent anchors
	b[0] = byte(MagicFlatEventV1 & 0xFF)
	b[1] = byte(MagicFlatEventV1 >> 8)
	b[2] = FormatVersion
	b[3] = h.Flag

	engine := h.Engine()
	engine.PutUint32(b[4:8], h.ContentSize)
	endian.PutFloat64(engine, b[8:16], h.MagneticField)
	engine.PutUint32(b[16:20], h.PeriodNumber)
	engine.PutUint32(b[20:24], uint32(h.RunNumber)) //nolint:gosec
	engine.PutUint32(b[24:28], h.OrbitNumber)
	engine.PutUint32(b[28:32], h.TimeStamp)
	engine.PutUint16(b[32:34], h.BunchCrossNumber)
	b[34] = h.EventSpecie
	b[35] = h.PrimaryVertexMask
	engine.PutUint32(b[36:40], h.NTriggerClasses)
	engine.PutUint64(b[40:48], h.TriggerMask)
	engine.PutUint64(b[48:56], h.TriggerMaskNext50)
	engine.PutUint32(b[56:60], h.NPrimaryVertices)
	engine.PutUint32(b[60:64], h.NTracks)
	engine.PutUint32(b[64:68], h.NV0s)
	engine.PutUint32(b[68:72], h.TriggerOffset)
	engine.PutUint32(b[72:76], h.VertexTracksOffset)
	engine.PutUint32(b[76:80], h.VertexSPDOffset)
	engine.PutUint32(b[80:84], h.TrackTableOffset)
	engine.PutUint32(b[84:88], h.TracksOffset)
	engine.PutUint32(b[88:92], h.V0Offset)
	engine.PutUint32(b[92:96], h.NTrackSlots)

	return nil
}

// Bytes serializes the header into a new slice.
func (h *EventHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	_ = h.WriteToSlice(b)

	return b
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrInvalidVersion or ErrInvalidHeaderFlags
func (h *EventHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	magic := uint16(data[0]) | uint16(data[1])<<8
	if magic != MagicFlatEventV1 {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, magic)
	}
	if data[2] != FormatVersion {
		return fmt.Errorf("%w: %d", errs.ErrInvalidVersion, data[2])
	}
	if data[3]&FlagReservedMask != 0 {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidHeaderFlags, data[3])
	}

	h.Flag = data[3]
	engine := h.Engine()

	h.ContentSize = engine.Uint32(data[4:8])
	h.MagneticField = endian.Float64(engine, data[8:16])
	h.PeriodNumber = engine.Uint32(data[16:20])
	h.RunNumber = int32(engine.Uint32(data[20:24])) //nolint:gosec
	h.OrbitNumber = engine.Uint32(data[24:28])
	h.TimeStamp = engine.Uint32(data[28:32])
	h.BunchCrossNumber = engine.Uint16(data[32:34])
	h.EventSpecie = data[34]
	h.PrimaryVertexMask = data[35]
	h.NTriggerClasses = engine.Uint32(data[36:40])
	h.TriggerMask = engine.Uint64(data[40:48])
	h.TriggerMaskNext50 = engine.Uint64(data[48:56])
	h.NPrimaryVertices = engine.Uint32(data[56:60])
	h.NTracks = engine.Uint32(data[60:64])
	h.NV0s = engine.Uint32(data[64:68])
	h.TriggerOffset = engine.Uint32(data[68:72])
	h.VertexTracksOffset = engine.Uint32(data[72:76])
	h.VertexSPDOffset = engine.Uint32(data[76:80])
	h.TrackTableOffset = engine.Uint32(data[80:84])
	h.TracksOffset = engine.Uint32(data[84:88])
	h.V0Offset = engine.Uint32(data[88:92])
	h.NTrackSlots = engine.Uint32(data[92:96])

	return nil
}

// ParseEventHeader parses an EventHeader from data.
func ParseEventHeader(data []byte) (EventHeader, error) {
	var h EventHeader
	if err := h.Parse(data); err != nil {
		return EventHeader{}, err
	}

	return h, nil
}
