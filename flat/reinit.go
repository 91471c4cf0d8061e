package flat

import (
	"fmt"

	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/esd"
	"github.com/arloliu/flatesd/section"
)

// Reinitialize re-reads the header from the backing bytes and validates every
// section against the content size.
//
// Records carry no addresses, so nothing needs to be patched after the bytes
// were moved; Reinitialize only makes the decoded state match the bytes and
// rejects buffers whose counts or offsets point outside the payload.
//
// Returns:
//   - error: Header parse errors, ErrInvalidContentSize, ErrOffsetOutOfRange,
//     ErrInvalidSectionCount or a record decoding error
func (e *Event) Reinitialize() error {
	hdr, err := section.ParseEventHeader(e.buf)
	if err != nil {
		return err
	}

	if uint64(hdr.ContentSize) > uint64(len(e.buf)-section.HeaderSize) {
		return fmt.Errorf("%w: content size %d exceeds the %d bytes after the header",
			errs.ErrInvalidContentSize, hdr.ContentSize, len(e.buf)-section.HeaderSize)
	}

	payload := e.buf[section.HeaderSize : section.HeaderSize+int(hdr.ContentSize)]

	if err := validateTriggers(&hdr, payload); err != nil {
		return err
	}
	if err := validateVertices(&hdr, payload); err != nil {
		return err
	}
	if err := validateTracks(&hdr, payload); err != nil {
		return err
	}
	if err := validateV0s(&hdr, payload); err != nil {
		return err
	}

	e.hdr = hdr
	e.engine = hdr.Engine()

	return nil
}

func checkRange(name string, off, size uint64, limit int) error {
	if off > uint64(limit) || size > uint64(limit)-off {
		return fmt.Errorf("%w: %s [%d, %d) outside payload of %d bytes",
			errs.ErrOffsetOutOfRange, name, off, off+size, limit)
	}

	return nil
}

func validateTriggers(hdr *section.EventHeader, payload []byte) error {
	if hdr.NTriggerClasses > esd.MaxTriggerClasses {
		return fmt.Errorf("%w: %d trigger classes, maximum %d",
			errs.ErrInvalidSectionCount, hdr.NTriggerClasses, esd.MaxTriggerClasses)
	}
	if err := checkRange("triggers", uint64(hdr.TriggerOffset), 0, len(payload)); err != nil {
		return err
	}

	data := payload[hdr.TriggerOffset:]
	for i := range hdr.NTriggerClasses {
		n, err := section.TriggerRecordSize(data)
		if err != nil {
			return fmt.Errorf("trigger %d: %w", i, err)
		}
		data = data[n:]
	}

	return nil
}

func validateVertices(hdr *section.EventHeader, payload []byte) error {
	var present uint32
	if hdr.HasVertexTracks() {
		if err := checkRange("vertex tracks", uint64(hdr.VertexTracksOffset), section.VertexSize, len(payload)); err != nil {
			return err
		}
		present++
	}
	if hdr.HasVertexSPD() {
		if err := checkRange("vertex spd", uint64(hdr.VertexSPDOffset), section.VertexSize, len(payload)); err != nil {
			return err
		}
		present++
	}
	if hdr.PrimaryVertexMask&^(section.VertexTracksMask|section.VertexSPDMask) != 0 || present != hdr.NPrimaryVertices {
		return fmt.Errorf("%w: vertex mask 0x%02x with %d vertices",
			errs.ErrInvalidSectionCount, hdr.PrimaryVertexMask, hdr.NPrimaryVertices)
	}

	return nil
}

func validateTracks(hdr *section.EventHeader, payload []byte) error {
	if hdr.NTracks > hdr.NTrackSlots {
		return fmt.Errorf("%w: %d tracks in %d slots", errs.ErrInvalidSectionCount, hdr.NTracks, hdr.NTrackSlots)
	}

	tableSize := uint64(hdr.NTrackSlots) * section.TrackTableEntrySize
	if err := checkRange("track table", uint64(hdr.TrackTableOffset), tableSize, len(payload)); err != nil {
		return err
	}
	if err := checkRange("tracks", uint64(hdr.TracksOffset), 0, len(payload)); err != nil {
		return err
	}

	engine := hdr.Engine()
	list := payload[hdr.TracksOffset:]

	// record start offsets, in list order
	starts := make(map[int64]struct{}, hdr.NTracks)
	var pos int64
	for i := range hdr.NTracks {
		n, err := section.TrackRecordSize(list[pos:], engine)
		if err != nil {
			return fmt.Errorf("track %d: %w", i, err)
		}
		starts[pos] = struct{}{}
		pos += int64(n)
	}

	table, err := section.ViewTrackTable(payload[hdr.TrackTableOffset:], engine, int(hdr.NTrackSlots))
	if err != nil {
		return err
	}

	var stored uint32
	for slot := range table.Len() {
		off := table.Offset(slot)
		if off == section.AbsentTrack {
			continue
		}
		if _, ok := starts[off]; !ok {
			return fmt.Errorf("%w: track slot %d points at %d, not a record start",
				errs.ErrOffsetOutOfRange, slot, off)
		}
		stored++
	}
	if stored != hdr.NTracks {
		return fmt.Errorf("%w: %d table entries for %d tracks", errs.ErrInvalidSectionCount, stored, hdr.NTracks)
	}

	return nil
}

func validateV0s(hdr *section.EventHeader, payload []byte) error {
	return checkRange("v0s", uint64(hdr.V0Offset), uint64(hdr.NV0s)*section.V0Size, len(payload))
}
