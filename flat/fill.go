package flat

import (
	"fmt"

	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/esd"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/section"
)

// SetFromESD resets the event and fills it from src.
//
// Parameters:
//   - allocated: Usable capacity in bytes, header included. Must satisfy
//     section.HeaderSize <= allocated <= len(buf).
//   - src: Rich event to copy from. A nil src leaves the event empty.
//   - fillV0s: Whether V0 records are appended.
//
// Returns:
//   - error: ErrInvalidCapacity for a bad allocated value. ErrOutOfSpace when a
//     section does not fit, ErrInvalidV0 for a missing V0, and the record
//     encoding errors of the section package. After any error the buffer is
//     partially written and must be discarded.
func (e *Event) SetFromESD(allocated int, src Source, fillV0s bool) error {
	if err := checkCapacity(allocated, len(e.buf)); err != nil {
		return err
	}

	e.Reset()
	if isNil(src) {
		return nil
	}

	e.hdr.MagneticField = src.MagneticField()
	e.hdr.PeriodNumber = src.PeriodNumber()
	e.hdr.RunNumber = src.RunNumber()
	e.hdr.OrbitNumber = src.OrbitNumber()
	e.hdr.TimeStamp = src.TimeStamp()
	e.hdr.BunchCrossNumber = src.BunchCrossNumber()
	e.hdr.EventSpecie = src.EventSpecie()
	e.hdr.TriggerMask = src.TriggerMask()
	e.hdr.TriggerMaskNext50 = src.TriggerMaskNext50()

	defer e.flush()

	w := newCursor(e.buf[:allocated], 0)

	if err := e.fillTriggers(&w, src.Run()); err != nil {
		return e.buildFailed("triggers", err)
	}
	if err := e.fillVertex(&w, format.VertexTracks, src.PrimaryVertexTracks()); err != nil {
		return e.buildFailed("vertex tracks", err)
	}
	if err := e.fillVertex(&w, format.VertexSPD, src.PrimaryVertexSPD()); err != nil {
		return e.buildFailed("vertex spd", err)
	}
	if err := e.fillTracks(&w, src); err != nil {
		return e.buildFailed("tracks", err)
	}
	if fillV0s {
		if err := e.fillV0s(&w, src); err != nil {
			return e.buildFailed("v0s", err)
		}
	}

	e.logger.Debug("flat event built",
		"run", e.hdr.RunNumber,
		"size", e.Size(),
		"tracks", e.hdr.NTracks,
		"v0s", e.hdr.NV0s)

	return nil
}

func (e *Event) buildFailed(sec string, err error) error {
	e.logger.Debug("flat event build failed", "section", sec, "size", e.Size(), "error", err)
	return err
}

// fillTriggers appends one record per named trigger slot of run.
func (e *Event) fillTriggers(w *cursor, run *esd.Run) error {
	start := w.offset()
	e.hdr.TriggerOffset = uint32(start)

	var count uint32
	if run != nil {
		for i := range esd.MaxTriggerClasses {
			name := run.TriggerClass(i)
			if name == "" {
				continue
			}
			n, err := section.WriteTrigger(w.tail(), e.engine, esd.TriggerClass{Name: name, Index: i})
			if err != nil {
				return err
			}
			w.advance(n)
			count++
		}
	}

	e.hdr.NTriggerClasses = count
	e.hdr.ContentSize += uint32(w.offset() - start)

	return nil
}

// fillVertex appends v under role when it is present and valid.
func (e *Event) fillVertex(w *cursor, role format.VertexRole, v *esd.Vertex) error {
	if v == nil || !v.Status {
		return nil
	}
	if w.free() < section.VertexSize {
		return fmt.Errorf("%w: %s vertex needs %d bytes, %d free", errs.ErrOutOfSpace, role, section.VertexSize, w.free())
	}

	off := uint32(w.offset())
	n, err := section.WriteVertex(w.tail(), e.engine, role, v)
	if err != nil {
		return err
	}
	w.advance(n)

	switch role {
	case format.VertexTracks:
		e.hdr.VertexTracksOffset = off
		e.hdr.PrimaryVertexMask |= section.VertexTracksMask
	case format.VertexSPD:
		e.hdr.VertexSPDOffset = off
		e.hdr.PrimaryVertexMask |= section.VertexSPDMask
	}
	e.hdr.NPrimaryVertices++
	e.hdr.ContentSize += uint32(n)

	return nil
}

// fillTracks appends the offset table followed by every present track.
func (e *Event) fillTracks(w *cursor, src Source) error {
	slots := src.NumberOfTracks()

	tableOffset := w.offset()
	table, err := section.NewTrackTable(w.tail(), e.engine, slots)
	if err != nil {
		return err
	}
	tableSize := section.TrackTableSize(slots)
	w.advance(tableSize)

	e.hdr.TrackTableOffset = uint32(tableOffset)
	e.hdr.TracksOffset = uint32(tableOffset + tableSize)

	var listSize int
	var count uint32
	for i := range slots {
		t := src.Track(i)
		if t == nil {
			continue
		}
		size := section.TrackSize(t)
		if w.free() < size {
			return fmt.Errorf("%w: track %d needs %d bytes, %d free", errs.ErrOutOfSpace, i, size, w.free())
		}
		n, err := section.WriteTrack(w.tail(), e.engine, t)
		if err != nil {
			return fmt.Errorf("track %d: %w", i, err)
		}
		table.SetOffset(i, int64(listSize))
		w.advance(n)
		listSize += n
		count++
	}

	e.hdr.NTracks = count
	e.hdr.NTrackSlots = uint32(slots)
	e.hdr.ContentSize += uint32(tableSize + listSize)

	return nil
}

// fillV0s appends the daughter index pair of every source V0.
func (e *Event) fillV0s(w *cursor, src Source) error {
	start := w.offset()
	e.hdr.V0Offset = uint32(start)

	n := src.NumberOfV0s()
	for i := range n {
		v := src.V0(i)
		if v == nil {
			return fmt.Errorf("%w: v0 %d is missing", errs.ErrInvalidV0, i)
		}
		if w.free() < section.V0Size {
			return fmt.Errorf("%w: v0 %d needs %d bytes, %d free", errs.ErrOutOfSpace, i, section.V0Size, w.free())
		}
		written, err := section.WriteV0(w.tail(), e.engine, v.V0Indices)
		if err != nil {
			return err
		}
		w.advance(written)
	}

	e.hdr.NV0s = uint32(n)
	e.hdr.ContentSize += uint32(w.offset() - start)

	return nil
}
