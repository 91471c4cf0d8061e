// Package flat implements the flat event buffer: a self-describing,
// relocatable encoding of a whole detector event in one contiguous byte slice.
//
// The caller owns the memory. It sizes it with EstimateSize, wraps it with New
// and fills it from a rich event with SetFromESD. The filled bytes (Bytes) can
// be written to shared memory, a socket or a file; because the header stores
// only offsets, the copy is opened again with Open at whatever address it
// lands and read back into a rich event with GetESDEvent.
//
// # Basic Usage
//
//	size := flat.EstimateSize(src, true)
//	buf := make([]byte, size)
//
//	ev, err := flat.New(buf)
//	if err != nil {
//	    return err
//	}
//	if err := ev.SetFromESD(len(buf), src, true); err != nil {
//	    return err // discard buf, it is partially written
//	}
//
//	moved := append([]byte(nil), ev.Bytes()...)
//	view, err := flat.Open(moved)
//	if err != nil {
//	    return err
//	}
//
//	dst := esd.NewEvent()
//	view.GetESDEvent(dst)
//
// # Build Order
//
// Sections are always appended in the same order: trigger classes, tracks
// vertex, SPD vertex, track offset table followed by the track records, and V0
// records. A section's count and size are committed to the header only after the
// section is complete. Any out-of-space condition aborts the build with
// errs.ErrOutOfSpace; the buffer is left partially written and must not be
// reused.
//
// # Concurrency
//
// An Event is NOT safe for concurrent use while it is being built. Once
// SetFromESD has returned, concurrent reads are safe as long as nobody writes.
package flat
