package section

import (
	"fmt"

	"github.com/arloliu/flatesd/endian"
	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/esd"
)

// Trigger record layout:
//
//	Bytes  | Field        | Type
//	-------|--------------|-------
//	0-1    | TriggerIndex | uint16
//	2      | NameLength   | uint8
//	3      | Reserved     | uint8
//	4-     | Name         | NameLength bytes, no terminator

// TriggerSize returns the encoded size of a trigger record carrying name.
func TriggerSize(name string) int {
	return TriggerFixedSize + len(name)
}

// WriteTrigger encodes a trigger record at the start of dst.
//
// Parameters:
//   - dst: Destination, must hold at least TriggerSize(tc.Name) bytes
//   - engine: Byte order of the payload
//   - tc: Trigger class name and slot index
//
// Returns:
//   - int: Number of bytes written
//   - error: ErrInvalidTrigger or ErrOutOfSpace
func WriteTrigger(dst []byte, engine endian.EndianEngine, tc esd.TriggerClass) (int, error) {
	if len(tc.Name) > MaxTriggerNameLength {
		return 0, fmt.Errorf("%w: name length %d exceeds maximum %d", errs.ErrInvalidTrigger, len(tc.Name), MaxTriggerNameLength)
	}
	if tc.Index < 0 || tc.Index >= esd.MaxTriggerClasses {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d)", errs.ErrInvalidTrigger, tc.Index, esd.MaxTriggerClasses)
	}

	size := TriggerSize(tc.Name)
	if len(dst) < size {
		return 0, fmt.Errorf("%w: trigger %q needs %d bytes, %d free", errs.ErrOutOfSpace, tc.Name, size, len(dst))
	}

	engine.PutUint16(dst[0:2], uint16(tc.Index)) //nolint:gosec
	dst[2] = uint8(len(tc.Name))                 //nolint:gosec
	dst[3] = 0
	copy(dst[TriggerFixedSize:size], tc.Name)

	return size, nil
}

// TriggerRecordSize returns the size of the trigger record at the start of src
// without decoding its name. It is the stride to the next trigger record.
func TriggerRecordSize(src []byte) (int, error) {
	if len(src) < TriggerFixedSize {
		return 0, fmt.Errorf("%w: trigger record truncated", errs.ErrInvalidRecordSize)
	}
	size := TriggerFixedSize + int(src[2])
	if len(src) < size {
		return 0, fmt.Errorf("%w: trigger record needs %d bytes, %d available", errs.ErrInvalidRecordSize, size, len(src))
	}

	return size, nil
}

// ReadTrigger decodes the trigger record at the start of src.
//
// Returns:
//   - esd.TriggerClass: Decoded name and index
//   - int: Record size, the offset of the next trigger record
//   - error: ErrInvalidRecordSize if src is truncated
func ReadTrigger(src []byte, engine endian.EndianEngine) (esd.TriggerClass, int, error) {
	size, err := TriggerRecordSize(src)
	if err != nil {
		return esd.TriggerClass{}, 0, err
	}

	tc := esd.TriggerClass{
		Index: int(engine.Uint16(src[0:2])),
		Name:  string(src[TriggerFixedSize:size]),
	}

	return tc, size, nil
}
