package store

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/flat"
)

// KeySize is the encoded size of a Key.
const KeySize = 14

// Key identifies a stored event.
//
// Layout, all big endian so keys sort by run, then orbit, then bunch crossing:
//
//	Bytes  | Field          | Type
//	-------|----------------|-------
//	0-3    | Run            | int32 with the sign bit flipped
//	4-7    | Orbit          | uint32
//	8-9    | BunchCrossing  | uint16
//	10-13  | Period         | uint32
type Key [KeySize]byte

// NewKey builds a key from the event coordinates.
func NewKey(run int32, orbit uint32, bc uint16, period uint32) Key {
	var k Key
	binary.BigEndian.PutUint32(k[0:4], uint32(run)^0x8000_0000) //nolint:gosec
	binary.BigEndian.PutUint32(k[4:8], orbit)
	binary.BigEndian.PutUint16(k[8:10], bc)
	binary.BigEndian.PutUint32(k[10:14], period)

	return k
}

// KeyOf returns the key under which e is stored.
func KeyOf(e *flat.Event) Key {
	return NewKey(e.RunNumber(), e.OrbitNumber(), e.BunchCrossNumber(), e.PeriodNumber())
}

// ParseKey decodes a key from its byte form.
func ParseKey(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: %d bytes, want %d", errs.ErrInvalidKey, len(b), KeySize)
	}
	copy(k[:], b)

	return k, nil
}

func (k Key) Run() int32            { return int32(binary.BigEndian.Uint32(k[0:4]) ^ 0x8000_0000) } //nolint:gosec
func (k Key) Orbit() uint32         { return binary.BigEndian.Uint32(k[4:8]) }
func (k Key) BunchCrossing() uint16 { return binary.BigEndian.Uint16(k[8:10]) }
func (k Key) Period() uint32        { return binary.BigEndian.Uint32(k[10:14]) }

// String formats the key as run/period/orbit/bc.
func (k Key) String() string {
	return fmt.Sprintf("%d/%d/%d/%d", k.Run(), k.Period(), k.Orbit(), k.BunchCrossing())
}

func runPrefix(run int32) []byte {
	var p [4]byte
	binary.BigEndian.PutUint32(p[:], uint32(run)^0x8000_0000) //nolint:gosec

	return p[:]
}
