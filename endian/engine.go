// Package endian selects the byte order used to encode a flat event buffer.
//
// A flat event records its byte order in bit 0 of the header flag byte. Every
// multi-byte field after the magic number is written with the engine chosen
// here, so a buffer produced on one host can be decoded on any other:
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint32(buf[4:8], contentSize)
//
// Little endian is the default and matches the in-memory layout on x86/x64/ARM,
// which is what makes a shared-memory hand-off a plain copy.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the byte order of the running host.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNative reports whether engine matches the host byte order.
func IsNative(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForFlag returns the engine for the header byte-order bit.
func ForFlag(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// PutFloat64 writes v to b[0:8] using engine.
func PutFloat64(engine EndianEngine, b []byte, v float64) {
	engine.PutUint64(b, math.Float64bits(v))
}

// Float64 reads a float64 from b[0:8] using engine.
func Float64(engine EndianEngine, b []byte) float64 {
	return math.Float64frombits(engine.Uint64(b))
}

// PutFloat32 writes v to b[0:4] using engine.
func PutFloat32(engine EndianEngine, b []byte, v float32) {
	engine.PutUint32(b, math.Float32bits(v))
}

// Float32 reads a float32 from b[0:4] using engine.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}
