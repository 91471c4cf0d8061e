// Package frame stores flat events back to back in a byte stream.
//
// Each frame is a fixed 24-byte little-endian header followed by the event
// bytes, optionally compressed:
//
//	Bytes  | Field        | Type
//	-------|--------------|-------
//	0-1    | Magic        | uint16, 0xEF20
//	2      | Version      | uint8
//	3      | Compression  | uint8, format.CompressionType
//	4-7    | RawSize      | uint32, flat event size
//	8-11   | PayloadSize  | uint32, bytes following the header
//	12-15  | Reserved     | uint32, must be 0
//	16-23  | Checksum     | uint64, xxHash64 of the raw event bytes
//
// The checksum covers the uncompressed event, so it also catches codec bugs.
// Frames are independent: a reader can stop at any frame boundary.
package frame
