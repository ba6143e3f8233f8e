// Package endian provides byte order utilities for subelement encoding.
//
// This package combines the ByteOrder and AppendByteOrder interfaces of
// encoding/binary into a single EndianEngine interface, so encoders can both
// patch fixed offsets and append to a growing buffer through one value.
//
// # Basic Usage
//
// Every multi-byte field of an 802.11 location subelement is little-endian.
// Encoders should obtain the engine through WireEngine:
//
//	engine := endian.WireEngine()
//	buf = engine.AppendUint16(buf, uint16(floor))
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// WireEngine returns the byte order used by location subelements on the wire.
func WireEngine() EndianEngine {
	return binary.LittleEndian
}

// AppendInt16 appends v as a two's complement 16-bit integer.
func AppendInt16(engine EndianEngine, buf []byte, v int16) []byte {
	return engine.AppendUint16(buf, uint16(v)) //nolint:gosec
}
