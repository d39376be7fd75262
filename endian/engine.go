// Package endian provides byte order engines for the binary framing layers.
//
// CoAP headers and option extensions are written in network byte order, so the coap
// package uses GetNetworkEngine:
//
//	engine := endian.GetNetworkEngine()
//	buf = engine.AppendUint16(buf, messageID)
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary, so one
// value can both read fixed offsets and append to a growing buffer.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNetworkEngine returns the engine for network byte order (big-endian).
func GetNetworkEngine() EndianEngine {
	return GetBigEndianEngine()
}
