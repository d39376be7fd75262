// Package tinycbor provides the status-returning CBOR encode primitives used by the
// encoding context.
//
// A Stream is a bounded payload buffer. Encoders write items into one container of
// the stream and report a numeric Status for every call; StatusOK is zero. Maps and
// arrays are written with indefinite length, so a container can be filled from
// scattered call sites without knowing its size up front.
//
// Basic usage:
//
//	s, _ := tinycbor.NewStream(tinycbor.DefaultCapacity)
//	defer s.Release()
//
//	var top, root tinycbor.Encoder
//	top.Init(s)
//	_ = top.CreateMap(&root)
//	_ = root.EncodeTextString(key, key.Len())
//	_ = root.EncodeUint(2870)
//	_ = top.CloseContainer(&root)
//
// Text strings are passed as bytestr.CStr. A CStr taken from a staging buffer that
// has been restaged since is refused with StatusStaleString.
package tinycbor
