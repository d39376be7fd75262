// Package format defines the wire-level identifiers shared by the payload, CoAP and
// batch layers.
package format

type (
	ContentFormat   uint16
	CompressionType uint8
)

// CoAP Content-Format registry values (RFC 7252 §12.3, RFC 8949 §9.5).
const (
	ContentTextPlain   ContentFormat = 0  // ContentTextPlain is text/plain;charset=utf-8.
	ContentLinkFormat  ContentFormat = 40 // ContentLinkFormat is application/link-format.
	ContentOctetStream ContentFormat = 42 // ContentOctetStream is application/octet-stream.
	ContentJSON        ContentFormat = 50 // ContentJSON is application/json.
	ContentCBOR        ContentFormat = 60 // ContentCBOR is application/cbor.
	ContentCBORSeq     ContentFormat = 63 // ContentCBORSeq is application/cbor-seq.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c ContentFormat) String() string {
	switch c {
	case ContentTextPlain:
		return "text/plain"
	case ContentLinkFormat:
		return "application/link-format"
	case ContentOctetStream:
		return "application/octet-stream"
	case ContentJSON:
		return "application/json"
	case ContentCBOR:
		return "application/cbor"
	case ContentCBORSeq:
		return "application/cbor-seq"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression returns the compression type named by s, as printed by String.
// Matching is exact; the second result is false for unknown names.
func ParseCompression(s string) (CompressionType, bool) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		if c.String() == s {
			return c, true
		}
	}

	return 0, false
}
