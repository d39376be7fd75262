// Package compress provides the codecs used to shrink collector batches before they
// are forwarded upstream.
//
// A batch is a CBOR sequence of small sensor payloads. Keys repeat in every payload,
// so general-purpose compression works well on it:
//   - None: no compression
//   - Zstd: best ratio
//   - S2: fast with a good ratio
//   - LZ4: fastest decompression
//
// Codecs are created by type:
//
//	codec, err := compress.CreateCodec(format.CompressionS2, "batch")
//	if err != nil {
//	    return err
//	}
//	packed, stats, err := compress.Run(codec, format.CompressionS2, seq)
//
// Zstd uses github.com/klauspost/compress by default. Building with
// "-tags gozstd" and cgo enabled switches to the libzstd bindings in
// github.com/valyala/gozstd.
//
// All codecs are safe for concurrent use.
package compress
