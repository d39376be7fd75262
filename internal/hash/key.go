// Package hash provides the xxHash64 keys used by the encoder registry.
package hash

import "github.com/cespare/xxhash/v2"

// EncoderKey computes the xxHash64 of an encoder's (name, suffix) pair.
//
// A zero byte separates the two parts, so ("roo", "t_map") and ("root", "_map")
// hash differently.
func EncoderKey(name, suffix string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(name)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(suffix)

	return d.Sum64()
}

// Key computes the xxHash64 of a payload key.
func Key(key string) uint64 {
	return xxhash.Sum64String(key)
}
