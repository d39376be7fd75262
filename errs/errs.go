// Package errs defines the sentinel errors and error codes shared by all coapenc packages.
//
// Callers match errors with errors.Is. Functions wrap these sentinels with
// fmt.Errorf("%w: ...") to add context, so the sentinel is always reachable.
package errs

import "errors"

// Staging errors.
var (
	// ErrKeyTooLong indicates a key does not fit the key staging buffer with its terminator.
	ErrKeyTooLong = errors.New("key too long for staging buffer")
	// ErrValueTooLong indicates a value does not fit the value staging buffer with its terminator.
	ErrValueTooLong = errors.New("value too long for staging buffer")
)

// Encoder errors.
var (
	// ErrUnknownEncoder indicates a (name, suffix) pair that names no known encoder.
	ErrUnknownEncoder = errors.New("unknown encoder")
	// ErrEncodeFailed indicates a native encode primitive returned a non-zero status.
	ErrEncodeFailed = errors.New("encode failed")
	// ErrValueNotUint indicates a non-unsigned value was given where an unsigned integer is required.
	ErrValueNotUint = errors.New("value is not an unsigned integer")
	// ErrUnclosedContainer indicates a payload was finished while a map or array was still open.
	ErrUnclosedContainer = errors.New("unclosed container")
	// ErrInvalidPayloadCapacity indicates a payload capacity outside the accepted range.
	ErrInvalidPayloadCapacity = errors.New("invalid payload capacity")
)

// Payload errors.
var (
	// ErrDuplicateKey indicates a key written twice into the same map.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrMalformedPayload indicates bytes that are not a single well-formed CBOR item.
	ErrMalformedPayload = errors.New("malformed payload")
)

// Message errors.
var (
	// ErrTokenTooLong indicates a CoAP token longer than 8 bytes.
	ErrTokenTooLong = errors.New("coap token too long")
	// ErrEmptyBatch indicates an attempt to seal a batch without payloads.
	ErrEmptyBatch = errors.New("empty batch")
	// ErrInvalidOption indicates an option value the target does not accept.
	ErrInvalidOption = errors.New("invalid option")
)
