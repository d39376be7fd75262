// Package coap serializes CoAP request messages (RFC 7252) that carry sensor
// payloads.
package coap

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/coapenc/endian"
	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/format"
	"github.com/arloliu/coapenc/internal/pool"
)

const (
	version        = 1
	maxTokenLength = 8
	payloadMarker  = 0xFF

	// option delta and length nibble extensions
	ext8      = 13
	ext16     = 14
	ext8Base  = 13
	ext16Base = 269
	maxExt    = ext16Base + 0xFFFF
)

// Type is the CoAP message type.
type Type uint8

const (
	Confirmable     Type = 0
	NonConfirmable  Type = 1
	Acknowledgement Type = 2
	Reset           Type = 3
)

func (t Type) String() string {
	switch t {
	case Confirmable:
		return "CON"
	case NonConfirmable:
		return "NON"
	case Acknowledgement:
		return "ACK"
	case Reset:
		return "RST"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Code is the CoAP method or response code, class in the top 3 bits.
type Code uint8

const (
	Empty  Code = 0x00
	GET    Code = 0x01
	POST   Code = 0x02
	PUT    Code = 0x03
	DELETE Code = 0x04
)

// String renders the code as class.detail, e.g. "0.02".
func (c Code) String() string {
	return fmt.Sprintf("%d.%02d", c>>5, c&0x1F)
}

// OptionID is a CoAP option number.
type OptionID uint16

const (
	URIHost       OptionID = 3
	URIPort       OptionID = 7
	URIPath       OptionID = 11
	ContentFormat OptionID = 12
	URIQuery      OptionID = 15
	Accept        OptionID = 17
	Size1         OptionID = 60
)

// Option is one CoAP option. Value holds the encoded option value.
type Option struct {
	ID    OptionID
	Value []byte
}

// Message is a CoAP message ready to be serialized.
type Message struct {
	Type      Type
	Code      Code
	MessageID uint16
	Token     []byte
	Options   []Option
	Payload   []byte
}

// AddOption appends an option. Options may be added in any order; Marshal sorts
// them by number and keeps the order of repeated options.
func (m *Message) AddOption(id OptionID, value []byte) {
	m.Options = append(m.Options, Option{ID: id, Value: value})
}

// AddUintOption appends an option holding v in the shortest big-endian form.
// Zero is encoded as an empty value.
func (m *Message) AddUintOption(id OptionID, v uint32) {
	var b []byte
	for v > 0 {
		b = append([]byte{byte(v)}, b...)
		v >>= 8
	}
	m.AddOption(id, b)
}

// SetPath replaces the Uri-Path options with one option per segment of path.
// Empty segments are skipped.
func (m *Message) SetPath(path string) {
	m.Options = slices.DeleteFunc(m.Options, func(o Option) bool { return o.ID == URIPath })
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			m.AddOption(URIPath, []byte(seg))
		}
	}
}

// Path joins the Uri-Path options with "/".
func (m *Message) Path() string {
	var segs []string
	for _, o := range m.Options {
		if o.ID == URIPath {
			segs = append(segs, string(o.Value))
		}
	}

	return strings.Join(segs, "/")
}

// SetContentFormat replaces the Content-Format option.
func (m *Message) SetContentFormat(cf format.ContentFormat) {
	m.Options = slices.DeleteFunc(m.Options, func(o Option) bool { return o.ID == ContentFormat })
	m.AddUintOption(ContentFormat, uint32(cf))
}

// Marshal serializes the message.
//
// Returns errs.ErrTokenTooLong for a token over 8 bytes and errs.ErrInvalidOption
// for an unknown type or an option that does not fit the option encoding.
func (m *Message) Marshal() ([]byte, error) {
	if len(m.Token) > maxTokenLength {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrTokenTooLong, len(m.Token))
	}
	if m.Type > Reset {
		return nil, fmt.Errorf("%w: message type %d", errs.ErrInvalidOption, uint8(m.Type))
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	engine := endian.GetNetworkEngine()

	buf.MustWriteByte(version<<6 | byte(m.Type)<<4 | byte(len(m.Token)))
	buf.MustWriteByte(byte(m.Code))
	buf.B = engine.AppendUint16(buf.B, m.MessageID)
	buf.MustWrite(m.Token)

	opts := slices.Clone(m.Options)
	slices.SortStableFunc(opts, func(a, b Option) int { return int(a.ID) - int(b.ID) })

	var prev OptionID
	for _, o := range opts {
		if len(o.Value) > maxExt {
			return nil, fmt.Errorf("%w: option %d value of %d bytes", errs.ErrInvalidOption, o.ID, len(o.Value))
		}
		delta := int(o.ID - prev)
		dn, dext := nibble(delta)
		ln, lext := nibble(len(o.Value))

		buf.MustWriteByte(dn<<4 | ln)
		buf.B = appendExt(buf.B, engine, dn, dext)
		buf.B = appendExt(buf.B, engine, ln, lext)
		buf.MustWrite(o.Value)
		prev = o.ID
	}

	if len(m.Payload) > 0 {
		buf.MustWriteByte(payloadMarker)
		buf.MustWrite(m.Payload)
	}

	return bytes.Clone(buf.Bytes()), nil
}

func nibble(v int) (byte, int) {
	switch {
	case v < ext8Base:
		return byte(v), 0
	case v < ext16Base:
		return ext8, v - ext8Base
	default:
		return ext16, v - ext16Base
	}
}

func appendExt(b []byte, engine endian.EndianEngine, n byte, ext int) []byte {
	switch n {
	case ext8:
		return append(b, byte(ext))
	case ext16:
		return engine.AppendUint16(b, uint16(ext))
	default:
		return b
	}
}
