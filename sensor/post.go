package sensor

import (
	"github.com/arloliu/coapenc/coap"
	"github.com/arloliu/coapenc/format"
)

// NewPost wraps a composed payload in a confirmable CoAP POST to path with
// Content-Format application/cbor. The caller sets MessageID and Token.
func NewPost(path string, payload []byte) *coap.Message {
	m := &coap.Message{
		Type:    coap.Confirmable,
		Code:    coap.POST,
		Payload: payload,
	}
	m.SetPath(path)
	m.SetContentFormat(format.ContentCBOR)

	return m
}
