package coap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/format"
)

func TestMarshal_SensorPost(t *testing.T) {
	m := &Message{
		Type:      Confirmable,
		Code:      POST,
		MessageID: 0x1234,
		Token:     []byte{0xAB},
		Payload:   []byte{0xbf, 0xff},
	}
	m.SetContentFormat(format.ContentCBOR)
	m.SetPath("/temp")

	got, err := m.Marshal()
	require.NoError(t, err)

	want := []byte{
		0x41, 0x02, 0x12, 0x34, 0xAB,
		0xB4, 't', 'e', 'm', 'p', // Uri-Path, delta 11
		0x11, 0x3C, // Content-Format, delta 1, 60
		0xFF, 0xbf, 0xff,
	}
	require.Equal(t, want, got)
}

func TestMarshal_HeaderOnly(t *testing.T) {
	m := &Message{Type: Acknowledgement, Code: Empty, MessageID: 7}

	got, err := m.Marshal()
	require.NoError(t, err)
	require.Equal(t, []byte{0x60, 0x00, 0x00, 0x07}, got)
}

func TestMarshal_ExtendedLength(t *testing.T) {
	seg := bytes.Repeat([]byte{'a'}, 20)
	m := &Message{Type: NonConfirmable, Code: GET}
	m.AddOption(URIPath, seg)

	got, err := m.Marshal()
	require.NoError(t, err)
	require.Equal(t, []byte{0x50, 0x01, 0x00, 0x00, 0xBD, 0x07}, got[:6])
	require.Equal(t, seg, got[6:])
}

func TestMarshal_ExtendedDeltaAndLength16(t *testing.T) {
	value := bytes.Repeat([]byte{'x'}, 300)
	m := &Message{Code: POST}
	m.AddUintOption(Size1, 300)
	m.AddOption(OptionID(400), value)

	got, err := m.Marshal()
	require.NoError(t, err)

	// Size1 (60): delta 60 = 13 + 47, length 2
	require.Equal(t, []byte{0xD2, 47, 0x01, 0x2C}, got[4:8])
	// option 400: delta 340 = 269 + 71, length 300 = 269 + 31
	require.Equal(t, []byte{0xEE, 0x00, 71, 0x00, 31}, got[8:13])
	require.Equal(t, value, got[13:])
}

func TestMarshal_SortsOptionsStably(t *testing.T) {
	m := &Message{Code: POST}
	m.AddUintOption(ContentFormat, uint32(format.ContentCBOR))
	m.AddOption(URIPath, []byte("v2"))
	m.AddOption(URIPath, []byte("things"))

	got, err := m.Marshal()
	require.NoError(t, err)

	want := []byte{
		0x40, 0x02, 0x00, 0x00,
		0xB2, 'v', '2',
		0x06, 't', 'h', 'i', 'n', 'g', 's',
		0x11, 0x3C,
	}
	require.Equal(t, want, got)
	require.Equal(t, ContentFormat, m.Options[0].ID, "Marshal must not reorder the message")
}

func TestMarshal_Errors(t *testing.T) {
	_, err := (&Message{Token: make([]byte, 9)}).Marshal()
	require.ErrorIs(t, err, errs.ErrTokenTooLong)

	_, err = (&Message{Type: Type(4)}).Marshal()
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	m := &Message{}
	m.AddOption(URIPath, make([]byte, maxExt+1))
	_, err = m.Marshal()
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestPath(t *testing.T) {
	m := &Message{}
	m.SetPath("v2/things/abc")
	require.Equal(t, "v2/things/abc", m.Path())

	m.SetPath("//x//")
	require.Equal(t, "x", m.Path())
	require.Len(t, m.Options, 1)
}

func TestAddUintOption(t *testing.T) {
	m := &Message{}
	m.AddUintOption(ContentFormat, 0)
	m.AddUintOption(Accept, 0x1234)

	require.Empty(t, m.Options[0].Value)
	require.Equal(t, []byte{0x12, 0x34}, m.Options[1].Value)
}

func TestStrings(t *testing.T) {
	require.Equal(t, "0.02", POST.String())
	require.Equal(t, "2.05", Code(0x45).String())
	require.Equal(t, "CON", Confirmable.String())
	require.Equal(t, "Type(9)", Type(9).String())
}
