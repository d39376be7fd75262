// Package sensor composes CBOR sensor payloads and prepares them for transport.
//
// A Composer writes readings through an encoding.CoapContext in one of two layouts:
//
//	LayoutFlat:   {"t": 2870}
//	LayoutThings: {"values": [{"key": "t", "value": 2870}]}
//
// The raw temperature key "t" must carry an unsigned value. NewPost frames a payload
// as a CoAP POST, and a Batch lets a collector node forward many payloads in one
// compressed CBOR sequence.
//
//	c, _ := sensor.NewComposer(sensor.WithLayout(sensor.LayoutThings))
//	defer c.Close()
//
//	payload, err := c.Compose(sensor.NewReading("t", sensor.Uint(2870)))
//	if err != nil {
//	    return err
//	}
//	msg := sensor.NewPost("v2/things/abc", payload)
//	msg.MessageID = nextID()
//	frame, err := msg.Marshal()
package sensor
