package sensor

import (
	"fmt"
	"net"
)

// MaxAccessPoints is the number of access points sent for geolocation.
const MaxAccessPoints = 3

// AccessPoint is one scanned WiFi access point.
type AccessPoint struct {
	BSSID net.HardwareAddr
	RSSI  int
}

// AccessPointReadings returns ssidN and rssiN readings for the first
// MaxAccessPoints access points. MAC addresses are written as
// "xx:xx:xx:xx:xx:xx" and signal strengths as floats.
func AccessPointReadings(aps []AccessPoint) []Reading {
	aps = aps[:min(len(aps), MaxAccessPoints)]

	readings := make([]Reading, 0, 2*len(aps))
	for i, ap := range aps {
		readings = append(readings,
			NewReading(fmt.Sprintf("ssid%d", i), Text(ap.BSSID.String())),
			NewReading(fmt.Sprintf("rssi%d", i), Float(float64(ap.RSSI))),
		)
	}

	return readings
}

// ComposeAccessPoints composes a geolocation payload from the first
// MaxAccessPoints access points. With LayoutThings it reads:
//
//	{"values": [
//	  {"key": "ssid0", "value": "00:25:9c:cf:1c:ac"},
//	  {"key": "rssi0", "value": -43.0},
//	  ...
//	]}
func (c *Composer) ComposeAccessPoints(aps []AccessPoint) ([]byte, error) {
	return c.Compose(AccessPointReadings(aps)...)
}
