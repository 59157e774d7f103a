package world

import "fmt"

// Device identifies a ship system tracked by the damage model. Index 0 is unused.
type Device uint8

const (
	DeviceNone Device = iota
	WarpEngines
	ShortRangeSensors
	LongRangeSensors
	PhaserControl
	PhotonTubes
	DamageControl
	ShieldControl
	LibraryComputer
	DeviceCount // sentinel
)

var deviceNames = [DeviceCount]string{
	"",
	"Warp Engines",
	"Short Range Sensors",
	"Long Range Sensors",
	"Phaser Control",
	"Photon Tubes",
	"Damage Control",
	"Shield Control",
	"Library-Computer",
}

// Name returns the display name of a device.
func (d Device) Name() string {
	if d == DeviceNone || d >= DeviceCount {
		return "Unknown"
	}
	return deviceNames[d]
}

func (d Device) String() string { return d.Name() }

// Devices lists every real device in index order.
func Devices() []Device {
	out := make([]Device, 0, DeviceCount-1)
	for d := WarpEngines; d < DeviceCount; d++ {
		out = append(out, d)
	}
	return out
}

// DamageVector holds per-device damage. A value >= 0 means operational,
// a negative value means damaged by that magnitude.
type DamageVector [DeviceCount]float64

// Operational reports whether d is usable.
func (v *DamageVector) Operational(d Device) bool {
	return v[d] >= 0
}

// Damage worsens d by amount (amount is a positive magnitude).
func (v *DamageVector) Damage(d Device, amount float64) {
	if d == DeviceNone || d >= DeviceCount {
		return
	}
	v[d] -= amount
}

// RepairAll resets every damaged device to 0. Undamaged entries are untouched.
// Returns how many devices were repaired.
func (v *DamageVector) RepairAll() int {
	n := 0
	for d := WarpEngines; d < DeviceCount; d++ {
		if v[d] < 0 {
			v[d] = 0
			n++
		}
	}
	return n
}

// Status returns "OK" or the damage magnitude for d.
func (v *DamageVector) Status(d Device) string {
	if v.Operational(d) {
		return "OK"
	}
	return fmt.Sprintf("DMG:%.1f", v[d])
}
