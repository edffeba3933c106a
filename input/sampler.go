// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"hostbridge/f32"
	"hostbridge/io/pointer"
)

// Raw pointer state bits, matching the platform pointer flag layout.
const (
	FlagInContact    = 0x00000004
	FlagFirstButton  = 0x00000010
	FlagSecondButton = 0x00000020
	FlagThirdButton  = 0x00000040
	FlagFourthButton = 0x00000080
	FlagFifthButton  = 0x00000100
	FlagDown         = 0x00010000
	FlagUpdate       = 0x00020000
	FlagUp           = 0x00040000
)

// RawInfo is the kind-independent part of a platform pointer record.
type RawInfo struct {
	ID       uint32
	Position f32.Point
	Flags    uint32
	Time     time.Duration
}

// RawTouch is a platform touch record before normalization. The Has
// fields mirror the platform's validity mask: absent fields stay
// zero in the resulting sample.
type RawTouch struct {
	RawInfo
	HasContact  bool
	Contact     f32.Rectangle
	HasPressure bool
	Pressure    uint32
}

// RawPen is a platform pen record before normalization.
type RawPen struct {
	RawInfo
	HasPressure bool
	Pressure    uint32
	HasTilt     bool
	TiltX       int32
	TiltY       int32
	HasRotation bool
	Rotation    uint32
}

// TouchSample normalizes a raw touch record. pressureMax is the
// platform's documented maximum pressure value.
func TouchSample(raw RawTouch, pressureMax uint32) pointer.Sample {
	s := pointer.Sample{
		ID:       raw.ID,
		Source:   pointer.Touch,
		Position: raw.Position,
		Buttons:  buttonsFromFlags(raw.Flags),
		Time:     raw.Time,
	}
	if raw.HasPressure && pressureMax > 0 {
		s.Pressure = clamp01(float32(raw.Pressure) / float32(pressureMax))
	}
	if raw.HasContact {
		s.Contact = raw.Contact
	}
	return s
}

// PenSample normalizes a raw pen record. Tilt is reported in degrees
// with 0 meaning perpendicular to the surface.
func PenSample(raw RawPen, pressureMax uint32) pointer.Sample {
	s := pointer.Sample{
		ID:       raw.ID,
		Source:   pointer.Pen,
		Position: raw.Position,
		Buttons:  buttonsFromFlags(raw.Flags),
		Time:     raw.Time,
	}
	if raw.HasPressure && pressureMax > 0 {
		s.Pressure = clamp01(float32(raw.Pressure) / float32(pressureMax))
	}
	if raw.HasTilt {
		s.TiltX, s.TiltY = raw.TiltX, raw.TiltY
	}
	if raw.HasRotation {
		s.Rotation = raw.Rotation
	}
	return s
}

// MouseSample converts a generic pointer record. Mouse samples carry
// no pressure, footprint or tilt.
func MouseSample(raw RawInfo) pointer.Sample {
	return pointer.Sample{
		ID:       raw.ID,
		Source:   pointer.Mouse,
		Position: raw.Position,
		Buttons:  buttonsFromFlags(raw.Flags),
		Time:     raw.Time,
	}
}

func buttonsFromFlags(flags uint32) pointer.Buttons {
	var b pointer.Buttons
	if flags&FlagFirstButton != 0 {
		b |= pointer.ButtonPrimary
	}
	if flags&FlagSecondButton != 0 {
		b |= pointer.ButtonSecondary
	}
	if flags&FlagThirdButton != 0 {
		b |= pointer.ButtonTertiary
	}
	if flags&FlagFourthButton != 0 {
		b |= pointer.ButtonQuaternary
	}
	if flags&FlagFifthButton != 0 {
		b |= pointer.ButtonQuinary
	}
	return b
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
