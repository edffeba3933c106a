// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostbridge/f32"
	"hostbridge/io/pointer"
)

func TestTouchSample(t *testing.T) {
	s := TouchSample(RawTouch{
		RawInfo: RawInfo{
			ID:       5,
			Position: f32.Pt(200, 100),
			Flags:    FlagInContact | FlagFirstButton,
		},
		HasContact:  true,
		Contact:     f32.Rect(190, 90, 210, 110),
		HasPressure: true,
		Pressure:    512,
	}, 1024)

	assert.Equal(t, pointer.Touch, s.Source)
	assert.Equal(t, float32(0.5), s.Pressure)
	assert.Equal(t, f32.Rect(190, 90, 210, 110), s.Contact)
	assert.Equal(t, pointer.ButtonPrimary, s.Buttons)
	// Pen fields stay absent on a touch sample.
	assert.Zero(t, s.TiltX)
	assert.Zero(t, s.TiltY)
	assert.Zero(t, s.Rotation)
}

func TestTouchSampleMissingFields(t *testing.T) {
	s := TouchSample(RawTouch{
		RawInfo: RawInfo{ID: 5, Position: f32.Pt(1, 2)},
	}, 1024)
	assert.Zero(t, s.Pressure)
	assert.True(t, s.Contact.Empty())
}

func TestPenSample(t *testing.T) {
	s := PenSample(RawPen{
		RawInfo: RawInfo{
			ID:       9,
			Position: f32.Pt(50, 60),
			Flags:    FlagFirstButton | FlagSecondButton,
		},
		HasPressure: true,
		Pressure:    1024,
		HasTilt:     true,
		TiltX:       -15,
		TiltY:       30,
		HasRotation: true,
		Rotation:    270,
	}, 1024)

	assert.Equal(t, pointer.Pen, s.Source)
	assert.Equal(t, float32(1), s.Pressure)
	assert.Equal(t, int32(-15), s.TiltX)
	assert.Equal(t, int32(30), s.TiltY)
	assert.Equal(t, uint32(270), s.Rotation)
	assert.Equal(t, pointer.ButtonPrimary|pointer.ButtonSecondary, s.Buttons)
	// Touch fields stay absent on a pen sample.
	assert.True(t, s.Contact.Empty())
}

func TestPenSamplePressureClamped(t *testing.T) {
	s := PenSample(RawPen{
		RawInfo:     RawInfo{ID: 1},
		HasPressure: true,
		Pressure:    4096,
	}, 1024)
	assert.Equal(t, float32(1), s.Pressure)
}

func TestMouseSample(t *testing.T) {
	s := MouseSample(RawInfo{
		ID:       2,
		Position: f32.Pt(7, 8),
		Flags:    FlagThirdButton,
	})
	assert.Equal(t, pointer.Mouse, s.Source)
	assert.Equal(t, pointer.ButtonTertiary, s.Buttons)
	// Mouse samples carry no touch or pen metadata.
	assert.Zero(t, s.Pressure)
	assert.True(t, s.Contact.Empty())
	assert.Zero(t, s.TiltX)
	assert.Zero(t, s.Rotation)
}

func TestButtonsFromFlags(t *testing.T) {
	for _, tc := range []struct {
		flags uint32
		want  pointer.Buttons
	}{
		{0, 0},
		{FlagFirstButton, pointer.ButtonPrimary},
		{FlagSecondButton, pointer.ButtonSecondary},
		{FlagFourthButton | FlagFifthButton, pointer.ButtonQuaternary | pointer.ButtonQuinary},
		{FlagInContact, 0},
	} {
		assert.Equal(t, tc.want, buttonsFromFlags(tc.flags), "flags %#x", tc.flags)
	}
}
