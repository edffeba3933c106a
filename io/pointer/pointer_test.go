// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		res  string
	}{
		{Cancel, "Cancel"},
		{Press, "Press"},
		{Release, "Release"},
		{Move, "Move"},
		{Enter, "Enter"},
		{Leave, "Leave"},
		{Scroll, "Scroll"},
		{Enter | Leave, "Enter|Leave"},
		{Press | Release, "Press|Release"},
		{Move | Scroll, "Move|Scroll"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.kind.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestSourceString(t *testing.T) {
	for _, tc := range []struct {
		src Source
		res string
	}{
		{Mouse, "Mouse"},
		{Touch, "Touch"},
		{Pen, "Pen"},
	} {
		if want, got := tc.res, tc.src.String(); want != got {
			t.Errorf("got %q; want %q", got, want)
		}
	}
}

func TestButtonsContain(t *testing.T) {
	b := ButtonPrimary | ButtonTertiary
	if !b.Contain(ButtonPrimary) {
		t.Error("expected set to contain ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		t.Error("did not expect set to contain ButtonSecondary")
	}
	if want, got := "ButtonPrimary|ButtonTertiary", b.String(); want != got {
		t.Errorf("got %q; want %q", got, want)
	}
}
