// SPDX-License-Identifier: Unlicense OR MIT

package key

import "testing"

func TestModifiersContain(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Contain(ModShift) {
		t.Error("expected set to contain ModShift")
	}
	if m.Contain(ModAlt) {
		t.Error("did not expect set to contain ModAlt")
	}
	if want, got := "ModCtrl|ModShift", m.String(); want != got {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestIMEStateString(t *testing.T) {
	for _, tc := range []struct {
		state IMEState
		res   string
	}{
		{IMEStart, "IMEStart"},
		{IMEUpdate, "IMEUpdate"},
		{IMEEnd, "IMEEnd"},
	} {
		if want, got := tc.res, tc.state.String(); want != got {
			t.Errorf("got %q; want %q", got, want)
		}
	}
}
