// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, 20).Add(Pt(5, -5))
	if want := Pt(15, 15); p != want {
		t.Errorf("got %v; want %v", p, want)
	}
	if want := Pt(5, 25); p.Sub(Pt(10, -10)) != want {
		t.Errorf("got %v; want %v", p.Sub(Pt(10, -10)), want)
	}
	if want := Pt(30, 30); p.Mul(2) != want {
		t.Errorf("got %v; want %v", p.Mul(2), want)
	}
	if want := Pt(7.5, 7.5); p.Div(2) != want {
		t.Errorf("got %v; want %v", p.Div(2), want)
	}
}

func TestRectNormalizes(t *testing.T) {
	r := Rect(10, 20, 0, 0)
	if r.Min.X != 0 || r.Min.Y != 0 || r.Max.X != 10 || r.Max.Y != 20 {
		t.Errorf("unexpected rect %v", r)
	}
	if want := Pt(10, 20); r.Size() != want {
		t.Errorf("got %v; want %v", r.Size(), want)
	}
	if r.Empty() {
		t.Error("non-degenerate rect reported empty")
	}
	if !(Rectangle{}).Empty() {
		t.Error("zero rect not empty")
	}
}
