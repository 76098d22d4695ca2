package utils

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		want   Vec2
		wantOK bool
	}{
		{"零向量", Zero, Zero, false},
		{"轴向", NewVec2(0, 5), NewVec2(0, 1), true},
		{"3-4-5", NewVec2(3, 4), NewVec2(0.6, 0.8), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Normalize()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(4, 6)

	if got := a.Add(b); got != NewVec2(5, 8) {
		t.Errorf("Add = %+v", got)
	}
	if got := b.Sub(a); got != NewVec2(3, 4) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(3); got != NewVec2(3, 6) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %f, want 5", got)
	}
	if !Zero.IsZero() || a.IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 10)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-10) > 1e-9 {
		t.Errorf("FromAngle(π/2, 10) = %+v, want (0, 10)", v)
	}
	if math.Abs(v.Length()-10) > 1e-9 {
		t.Errorf("length = %f, want 10", v.Length())
	}
}
