package utils

import (
	"math"
	"testing"
)

func TestStringPtr(t *testing.T) {
	if got := StringPtr(""); got != nil {
		t.Errorf("StringPtr(\"\") = %v, want nil", got)
	}

	got := StringPtr("https://cdn.exemplo.com/foto.png")
	if got == nil || *got != "https://cdn.exemplo.com/foto.png" {
		t.Errorf("StringPtr devolveu %v", got)
	}
}

func TestPtr(t *testing.T) {
	v := Ptr(60.5)
	if v == nil || *v != 60.5 {
		t.Errorf("Ptr(60.5) = %v", v)
	}

	n := Ptr(30)
	if n == nil || *n != 30 {
		t.Errorf("Ptr(30) = %v", n)
	}
}

func TestCalculateGrowth(t *testing.T) {
	tests := []struct {
		name             string
		today, yesterday float64
		want             float64
	}{
		{"crescimento", 150, 100, 50},
		{"queda", 50, 100, -50},
		{"sem base ontem", 80, 0, 100},
		{"dois dias zerados", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateGrowth(tt.today, tt.yesterday); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateGrowth(%v, %v) = %v, want %v", tt.today, tt.yesterday, got, tt.want)
			}
		})
	}
}
