package services

import (
	"math"
	"testing"
)

func TestPredictSalary(t *testing.T) {
	tests := []struct {
		from, to float64
		want     float64
		ok       bool
	}{
		{0, 0, 0, false},
		{100, 0, 120, true},
		{0, 100, 80, true},
		{100, 200, 150, true},
		{-5, 0, 0, false},
		{100000, 150000, 125000, true},
	}

	for _, tt := range tests {
		got, ok := PredictSalary(tt.from, tt.to)
		if ok != tt.ok {
			t.Errorf("PredictSalary(%v, %v) ok = %v; want %v", tt.from, tt.to, ok, tt.ok)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PredictSalary(%v, %v) = %v; want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
