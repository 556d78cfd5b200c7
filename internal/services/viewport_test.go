package services

import (
	"testing"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
)

func TestShouldCluster(t *testing.T) {
	cfg := domain.DefaultConfig() // zoom range [10, 16]

	cases := []struct {
		zoom float64
		want bool
	}{
		{9.9, false},
		{10, true}, // bounds inclusive
		{12.5, true},
		{16, true},
		{16.1, false},
		{0, false},
	}

	for _, c := range cases {
		if got := ShouldCluster(c.zoom, cfg); got != c.want {
			t.Errorf("ShouldCluster(%v) = %v, want %v", c.zoom, got, c.want)
		}
	}
}
