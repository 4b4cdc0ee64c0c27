package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3))
	assert.Equal(t, 1.0, Sign(0))
	assert.Equal(t, -1.0, Sign(-0.5))
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 5.0, ClampSpeed(9, 5))
	assert.Equal(t, -5.0, ClampSpeed(-9, 5))
	assert.Equal(t, 2.0, ClampSpeed(2, 5))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		bx, by, margin float64
		want           bool
	}{
		{"inside", 5, 5, 0, true},
		{"touching edge", 10, 0, 0, false},
		{"touching edge with margin", 10, 0, 1, true},
		{"apart", 20, 20, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(0, 0, 10, 10, tt.bx, tt.by, 10, 10, tt.margin))
		})
	}
}

func TestVec3(t *testing.T) {
	v := V2(3, 4)
	assert.Equal(t, 5.0, v.Length())
	n := v.Normalized()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.Equal(t, Vec3{}, Vec3{}.Normalized())
	assert.Equal(t, V2(4, 6), v.Add(V2(1, 2)))
	assert.Equal(t, V2(2, 2), v.Sub(V2(1, 2)))
	assert.Equal(t, Vec3{X: 6, Y: 8}, v.Scale(2))
}
