package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangularWeights(t *testing.T) {
	t.Run("odd window", func(t *testing.T) {
		assert.InDeltaSlice(t, []float64{1.0 / 3, 2.0 / 3, 1, 2.0 / 3, 1.0 / 3}, TriangularWeights(5), 1e-12)
	})

	t.Run("even window", func(t *testing.T) {
		assert.InDeltaSlice(t, []float64{0.25, 0.75, 0.75, 0.25}, TriangularWeights(4), 1e-12)
	})

	t.Run("degenerate windows", func(t *testing.T) {
		assert.Equal(t, []float64{1}, TriangularWeights(1))
		assert.Equal(t, []float64{0.5, 0.5}, TriangularWeights(2))
		assert.Nil(t, TriangularWeights(0))
	})

	t.Run("symmetric", func(t *testing.T) {
		w := TriangularWeights(365)
		assert.Len(t, w, 365)
		for i := range w {
			assert.Equal(t, w[i], w[len(w)-1-i])
		}
	})
}
