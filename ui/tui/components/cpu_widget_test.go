package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPUWidgetKeepsCapacity(t *testing.T) {
	w := NewCPUWidget(30, 8, 3)
	for _, v := range []float64{10, 20, 30, 40} {
		w.Push(v)
	}
	assert.Equal(t, []float64{20, 30, 40}, w.History)
	assert.NotEmpty(t, w.View())
}

func TestCPUWidgetResize(t *testing.T) {
	w := NewCPUWidget(30, 8, 1)
	assert.Equal(t, 2, w.Capacity)

	w.Resize(5, 8)
	assert.Equal(t, 30, w.Width)
	w.Resize(60, 10)
	assert.Equal(t, 60, w.Width)
	assert.Equal(t, 10, w.Height)
}
