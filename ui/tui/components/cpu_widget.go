package components

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
)

// CPUWidget plots CPU usage from one refresh to the next.
type CPUWidget struct {
	Chart    linechart.Model
	History  []float64
	Capacity int
	Width    int
	Height   int
}

func NewCPUWidget(width, height, capacity int) *CPUWidget {
	if capacity < 2 {
		capacity = 2
	}
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 0, float64(capacity-1), 0, 100)
	return &CPUWidget{
		Chart:    lc,
		History:  make([]float64, 0, capacity),
		Capacity: capacity,
		Width:    width,
		Height:   height,
	}
}

func (c *CPUWidget) Push(value float64) {
	c.History = append(c.History, value)
	if len(c.History) > c.Capacity {
		c.History = c.History[len(c.History)-c.Capacity:]
	}
}

func (c *CPUWidget) Resize(w, h int) {
	if w < 10 || h < 3 {
		return
	}
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

func (c *CPUWidget) View() string {
	c.Chart.Clear()
	for i := 0; i < len(c.History)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.History[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.History[i+1]},
		)
	}
	c.Chart.DrawXYAxisAndLabel()
	return c.Chart.View()
}
