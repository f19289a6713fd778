package components

import (
	"math"

	"github.com/lixenwraith/glyph-rain/constants"
)

// Letter is one character of a cluster in polar coordinates around the center
type Letter struct {
	Char   rune
	Angle  float64 // Radians
	Radius float64 // Unscaled, converted to cells by viewport size
}

// Cluster is a transient outward spiral spelling a found word
type Cluster struct {
	Word     string
	CenterX  int
	CenterY  int
	Lifespan int
	Age      int
	Gradient []uint8
	Letters  []Letter
}

// NewCluster spreads the word's letters evenly around a circle at radius 0
func NewCluster(word string, centerX, centerY, lifespan int, gradient []uint8) *Cluster {
	runes := []rune(word)
	letters := make([]Letter, len(runes))
	if len(runes) > 0 {
		step := 2 * math.Pi / float64(len(runes))
		for i, ch := range runes {
			letters[i] = Letter{Char: ch, Angle: float64(i) * step}
		}
	}
	return &Cluster{
		Word:     word,
		CenterX:  centerX,
		CenterY:  centerY,
		Lifespan: lifespan,
		Gradient: gradient,
		Letters:  letters,
	}
}

// Update ages the cluster one tick, growing radius and angle of every letter
// Returns false on the tick age reaches lifespan
func (c *Cluster) Update() bool {
	c.Age++
	for i := range c.Letters {
		c.Letters[i].Radius += constants.ClusterRadiusStep
		c.Letters[i].Angle += constants.ClusterAngleStep
	}
	return c.Alive()
}

// Alive reports whether the cluster is within its lifespan
func (c *Cluster) Alive() bool {
	return c.Age < c.Lifespan
}

// Position returns the screen cell of a letter for a viewport of width x height
// Radius is scaled per axis so the spiral stays circular on non-square cells
func (c *Cluster) Position(l Letter, width, height int) (x, y int) {
	sx := float64(width) / constants.ClusterScaleDivisor
	sy := float64(height) / constants.ClusterScaleDivisor
	x = int(float64(c.CenterX) + l.Radius*sx*math.Cos(l.Angle))
	y = int(float64(c.CenterY) + l.Radius*sy*math.Sin(l.Angle))
	return x, y
}

// Color returns the gradient color for the current age, a third as fast as trails
func (c *Cluster) Color() uint8 {
	if len(c.Gradient) == 0 {
		return 0
	}
	idx := c.Age / constants.ClusterColorDivisor
	if idx > len(c.Gradient)-1 {
		idx = len(c.Gradient) - 1
	}
	return c.Gradient[idx]
}
