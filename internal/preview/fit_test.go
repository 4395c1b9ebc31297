package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"avif-live/internal/models"
)

func TestFitReferenceExample(t *testing.T) {
	p := Fit(models.NewSize(1600, 1200), models.NewSize(800, 600), 20, 0.1, 1.0)

	assert.Equal(t, models.NewSize(780, 580), p.Available)
	assert.InDelta(t, 0.48333, p.Scale, 1e-5)
	assert.Equal(t, 773, p.Width)
	assert.Equal(t, 580, p.Height)
	assert.Equal(t, 48, p.Percent)
}

func TestFitNeverUpscales(t *testing.T) {
	p := Fit(models.NewSize(200, 100), models.NewSize(800, 600), 20, 0.1, 1.0)

	assert.Equal(t, 1.0, p.Scale)
	assert.Equal(t, 200, p.Width)
	assert.Equal(t, 100, p.Height)
	assert.Equal(t, 100, p.Percent)
}

func TestFitFloorsTinyContainers(t *testing.T) {
	p := Fit(models.NewSize(4000, 3000), models.NewSize(30, 25), 20, 0.1, 1.0)
	assert.Equal(t, 0.1, p.Scale)
	assert.Equal(t, 400, p.Width)
	assert.Equal(t, 300, p.Height)
	assert.Equal(t, 10, p.Percent)

	// container smaller than the margin
	p = Fit(models.NewSize(5, 5), models.NewSize(10, 10), 20, 0.1, 1.0)
	assert.Equal(t, 0.1, p.Scale)
	assert.Equal(t, 1, p.Width)
	assert.Equal(t, 1, p.Height)
}

func TestFitBoundsHoldAcrossSizes(t *testing.T) {
	natives := []models.Size{{Width: 1, Height: 1}, {Width: 3, Height: 7000}, {Width: 640, Height: 480}, {Width: 1600, Height: 1200}, {Width: 9000, Height: 2}}
	containers := []models.Size{{Width: 2, Height: 2}, {Width: 21, Height: 21}, {Width: 100, Height: 3000}, {Width: 800, Height: 600}, {Width: 5000, Height: 5000}}

	for _, n := range natives {
		for _, c := range containers {
			p := Fit(n, c, 20, 0.1, 1.0)
			assert.GreaterOrEqual(t, p.Scale, 0.1, "native %v container %v", n, c)
			assert.LessOrEqual(t, p.Scale, 1.0, "native %v container %v", n, c)
			assert.GreaterOrEqual(t, p.Width, 1)
			assert.GreaterOrEqual(t, p.Height, 1)
			assert.LessOrEqual(t, p.Width, n.Width)
			assert.LessOrEqual(t, p.Height, n.Height)
		}
	}
}

func TestFitUsesSmallerRatio(t *testing.T) {
	// width-limited
	p := Fit(models.NewSize(1000, 100), models.NewSize(520, 520), 20, 0.1, 1.0)
	assert.Equal(t, 500, p.Width)
	assert.Equal(t, 50, p.Height)

	// height-limited
	p = Fit(models.NewSize(100, 1000), models.NewSize(520, 520), 20, 0.1, 1.0)
	assert.Equal(t, 50, p.Width)
	assert.Equal(t, 500, p.Height)
}
