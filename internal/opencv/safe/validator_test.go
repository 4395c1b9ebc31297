package safe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

func TestValidateDimensions(t *testing.T) {
	assert.NoError(t, ValidateDimensions(1, 1, "resize"))
	assert.NoError(t, ValidateDimensions(MaxDimension, 10, "resize"))
	assert.Error(t, ValidateDimensions(0, 10, "resize"))
	assert.Error(t, ValidateDimensions(10, -1, "resize"))
	assert.Error(t, ValidateDimensions(MaxDimension+1, 10, "resize"))
}

func TestValidateMat(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()
	assert.Error(t, ValidateMat(empty, 3, "resize"))

	bgr := gocv.NewMatWithSize(4, 6, gocv.MatTypeCV8UC3)
	defer bgr.Close()
	assert.NoError(t, ValidateMat(bgr, 3, "resize"))
	assert.Error(t, ValidateMat(bgr, 4, "resize"))

	float := gocv.NewMatWithSize(4, 6, gocv.MatTypeCV32FC3)
	defer float.Close()
	assert.Error(t, ValidateMat(float, 3, "resize"))
}
