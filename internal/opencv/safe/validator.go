// Package safe checks sizes and Mats before they reach OpenCV, which aborts
// the process on inputs it cannot handle instead of returning an error.
package safe

import (
	"fmt"

	"gocv.io/x/gocv"
)

// MaxDimension is the largest width or height accepted for a Mat.
const MaxDimension = 32768

func ValidateDimensions(width, height int, operation string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d for operation: %s", width, height, operation)
	}

	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("dimensions %dx%d exceed maximum size for operation: %s", width, height, operation)
	}

	return nil
}

// ValidateMat requires a non-empty 8-bit Mat with the given channel count.
func ValidateMat(mat gocv.Mat, channels int, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("Mat is empty for operation: %s", operation)
	}

	if err := ValidateDimensions(mat.Cols(), mat.Rows(), operation); err != nil {
		return err
	}

	if got := mat.Channels(); got != channels {
		return fmt.Errorf("operation %s requires %d channels, got %d", operation, channels, got)
	}

	switch mat.Type() {
	case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC3, gocv.MatTypeCV8UC4:
		return nil
	default:
		return fmt.Errorf("unsupported Mat type %v for operation: %s", mat.Type(), operation)
	}
}
