package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularInnovationCov is returned when the innovation covariance
	// S = H*P*H' + R cannot be inverted during a measurement update.
	// This usually means a degenerate model: zero measurement noise combined
	// with a rank-deficient or redundant observation matrix.
	ErrSingularInnovationCov = errors.New("singular innovation covariance")

	// ErrSingularPredictedCov is returned when a predicted state covariance
	// cannot be inverted during smoothing.
	ErrSingularPredictedCov = errors.New("singular predicted covariance")
)

// DimensionError is returned when a vector or matrix does not match the
// dimensions declared by a model. Dimensions are never silently adjusted.
type DimensionError struct {
	// What names the offending vector or matrix
	What string
	// Rows and Cols are the supplied dimensions; Cols is 0 for vectors
	Rows, Cols int
	// ExpRows and ExpCols are the expected dimensions
	ExpRows, ExpCols int
}

func (e *DimensionError) Error() string {
	if e.Cols == 0 && e.ExpCols == 0 {
		return fmt.Sprintf("invalid %s dimension: %d != %d", e.What, e.Rows, e.ExpRows)
	}
	return fmt.Sprintf("invalid %s dimensions: [%d x %d] != [%d x %d]", e.What, e.Rows, e.Cols, e.ExpRows, e.ExpCols)
}
