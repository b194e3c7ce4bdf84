package noise

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Zero is noise with zero mean and zero covariance i.e. no noise
type Zero struct {
	// dim is the noise dimension
	dim int
}

// NewZero creates new Zero noise of the given dimension.
// It returns error if dim is not positive.
func NewZero(dim int) (*Zero, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid noise dimension: %d", dim)
	}

	return &Zero{dim: dim}, nil
}

// Sample returns a zero vector
func (z *Zero) Sample() mat.Vector {
	return mat.NewVecDense(z.dim, nil)
}

// Cov returns a zero covariance matrix
func (z *Zero) Cov() mat.Symmetric {
	return mat.NewSymDense(z.dim, nil)
}
