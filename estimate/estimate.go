package estimate

import (
	"gonum.org/v1/gonum/mat"

	filter "github.com/ornbeck/go-kalman"
)

// State is a state estimate: a state mean vector paired with its covariance.
// It is a value type: construction and accessors copy their data, so estimates
// recorded during a filter run stay independent of later updates.
//
// The covariance is assumed to be symmetric and positive semi-definite; this
// is not enforced here.
type State struct {
	// val is the estimated state vector
	val *mat.VecDense
	// cov is the estimate covariance
	cov *mat.SymDense
}

// New returns a new State estimate of val with covariance cov.
// It returns error if the covariance dimension does not match the length of val.
func New(val mat.Vector, cov mat.Symmetric) (*State, error) {
	n := val.Len()
	if cov.SymmetricDim() != n {
		return nil, &filter.DimensionError{
			What: "covariance", Rows: cov.SymmetricDim(), Cols: cov.SymmetricDim(),
			ExpRows: n, ExpCols: n,
		}
	}

	v := &mat.VecDense{}
	v.CloneFromVec(val)

	c := mat.NewSymDense(n, nil)
	c.CopySym(cov)

	return &State{
		val: v,
		cov: c,
	}, nil
}

// Val returns a copy of the estimated state vector
func (s *State) Val() mat.Vector {
	v := &mat.VecDense{}
	v.CloneFromVec(s.val)

	return v
}

// Cov returns a copy of the estimate covariance
func (s *State) Cov() mat.Symmetric {
	cov := mat.NewSymDense(s.cov.SymmetricDim(), nil)
	cov.CopySym(s.cov)

	return cov
}

// Dims returns the state dimension
func (s *State) Dims() int {
	return s.val.Len()
}
