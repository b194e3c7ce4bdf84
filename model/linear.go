package model

import (
	"gonum.org/v1/gonum/mat"

	filter "github.com/ornbeck/go-kalman"
)

// LinearObservation is a linear measurement model with fixed observation
// matrix H and measurement noise covariance R. It observes y = H*x.
//
// LinearObservation is its own observation source: ModelAt ignores the
// linearization point and returns the model itself.
type LinearObservation struct {
	// h is observation matrix
	h *mat.Dense
	// r is measurement noise covariance
	r *mat.SymDense
}

// NewLinearObservation creates new LinearObservation with observation matrix h
// and measurement noise covariance r. It returns error if the dimension of r
// does not match the number of rows of h.
func NewLinearObservation(h mat.Matrix, r mat.Symmetric) (*LinearObservation, error) {
	ny, _ := h.Dims()
	if r.SymmetricDim() != ny {
		return nil, &filter.DimensionError{What: "measurement noise covariance", Rows: r.SymmetricDim(), Cols: r.SymmetricDim(), ExpRows: ny, ExpCols: ny}
	}

	hc := &mat.Dense{}
	hc.CloneFrom(h)

	rc := mat.NewSymDense(ny, nil)
	rc.CopySym(r)

	return &LinearObservation{h: hc, r: rc}, nil
}

// ModelAt implements filter.ObservationSource. The model is state independent
// so the linearization point x is ignored.
func (o *LinearObservation) ModelAt(x mat.Vector) (filter.ObservationModel, error) {
	if x != nil {
		_, nx := o.h.Dims()
		if x.Len() != nx {
			return nil, &filter.DimensionError{What: "state vector", Rows: x.Len(), ExpRows: nx}
		}
	}

	return o, nil
}

// Observe returns the predicted observation H*x of state x.
// It returns error if the length of x does not match the model.
func (o *LinearObservation) Observe(x mat.Vector) (mat.Vector, error) {
	ny, nx := o.h.Dims()
	if x.Len() != nx {
		return nil, &filter.DimensionError{What: "state vector", Rows: x.Len(), ExpRows: nx}
	}

	y := mat.NewVecDense(ny, nil)
	y.MulVec(o.h, x)

	return y, nil
}

// OutputMatrix returns the observation matrix
func (o *LinearObservation) OutputMatrix() mat.Matrix {
	h := &mat.Dense{}
	h.CloneFrom(o.h)

	return h
}

// NoiseCov returns the measurement noise covariance
func (o *LinearObservation) NoiseCov() mat.Symmetric {
	r := mat.NewSymDense(o.r.SymmetricDim(), nil)
	r.CopySym(o.r)

	return r
}

// Dims returns the state and observation dimensions of the model
func (o *LinearObservation) Dims() (nx, ny int) {
	ny, nx = o.h.Dims()

	return nx, ny
}
