package model

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	filter "github.com/ornbeck/go-kalman"
)

// ObserveFunc maps a state vector to a predicted observation
type ObserveFunc func(x mat.Vector) mat.Vector

// JacobianFunc fills jac with the Jacobian of the observation function
// evaluated at state x
type JacobianFunc func(jac *mat.Dense, x mat.Vector)

// NoiseFunc returns the measurement noise covariance at state x
type NoiseFunc func(x mat.Vector) mat.Symmetric

// LinearizedObservation is a nonlinear measurement model used by the extended
// Kalman filter. ModelAt evaluates the Jacobian of the observation function at
// the supplied linearization point; the observation function itself is always
// applied exactly, only its slope is linearized.
type LinearizedObservation struct {
	// fn is the nonlinear observation function
	fn ObserveFunc
	// r is the constant measurement noise covariance
	r *mat.SymDense
	// nx is state dimension, ny is observation dimension
	nx, ny int
	// JacFn is the observation Jacobian. When nil the Jacobian is
	// approximated with central finite differences.
	JacFn JacobianFunc
	// NoiseFn supplies a state dependent noise covariance. When nil the
	// constant covariance given at construction is used.
	NoiseFn NoiseFunc
}

// NewLinearizedObservation creates new LinearizedObservation with observation
// function fn mapping states of length nx to observations of length ny, and
// measurement noise covariance r. It returns error if the dimensions are not
// positive or the dimension of r does not match ny.
func NewLinearizedObservation(nx, ny int, fn ObserveFunc, r mat.Symmetric) (*LinearizedObservation, error) {
	if nx <= 0 || ny <= 0 {
		return nil, &filter.DimensionError{What: "observation model", Rows: nx, Cols: ny, ExpRows: 1, ExpCols: 1}
	}

	if r.SymmetricDim() != ny {
		return nil, &filter.DimensionError{What: "measurement noise covariance", Rows: r.SymmetricDim(), Cols: r.SymmetricDim(), ExpRows: ny, ExpCols: ny}
	}

	rc := mat.NewSymDense(ny, nil)
	rc.CopySym(r)

	return &LinearizedObservation{fn: fn, r: rc, nx: nx, ny: ny}, nil
}

// ModelAt implements filter.ObservationSource. It returns the observation
// model linearized at state x: the Jacobian of the observation function
// evaluated at x together with the noise covariance at x.
func (o *LinearizedObservation) ModelAt(x mat.Vector) (filter.ObservationModel, error) {
	if x.Len() != o.nx {
		return nil, &filter.DimensionError{What: "state vector", Rows: x.Len(), ExpRows: o.nx}
	}

	h := mat.NewDense(o.ny, o.nx, nil)
	if o.JacFn != nil {
		o.JacFn(h, x)
	} else {
		fd.Jacobian(h, func(y, xs []float64) {
			v := o.fn(mat.NewVecDense(len(xs), xs))
			for i := range y {
				y[i] = v.AtVec(i)
			}
		}, mat.Col(nil, 0, x), &fd.JacobianSettings{
			Formula:    fd.Central,
			Concurrent: true,
		})
	}

	r := mat.NewSymDense(o.ny, nil)
	if o.NoiseFn != nil {
		rx := o.NoiseFn(x)
		if rx.SymmetricDim() != o.ny {
			return nil, &filter.DimensionError{What: "measurement noise covariance", Rows: rx.SymmetricDim(), Cols: rx.SymmetricDim(), ExpRows: o.ny, ExpCols: o.ny}
		}
		r.CopySym(rx)
	} else {
		r.CopySym(o.r)
	}

	return &linearized{fn: o.fn, h: h, r: r, nx: o.nx, ny: o.ny}, nil
}

// Dims returns the state and observation dimensions of the model
func (o *LinearizedObservation) Dims() (nx, ny int) {
	return o.nx, o.ny
}

// linearized is an observation model fixed at one linearization point
type linearized struct {
	fn     ObserveFunc
	h      *mat.Dense
	r      *mat.SymDense
	nx, ny int
}

// Observe applies the nonlinear observation function to x.
// It returns error if the dimension of x or of the resulting observation
// does not match the model.
func (l *linearized) Observe(x mat.Vector) (mat.Vector, error) {
	if x.Len() != l.nx {
		return nil, &filter.DimensionError{What: "state vector", Rows: x.Len(), ExpRows: l.nx}
	}

	y := l.fn(x)
	if y.Len() != l.ny {
		return nil, &filter.DimensionError{What: "observation vector", Rows: y.Len(), ExpRows: l.ny}
	}

	yc := &mat.VecDense{}
	yc.CloneFromVec(y)

	return yc, nil
}

// OutputMatrix returns the observation Jacobian at the linearization point
func (l *linearized) OutputMatrix() mat.Matrix {
	h := &mat.Dense{}
	h.CloneFrom(l.h)

	return h
}

// NoiseCov returns the measurement noise covariance at the linearization point
func (l *linearized) NoiseCov() mat.Symmetric {
	r := mat.NewSymDense(l.r.SymmetricDim(), nil)
	r.CopySym(l.r)

	return r
}
