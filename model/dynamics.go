package model

import (
	"gonum.org/v1/gonum/mat"

	filter "github.com/ornbeck/go-kalman"
	"github.com/ornbeck/go-kalman/estimate"
	"github.com/ornbeck/go-kalman/matrix"
)

// LinearDynamics is a linear-Gaussian dynamics model. It is defined by the
// state transition matrix F and the process noise covariance Q and is shared
// read-only across all steps of a run.
type LinearDynamics struct {
	// f is state transition matrix
	f *mat.Dense
	// q is process noise covariance
	q *mat.SymDense
}

// NewLinearDynamics creates new LinearDynamics with transition matrix f and
// process noise covariance q. It returns error if f is not square or if the
// dimension of q does not match f.
func NewLinearDynamics(f mat.Matrix, q mat.Symmetric) (*LinearDynamics, error) {
	rows, cols := f.Dims()
	if rows != cols {
		return nil, &filter.DimensionError{What: "transition matrix", Rows: rows, Cols: cols, ExpRows: rows, ExpCols: rows}
	}

	if q.SymmetricDim() != rows {
		return nil, &filter.DimensionError{What: "process noise covariance", Rows: q.SymmetricDim(), Cols: q.SymmetricDim(), ExpRows: rows, ExpCols: rows}
	}

	fc := &mat.Dense{}
	fc.CloneFrom(f)

	qc := mat.NewSymDense(rows, nil)
	qc.CopySym(q)

	return &LinearDynamics{f: fc, q: qc}, nil
}

// Predict computes the time update of est:
//
//	x' = F*x
//	P' = F*P*F' + Q
//
// It returns error if the dimension of est does not match the model.
func (d *LinearDynamics) Predict(est filter.Estimate) (filter.Estimate, error) {
	nx := d.Dims()
	x := est.Val()
	if x.Len() != nx {
		return nil, &filter.DimensionError{What: "state vector", Rows: x.Len(), ExpRows: nx}
	}

	xNext := mat.NewVecDense(nx, nil)
	xNext.MulVec(d.f, x)

	cov := &mat.Dense{}
	cov.Mul(d.f, est.Cov())
	cov.Mul(cov, d.f.T())
	cov.Add(cov, d.q)

	return estimate.New(xNext, matrix.ToSym(cov))
}

// StateMatrix returns the state transition matrix
func (d *LinearDynamics) StateMatrix() mat.Matrix {
	m := &mat.Dense{}
	m.CloneFrom(d.f)

	return m
}

// ProcessNoiseCov returns the process noise covariance
func (d *LinearDynamics) ProcessNoiseCov() mat.Symmetric {
	q := mat.NewSymDense(d.q.SymmetricDim(), nil)
	q.CopySym(d.q)

	return q
}

// Dims returns the state dimension
func (d *LinearDynamics) Dims() int {
	n, _ := d.f.Dims()

	return n
}
