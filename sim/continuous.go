package sim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	filter "github.com/ornbeck/go-kalman"
	"github.com/ornbeck/go-kalman/matrix"
	"github.com/ornbeck/go-kalman/model"
)

// Continuous is a linear continuous-time system
//
//	dx/dt = A*x + w
//
// driven by white process noise with spectral density Qc.
type Continuous struct {
	// a is the continuous-time system matrix
	a *mat.Dense
	// qc is the process noise spectral density
	qc *mat.SymDense
}

// NewContinuous creates new Continuous system with system matrix a and
// process noise spectral density qc. It returns error if a is not square or
// the dimension of qc does not match a.
func NewContinuous(a mat.Matrix, qc mat.Symmetric) (*Continuous, error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, &filter.DimensionError{What: "system matrix", Rows: rows, Cols: cols, ExpRows: rows, ExpCols: rows}
	}

	if qc.SymmetricDim() != rows {
		return nil, &filter.DimensionError{What: "noise spectral density", Rows: qc.SymmetricDim(), Cols: qc.SymmetricDim(), ExpRows: rows, ExpCols: rows}
	}

	ac := &mat.Dense{}
	ac.CloneFrom(a)

	qcc := mat.NewSymDense(rows, nil)
	qcc.CopySym(qc)

	return &Continuous{a: ac, qc: qcc}, nil
}

// ToDiscrete discretizes the system with sampling time ts and returns the
// resulting discrete-time dynamics model:
//
//	F = exp(A*ts)
//	Q = (Qc + F*Qc*F')*ts/2
//
// The transition matrix is exact for linear systems; the sampled noise
// covariance uses the trapezoidal approximation, valid for small ts.
// See Discrete-Time Control Systems by Katsuhiko Ogata.
func (c *Continuous) ToDiscrete(ts float64) (*model.LinearDynamics, error) {
	if ts <= 0 {
		return nil, fmt.Errorf("invalid sampling time: %f", ts)
	}

	f := &mat.Dense{}
	f.Scale(ts, c.a)
	f.Exp(f)

	fq := &mat.Dense{}
	fq.Mul(f, c.qc)
	fq.Mul(fq, f.T())

	q := &mat.Dense{}
	q.Add(c.qc, fq)
	q.Scale(ts/2, q)

	return model.NewLinearDynamics(f, matrix.ToSym(q))
}
