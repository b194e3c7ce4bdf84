package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestNewLinearizedObservation(t *testing.T) {
	assert := assert.New(t)

	fn := func(x mat.Vector) mat.Vector {
		return mat.NewVecDense(1, []float64{x.AtVec(0)})
	}

	o, err := NewLinearizedObservation(2, 1, fn, r)
	assert.NotNil(o)
	assert.NoError(err)

	nx, ny := o.Dims()
	assert.Equal(2, nx)
	assert.Equal(1, ny)

	// invalid dimensions
	o, err = NewLinearizedObservation(0, 1, fn, r)
	assert.Nil(o)
	assert.Error(err)

	// mismatched noise dimension
	o, err = NewLinearizedObservation(2, 1, fn, mat.NewSymDense(3, nil))
	assert.Nil(o)
	assert.Error(err)
}

func TestLinearizedNumericJacobian(t *testing.T) {
	assert := assert.New(t)

	// linear observation function: the numeric Jacobian must recover H
	fn := func(x mat.Vector) mat.Vector {
		y := mat.NewVecDense(1, nil)
		y.MulVec(h, x)
		return y
	}

	o, err := NewLinearizedObservation(2, 1, fn, r)
	assert.NoError(err)

	m, err := o.ModelAt(mat.NewVecDense(2, []float64{1.0, -2.0}))
	assert.NoError(err)

	jac := m.OutputMatrix()
	assert.InDelta(h.At(0, 0), jac.At(0, 0), 1e-6)
	assert.InDelta(h.At(0, 1), jac.At(0, 1), 1e-6)
}

func TestLinearizedAnalyticJacobian(t *testing.T) {
	assert := assert.New(t)

	// y = [x0^2]
	fn := func(x mat.Vector) mat.Vector {
		return mat.NewVecDense(1, []float64{x.AtVec(0) * x.AtVec(0)})
	}

	o, err := NewLinearizedObservation(2, 1, fn, r)
	assert.NoError(err)
	o.JacFn = func(jac *mat.Dense, x mat.Vector) {
		jac.Set(0, 0, 2*x.AtVec(0))
		jac.Set(0, 1, 0.0)
	}

	x0 := mat.NewVecDense(2, []float64{3.0, 1.0})
	m, err := o.ModelAt(x0)
	assert.NoError(err)
	assert.InDelta(6.0, m.OutputMatrix().At(0, 0), 1e-12)

	// the observation function is applied exactly at the argument,
	// not at the linearization point
	y, err := m.Observe(mat.NewVecDense(2, []float64{5.0, 1.0}))
	assert.NoError(err)
	assert.InDelta(25.0, y.AtVec(0), 1e-12)

	// mismatched linearization point
	bad, err := o.ModelAt(mat.NewVecDense(3, nil))
	assert.Nil(bad)
	assert.Error(err)
}

func TestLinearizedNoiseFunc(t *testing.T) {
	assert := assert.New(t)

	fn := func(x mat.Vector) mat.Vector {
		return mat.NewVecDense(1, []float64{math.Sin(x.AtVec(0))})
	}

	o, err := NewLinearizedObservation(2, 1, fn, r)
	assert.NoError(err)

	// state dependent noise covariance
	o.NoiseFn = func(x mat.Vector) mat.Symmetric {
		return mat.NewSymDense(1, []float64{x.AtVec(0) * x.AtVec(0)})
	}

	m, err := o.ModelAt(mat.NewVecDense(2, []float64{2.0, 0.0}))
	assert.NoError(err)
	assert.InDelta(4.0, m.NoiseCov().At(0, 0), 1e-12)

	// noise func returning wrong dimension
	o.NoiseFn = func(x mat.Vector) mat.Symmetric {
		return mat.NewSymDense(3, nil)
	}
	m, err = o.ModelAt(mat.NewVecDense(2, nil))
	assert.Nil(m)
	assert.Error(err)
}
