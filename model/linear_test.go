package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestNewLinearObservation(t *testing.T) {
	assert := assert.New(t)

	o, err := NewLinearObservation(h, r)
	assert.NotNil(o)
	assert.NoError(err)

	nx, ny := o.Dims()
	assert.Equal(2, nx)
	assert.Equal(1, ny)

	// mismatched noise dimension
	o, err = NewLinearObservation(h, mat.NewSymDense(3, nil))
	assert.Nil(o)
	assert.Error(err)
}

func TestLinearObservationModelAt(t *testing.T) {
	assert := assert.New(t)

	o, err := NewLinearObservation(h, r)
	assert.NoError(err)

	// the model is state independent
	m1, err := o.ModelAt(nil)
	assert.NoError(err)
	m2, err := o.ModelAt(mat.NewVecDense(2, []float64{-3.0, 7.0}))
	assert.NoError(err)
	assert.True(mat.Equal(m1.OutputMatrix(), m2.OutputMatrix()))
	assert.True(mat.Equal(m1.NoiseCov(), m2.NoiseCov()))

	// mismatched linearization point
	m3, err := o.ModelAt(mat.NewVecDense(3, nil))
	assert.Nil(m3)
	assert.Error(err)
}

func TestLinearObservationObserve(t *testing.T) {
	assert := assert.New(t)

	o, err := NewLinearObservation(h, r)
	assert.NoError(err)

	y, err := o.Observe(mat.NewVecDense(2, []float64{2.0, 5.0}))
	assert.NoError(err)
	assert.Equal(1, y.Len())
	assert.InDelta(2.0, y.AtVec(0), 1e-12)

	// mismatched state dimension
	y, err = o.Observe(mat.NewVecDense(3, nil))
	assert.Nil(y)
	assert.Error(err)
}
