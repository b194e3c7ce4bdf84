package model

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	filter "github.com/ornbeck/go-kalman"
	"github.com/ornbeck/go-kalman/estimate"
)

var (
	f *mat.Dense
	q *mat.SymDense
	h *mat.Dense
	r *mat.SymDense
)

func setup() {
	f = mat.NewDense(2, 2, []float64{1.0, 1.0, 0.0, 1.0})
	q = mat.NewSymDense(2, []float64{0.01, 0.0, 0.0, 0.01})
	h = mat.NewDense(1, 2, []float64{1.0, 0.0})
	r = mat.NewSymDense(1, []float64{0.25})
}

func TestMain(m *testing.M) {
	setup()
	retCode := m.Run()
	os.Exit(retCode)
}

func TestNewLinearDynamics(t *testing.T) {
	assert := assert.New(t)

	d, err := NewLinearDynamics(f, q)
	assert.NotNil(d)
	assert.NoError(err)
	assert.Equal(2, d.Dims())

	// non-square transition matrix
	d, err = NewLinearDynamics(mat.NewDense(2, 3, nil), q)
	assert.Nil(d)
	assert.Error(err)

	// mismatched process noise dimension
	d, err = NewLinearDynamics(f, mat.NewSymDense(3, nil))
	assert.Nil(d)
	assert.Error(err)

	var dimErr *filter.DimensionError
	assert.True(errors.As(err, &dimErr))
}

func TestLinearDynamicsPredict(t *testing.T) {
	assert := assert.New(t)

	d, err := NewLinearDynamics(f, q)
	assert.NoError(err)

	est, err := estimate.New(mat.NewVecDense(2, []float64{1.0, 2.0}),
		mat.NewSymDense(2, []float64{1.0, 0.0, 0.0, 1.0}))
	assert.NoError(err)

	pred, err := d.Predict(est)
	assert.NotNil(pred)
	assert.NoError(err)

	// x' = F*x
	x := pred.Val()
	assert.InDelta(3.0, x.AtVec(0), 1e-12)
	assert.InDelta(2.0, x.AtVec(1), 1e-12)

	// P' = F*P*F' + Q
	cov := pred.Cov()
	assert.InDelta(2.01, cov.At(0, 0), 1e-12)
	assert.InDelta(1.0, cov.At(0, 1), 1e-12)
	assert.InDelta(1.0, cov.At(1, 0), 1e-12)
	assert.InDelta(1.01, cov.At(1, 1), 1e-12)

	// output covariance stays symmetric
	assert.True(mat.Equal(cov, cov.(*mat.SymDense).T()))

	// mismatched state dimension
	bad, err := estimate.New(mat.NewVecDense(3, nil), mat.NewSymDense(3, nil))
	assert.NoError(err)
	pred, err = d.Predict(bad)
	assert.Nil(pred)
	assert.Error(err)
}

func TestLinearDynamicsAccessors(t *testing.T) {
	assert := assert.New(t)

	d, err := NewLinearDynamics(f, q)
	assert.NoError(err)

	// returned matrices are copies
	fc := d.StateMatrix().(*mat.Dense)
	fc.Set(0, 0, 42.0)
	assert.Equal(1.0, d.StateMatrix().At(0, 0))

	qc := d.ProcessNoiseCov().(*mat.SymDense)
	qc.SetSym(0, 0, 42.0)
	assert.Equal(0.01, d.ProcessNoiseCov().At(0, 0))
}
