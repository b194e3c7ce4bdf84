package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestNewGaussian(t *testing.T) {
	assert := assert.New(t)

	mean := []float64{0.0, 0.0}
	cov := mat.NewSymDense(2, []float64{0.25, 0.0, 0.0, 0.25})

	g, err := NewGaussian(mean, cov)
	assert.NotNil(g)
	assert.NoError(err)

	// mismatched mean and covariance dimensions
	g, err = NewGaussian([]float64{0.0}, cov)
	assert.Nil(g)
	assert.Error(err)

	// covariance not positive definite
	g, err = NewGaussian(mean, mat.NewSymDense(2, nil))
	assert.Nil(g)
	assert.Error(err)
}

func TestGaussianSample(t *testing.T) {
	assert := assert.New(t)

	cov := mat.NewSymDense(2, []float64{0.25, 0.0, 0.0, 0.25})
	g, err := NewGaussian([]float64{0.0, 0.0}, cov)
	assert.NoError(err)

	sample := g.Sample()
	assert.Equal(2, sample.Len())

	// Cov returns a copy
	c := g.Cov().(*mat.SymDense)
	c.SetSym(0, 0, 42.0)
	assert.Equal(0.25, g.Cov().At(0, 0))
}
