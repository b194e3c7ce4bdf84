// Package noise provides the noise sources used to simulate linear-Gaussian
// systems and to generate observation sequences for the filter.
package noise

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Gaussian is multivariate normal noise
type Gaussian struct {
	// dist is the underlying multivariate normal distribution
	dist *distmv.Normal
	// cov is the noise covariance
	cov *mat.SymDense
}

// NewGaussian creates new Gaussian noise with the given mean and covariance.
// It returns error if cov is not positive definite or its dimension does not
// match the length of mean.
func NewGaussian(mean []float64, cov mat.Symmetric) (*Gaussian, error) {
	if cov.SymmetricDim() != len(mean) {
		return nil, fmt.Errorf("invalid noise covariance dimension: %d != %d", cov.SymmetricDim(), len(mean))
	}

	src := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	dist, ok := distmv.NewNormal(mean, cov, src)
	if !ok {
		return nil, fmt.Errorf("failed to create Gaussian noise: covariance not positive definite")
	}

	c := mat.NewSymDense(cov.SymmetricDim(), nil)
	c.CopySym(cov)

	return &Gaussian{dist: dist, cov: c}, nil
}

// Sample draws one sample of the noise and returns it
func (g *Gaussian) Sample() mat.Vector {
	r := g.dist.Rand(nil)

	return mat.NewVecDense(len(r), r)
}

// Cov returns the noise covariance
func (g *Gaussian) Cov() mat.Symmetric {
	cov := mat.NewSymDense(g.cov.SymmetricDim(), nil)
	cov.CopySym(g.cov)

	return cov
}
