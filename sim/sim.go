// Package sim simulates linear-Gaussian dynamical systems. It generates
// ground truth state trajectories and noisy observation sequences that feed
// the filter and smoother in tests and examples.
package sim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	filter "github.com/ornbeck/go-kalman"
)

// Trajectory holds one simulated run of a dynamical system
type Trajectory struct {
	// States are the ground truth states, one per step
	States []mat.Vector
	// Observations are noisy observations of the states, one per step
	Observations []mat.Vector
}

// Run simulates the system for the given number of steps starting from state
// x0. The truth state evolves as x[k+1] = F*x[k] + w with w drawn from
// procNoise; each observation is y[k] = h(x[k]) + v with v drawn from
// measNoise. It returns error if the dimensions of x0 or the noise sources do
// not match the models.
func Run(dyn filter.DynamicsModel, src filter.ObservationSource, x0 mat.Vector, procNoise, measNoise filter.Noise, steps int) (*Trajectory, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("invalid number of steps: %d", steps)
	}

	nx := dyn.Dims()
	if x0.Len() != nx {
		return nil, &filter.DimensionError{What: "initial state", Rows: x0.Len(), ExpRows: nx}
	}

	if procNoise.Cov().SymmetricDim() != nx {
		return nil, &filter.DimensionError{What: "process noise", Rows: procNoise.Cov().SymmetricDim(), ExpRows: nx}
	}

	f := dyn.StateMatrix()

	x := &mat.VecDense{}
	x.CloneFromVec(x0)

	traj := &Trajectory{
		States:       make([]mat.Vector, 0, steps),
		Observations: make([]mat.Vector, 0, steps),
	}

	for k := 0; k < steps; k++ {
		xc := &mat.VecDense{}
		xc.CloneFromVec(x)
		traj.States = append(traj.States, xc)

		obs, err := src.ModelAt(x)
		if err != nil {
			return nil, fmt.Errorf("observation model at step %d: %w", k, err)
		}

		y, err := obs.Observe(x)
		if err != nil {
			return nil, fmt.Errorf("observation at step %d: %w", k, err)
		}

		if measNoise.Cov().SymmetricDim() != y.Len() {
			return nil, &filter.DimensionError{What: "measurement noise", Rows: measNoise.Cov().SymmetricDim(), ExpRows: y.Len()}
		}

		yn := &mat.VecDense{}
		yn.AddVec(y, measNoise.Sample())
		traj.Observations = append(traj.Observations, yn)

		xNext := mat.NewVecDense(nx, nil)
		xNext.MulVec(f, x)
		xNext.AddVec(xNext, procNoise.Sample())
		x = xNext
	}

	return traj, nil
}

// Dense stacks the vectors vs into a dense matrix with one vector per row.
// It returns nil if vs is empty.
func Dense(vs []mat.Vector) *mat.Dense {
	if len(vs) == 0 {
		return nil
	}

	m := mat.NewDense(len(vs), vs[0].Len(), nil)
	for i, v := range vs {
		for j := 0; j < v.Len(); j++ {
			m.Set(i, j, v.AtVec(j))
		}
	}

	return m
}

// EstimatesDense stacks the state vectors of the estimates es into a dense
// matrix with one state per row. It returns nil if es is empty.
func EstimatesDense(es []filter.Estimate) *mat.Dense {
	if len(es) == 0 {
		return nil
	}

	vs := make([]mat.Vector, len(es))
	for i, e := range es {
		vs[i] = e.Val()
	}

	return Dense(vs)
}
