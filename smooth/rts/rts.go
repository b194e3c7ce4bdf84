// Package rts implements the Rauch-Tung-Striebel smoother: the backward
// recursion refining the estimates of a completed forward filtering pass
// with the information carried by later observations.
package rts

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	filter "github.com/ornbeck/go-kalman"
	"github.com/ornbeck/go-kalman/estimate"
	"github.com/ornbeck/go-kalman/matrix"
)

// RTS is Rauch-Tung-Striebel smoother
type RTS struct {
	// f is the state transition matrix of the forward pass dynamics
	f *mat.Dense
}

// New creates new RTS smoother for the dynamics model used in the forward
// pass and returns it. It returns error if the model dimension is not
// positive.
func New(dyn filter.DynamicsModel) (*RTS, error) {
	nx := dyn.Dims()
	if nx <= 0 {
		return nil, &filter.DimensionError{What: "dynamics model", Rows: nx, ExpRows: 1}
	}

	f := &mat.Dense{}
	f.CloneFrom(dyn.StateMatrix())

	return &RTS{f: f}, nil
}

// Smooth runs the backward smoothing recursion over one completed forward
// pass. filtered and predicted must be the aligned sequences returned by a
// successful kalman.Filter run: len(predicted) == len(filtered)+1 with
// predicted[0] holding the prior. For each step
//
//	J    = P_f*F'*P_pred^-1
//	x_s  = x_f + J*(x_s[k+1] - x_pred[k+1])
//	P_s  = P_f + J*(P_s[k+1] - P_pred[k+1])*J'
//
// with the boundary smoothed[T-1] = filtered[T-1]: the final filtered
// estimate has no future information to incorporate.
//
// It returns an error wrapping filter.ErrSingularPredictedCov if a predicted
// covariance cannot be inverted. The recursion proceeds in strictly
// descending time order, so on failure at step k the returned slice holds
// valid estimates above index k and nil at and below it.
func (s *RTS) Smooth(filtered, predicted []filter.Estimate) ([]filter.Estimate, error) {
	if len(predicted) != len(filtered)+1 {
		return nil, fmt.Errorf("mismatched forward pass: %d filtered, %d predicted estimates", len(filtered), len(predicted))
	}

	steps := len(filtered)
	if steps == 0 {
		return nil, nil
	}

	nx, _ := s.f.Dims()
	if filtered[steps-1].Val().Len() != nx {
		return nil, &filter.DimensionError{What: "state vector", Rows: filtered[steps-1].Val().Len(), ExpRows: nx}
	}

	smoothed := make([]filter.Estimate, steps)

	last, err := estimate.New(filtered[steps-1].Val(), filtered[steps-1].Cov())
	if err != nil {
		return nil, err
	}
	smoothed[steps-1] = last

	for k := steps - 2; k >= 0; k-- {
		pPredInv := &mat.Dense{}
		if err := pPredInv.Inverse(predicted[k+1].Cov()); err != nil {
			return smoothed, fmt.Errorf("failed to invert [%d x %d] predicted covariance at step %d: %v: %w", nx, nx, k+1, err, filter.ErrSingularPredictedCov)
		}

		// J = P_f*F'*P_pred^-1
		j := &mat.Dense{}
		j.Mul(filtered[k].Cov(), s.f.T())
		j.Mul(j, pPredInv)

		// x_s = x_f + J*(x_s[k+1] - x_pred[k+1])
		dx := &mat.VecDense{}
		dx.SubVec(smoothed[k+1].Val(), predicted[k+1].Val())
		corr := mat.NewVecDense(nx, nil)
		corr.MulVec(j, dx)
		xs := mat.NewVecDense(nx, nil)
		xs.AddVec(filtered[k].Val(), corr)

		// P_s = P_f + J*(P_s[k+1] - P_pred[k+1])*J'
		dp := &mat.Dense{}
		dp.Sub(smoothed[k+1].Cov(), predicted[k+1].Cov())
		jp := &mat.Dense{}
		jp.Mul(j, dp)
		jp.Mul(jp, j.T())
		cov := &mat.Dense{}
		cov.Add(filtered[k].Cov(), jp)

		e, err := estimate.New(xs, matrix.ToSym(cov))
		if err != nil {
			return smoothed, err
		}
		smoothed[k] = e
	}

	return smoothed, nil
}
