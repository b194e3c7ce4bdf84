// Package kalman implements the Kalman filter forward recursion for
// linear-Gaussian dynamical systems. The predict and update steps are
// stateless functions over value-semantic estimates; the same recursion
// serves both the linear filter and the extended (linearized) filter through
// the observation source abstraction.
package kalman

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	filter "github.com/ornbeck/go-kalman"
	"github.com/ornbeck/go-kalman/estimate"
	"github.com/ornbeck/go-kalman/matrix"
)

// Predict computes the time update of est under the dynamics model dyn and
// returns the predicted estimate. It does not depend on any observation.
func Predict(dyn filter.DynamicsModel, est filter.Estimate) (filter.Estimate, error) {
	return dyn.Predict(est)
}

// Update corrects the predicted estimate pred with the measurement z using
// the observation model obs and returns the filtered estimate:
//
//	S  = H*P*H' + R
//	K  = P*H'*S^-1
//	x' = x + K*(z - h(x))
//	P' = (I - K*H)*P
//
// It returns an error wrapping filter.ErrSingularInnovationCov if S cannot
// be inverted, which signals a degenerate model configuration such as zero
// measurement noise combined with a rank-deficient observation matrix.
func Update(pred filter.Estimate, obs filter.ObservationModel, z mat.Vector) (filter.Estimate, error) {
	h := obs.OutputMatrix()
	ny, nx := h.Dims()

	x := pred.Val()
	if x.Len() != nx {
		return nil, &filter.DimensionError{What: "state vector", Rows: x.Len(), ExpRows: nx}
	}

	if z.Len() != ny {
		return nil, &filter.DimensionError{What: "measurement vector", Rows: z.Len(), ExpRows: ny}
	}

	p := pred.Cov()

	// P*H'
	pxy := mat.NewDense(nx, ny, nil)
	pxy.Mul(p, h.T())

	// S = H*P*H' + R
	s := mat.NewDense(ny, ny, nil)
	s.Mul(h, pxy)
	s.Add(s, obs.NoiseCov())

	sInv := &mat.Dense{}
	if err := sInv.Inverse(s); err != nil {
		return nil, fmt.Errorf("failed to invert [%d x %d] innovation covariance: %v: %w", ny, ny, err, filter.ErrSingularInnovationCov)
	}

	// K = P*H'*S^-1
	gain := mat.NewDense(nx, ny, nil)
	gain.Mul(pxy, sInv)

	// innovation = z - h(x)
	y, err := obs.Observe(x)
	if err != nil {
		return nil, fmt.Errorf("failed to observe system output: %v", err)
	}
	inn := &mat.VecDense{}
	inn.SubVec(z, y)

	// x' = x + K*innovation
	corr := mat.NewVecDense(nx, nil)
	corr.MulVec(gain, inn)
	xNext := mat.NewVecDense(nx, nil)
	xNext.AddVec(x, corr)

	// P' = (I - K*H)*P
	a := matrix.Eye(nx)
	kh := mat.NewDense(nx, nx, nil)
	kh.Mul(gain, h)
	a.Sub(a, kh)

	cov := &mat.Dense{}
	cov.Mul(a, p)

	return estimate.New(xNext, matrix.ToSym(cov))
}

// Filter runs the forward filtering recursion over the observation sequence
// zs starting from the prior estimate. At every step the observation model is
// linearized at the predicted state, the predicted estimate is corrected with
// the observation, and the corrected estimate is propagated to the next step.
//
// It returns the filtered estimates (one per observation) and the predicted
// estimates (the prior followed by one per observation). The recursion is
// strictly sequential and can equally be driven incrementally through Predict
// and Update as observations arrive.
//
// If a step fails the error names the failing step index; the estimates
// computed for the preceding steps are returned alongside it and remain
// valid.
func Filter(dyn filter.DynamicsModel, src filter.ObservationSource, prior filter.Estimate, zs []mat.Vector) (filtered, predicted []filter.Estimate, err error) {
	// snapshot the prior so returned sequences stay independent of the caller's value
	p0, err := estimate.New(prior.Val(), prior.Cov())
	if err != nil {
		return nil, nil, err
	}

	predicted = make([]filter.Estimate, 1, len(zs)+1)
	predicted[0] = p0
	filtered = make([]filter.Estimate, 0, len(zs))

	for k, z := range zs {
		obs, err := src.ModelAt(predicted[k].Val())
		if err != nil {
			return filtered, predicted, fmt.Errorf("observation model at step %d: %w", k, err)
		}

		f, err := Update(predicted[k], obs, z)
		if err != nil {
			return filtered, predicted, fmt.Errorf("update at step %d: %w", k, err)
		}
		filtered = append(filtered, f)

		pred, err := dyn.Predict(f)
		if err != nil {
			return filtered, predicted, fmt.Errorf("predict at step %d: %w", k, err)
		}
		predicted = append(predicted, pred)
	}

	return filtered, predicted, nil
}
