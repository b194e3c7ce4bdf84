package filter

import "gonum.org/v1/gonum/mat"

// Estimate is a state estimate: a state mean vector together with its covariance.
type Estimate interface {
	// Val returns the estimated state vector
	Val() mat.Vector
	// Cov returns the estimate covariance
	Cov() mat.Symmetric
}

// DynamicsModel propagates a state estimate one step forward in time.
type DynamicsModel interface {
	// Predict computes the time update of est and returns it
	Predict(est Estimate) (Estimate, error)
	// StateMatrix returns the state transition matrix
	StateMatrix() mat.Matrix
	// ProcessNoiseCov returns the process noise covariance
	ProcessNoiseCov() mat.Symmetric
	// Dims returns the state dimension
	Dims() int
}

// ObservationModel is a measurement model linearized at a particular state.
// For linear models the matrices are the same at every state.
type ObservationModel interface {
	// OutputMatrix returns the observation matrix
	OutputMatrix() mat.Matrix
	// NoiseCov returns the measurement noise covariance
	NoiseCov() mat.Symmetric
	// Observe returns the predicted observation of state x
	Observe(x mat.Vector) (mat.Vector, error)
}

// ObservationSource produces observation models. A linear source returns the
// same model at every state; a linearized (EKF) source evaluates the
// observation Jacobian at the supplied state.
type ObservationSource interface {
	// ModelAt returns the observation model linearized at state x
	ModelAt(x mat.Vector) (ObservationModel, error)
}

// Noise is dynamical system noise
type Noise interface {
	// Cov returns covariance matrix of the noise
	Cov() mat.Symmetric
	// Sample returns a sample of the noise
	Sample() mat.Vector
}
