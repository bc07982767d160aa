package fsrs

import "fmt"

// Weights is an FSRS weight vector. The difficulty/stability update
// formulas index into it; see scheduler.go.
type Weights [17]float64

// DefaultWeights is the published FSRS-4.5 default weight vector. The
// scheduler only depends on the ordering properties of the weights
// (hard penalty < 1, easy bonus > 1, ascending initial stabilities), so
// substituting a personally optimized vector is safe.
var DefaultWeights = Weights{
	0.4872, 1.4003, 3.7145, 13.8206, // w0-w3: initial stability per rating
	5.1618, 1.2298, 0.8975, 0.0310, // w4-w7: initial difficulty, difficulty update
	1.6474, 0.1367, 1.0461, // w8-w10: recall stability growth
	2.1072, 0.0793, 0.3246, 1.5870, // w11-w14: post-lapse stability
	0.2272, 2.8755, // w15-w16: hard penalty, easy bonus
}

// Params configures a Scheduler. The zero value is usable: zero fields
// are replaced with defaults by NewScheduler.
type Params struct {
	// Weights is the FSRS weight vector; zero value means DefaultWeights.
	Weights Weights `json:"weights"`

	// RequestedRetention is the recall probability the scheduler targets
	// when picking intervals; zero means DefaultRetention (0.9).
	RequestedRetention float64 `json:"requested_retention"`

	// MaximumIntervalDays caps every scheduled interval; zero means
	// MaxIntervalDays (36500).
	MaximumIntervalDays int `json:"maximum_interval_days"`
}

// withDefaults returns a copy of p with zero fields filled in.
func (p Params) withDefaults() Params {
	if p.Weights == (Weights{}) {
		p.Weights = DefaultWeights
	}
	if p.RequestedRetention == 0 {
		p.RequestedRetention = DefaultRetention
	}
	if p.MaximumIntervalDays == 0 {
		p.MaximumIntervalDays = MaxIntervalDays
	}
	return p
}

// validate rejects parameter values the update formulas cannot work
// with. It runs after defaulting, so zero values never reach it.
func (p Params) validate() error {
	if p.RequestedRetention <= 0 || p.RequestedRetention > 1 {
		return fmt.Errorf("requested retention %v out of range (0, 1]", p.RequestedRetention)
	}
	if p.MaximumIntervalDays < 1 {
		return fmt.Errorf("maximum interval %d must be at least 1 day", p.MaximumIntervalDays)
	}
	for i, w := range p.Weights {
		if w < 0 {
			return fmt.Errorf("weight w%d = %v must be non-negative", i, w)
		}
	}
	for i := 0; i < 3; i++ {
		if p.Weights[i] > p.Weights[i+1] {
			return fmt.Errorf("initial stabilities w0..w3 must be ascending, got w%d=%v > w%d=%v",
				i, p.Weights[i], i+1, p.Weights[i+1])
		}
	}
	if p.Weights[15] >= 1 {
		return fmt.Errorf("hard penalty w15 = %v must be below 1", p.Weights[15])
	}
	if p.Weights[16] <= 1 {
		return fmt.Errorf("easy bonus w16 = %v must be above 1", p.Weights[16])
	}
	return nil
}
