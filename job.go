package qsim

import "time"

// Job is one unit of pool work, typically a single circuit shot.
type Job struct {
	ID        string
	Fn        func() (any, error)
	TTL       time.Duration
	StartTime time.Time
}

// JobOption is a function type for configuring jobs
type JobOption func(*Job)

// WithTTL configures how long an unclaimed result is kept.
func WithTTL(ttl time.Duration) JobOption {
	return func(j *Job) {
		j.TTL = ttl
	}
}
