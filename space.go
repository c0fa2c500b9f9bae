package qsim

import (
	"sync"
	"time"
)

// ShotValue wraps a job result with metadata
type ShotValue struct {
	Value     any
	Error     error
	CreatedAt time.Time
	TTL       time.Duration
}

/*
ShotSpace hands job results to whoever awaits them. A result that arrives
before anyone awaits it is parked until claimed or until its TTL runs out.
Each result is delivered once.
*/
type ShotSpace struct {
	mu      sync.Mutex
	values  map[string]ShotValue
	waiting map[string][]chan ShotValue
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

func newShotSpace(sweep time.Duration) *ShotSpace {
	ss := &ShotSpace{
		values:  make(map[string]ShotValue),
		waiting: make(map[string][]chan ShotValue),
		done:    make(chan struct{}),
	}

	ss.wg.Add(1)
	go func() {
		defer ss.wg.Done()
		ss.cleanup(sweep)
	}()

	return ss
}

// Store delivers a result to its waiters, or parks it if there are none.
func (ss *ShotSpace) Store(id string, value any, err error, ttl time.Duration) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	sv := ShotValue{
		Value:     value,
		Error:     err,
		CreatedAt: time.Now(),
		TTL:       ttl,
	}

	channels, ok := ss.waiting[id]
	if !ok {
		ss.values[id] = sv
		return
	}

	for _, ch := range channels {
		ch <- sv
		close(ch)
	}

	delete(ss.waiting, id)
}

// Await returns a channel that receives the result for id exactly once.
func (ss *ShotSpace) Await(id string) chan ShotValue {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ch := make(chan ShotValue, 1)

	if sv, ok := ss.values[id]; ok {
		delete(ss.values, id)
		ch <- sv
		close(ch)
		return ch
	}

	ss.waiting[id] = append(ss.waiting[id], ch)
	return ch
}

// Pending is the number of parked, unclaimed results.
func (ss *ShotSpace) Pending() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return len(ss.values)
}

func (ss *ShotSpace) cleanup(sweep time.Duration) {
	ticker := time.NewTicker(sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ss.done:
			return
		case <-ticker.C:
			ss.mu.Lock()
			ss.cleanupExpiredValues()
			ss.mu.Unlock()
		}
	}
}

func (ss *ShotSpace) cleanupExpiredValues() {
	now := time.Now()

	for id, sv := range ss.values {
		if sv.TTL > 0 && now.Sub(sv.CreatedAt) > sv.TTL {
			delete(ss.values, id)
		}
	}
}

// Close stops the sweeper. Parked values are dropped.
func (ss *ShotSpace) Close() {
	ss.once.Do(func() {
		close(ss.done)
	})

	ss.wg.Wait()

	ss.mu.Lock()
	ss.values = make(map[string]ShotValue)
	ss.mu.Unlock()
}
