// Copyright 2025 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reservoir

import (
	"math"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/tidwall/btree"
	"go.uber.org/atomic"

	"github.com/prometheus/sampling/randutil"
	"github.com/prometheus/sampling/stopwatch"
)

// rescaleThreshold is how much stopwatch time may pass before the stored
// priorities are re-expressed against a fresh landmark.
const rescaleThreshold = time.Hour

// expDecay samples with a forward-decaying priority reservoir. Every
// observation is ranked by exp(alpha*t)/u, where t is the time since a
// landmark and u a fresh uniform variate, and the reservoir keeps the
// highest-ranked observations. Dividing the decay weight by a random
// variate is what turns time-weighted sampling into a plain "keep the
// largest priorities" selection, so the minimum entry is always the
// eviction candidate.
//
// See Cormode, Shkapenyuk, Srivastava, Xu: "Forward Decay: A Practical
// Time Decay Model for Streaming Systems", ICDE '09.
// http://dimacs.rutgers.edu/~graham/pubs/papers/fwdecay.pdf
type expDecay struct {
	size  int
	alpha float64

	// mtx guards entries and landmark. Mutations and the rescale rewrite
	// take the write lock, snapshots the read lock; the map itself is
	// not safe for unsynchronized mutation.
	mtx      sync.RWMutex
	entries  *btree.Map[float64, int64] // priority → value, minimum first
	landmark int64                      // decay time origin, Unix seconds

	// count and nextRescale are read outside the critical section, so
	// they are atomics independent of mtx.
	count       atomic.Int64 // updates ever observed; reset only by Clear
	nextRescale atomic.Int64 // stopwatch reading past which Update must rescale

	clk     clock.Clock    // wall-clock source for the landmark
	elapsed func() int64   // monotonic nanoseconds since construction
	randf   func() float64 // uniform variate source in [0, 1)
}

// NewExpDecay returns a Sampler of at most size values whose retention is
// exponentially biased toward recent observations. Larger alpha values bias
// more strongly toward the present; an alpha of zero does not decay at all,
// making retention uniform over the stream. It returns ErrReservoirSize if
// size is not positive.
func NewExpDecay(size int, alpha float64) (Sampler, error) {
	if size <= 0 {
		return nil, ErrReservoirSize
	}
	return newExpDecay(size, alpha, clock.New()), nil
}

// MustNewExpDecay is like NewExpDecay but panics where NewExpDecay would
// have returned an error.
func MustNewExpDecay(size int, alpha float64) Sampler {
	s, err := NewExpDecay(size, alpha)
	if err != nil {
		panic(err)
	}
	return s
}

func newExpDecay(size int, alpha float64, clk clock.Clock) *expDecay {
	return &expDecay{
		size:     size,
		alpha:    alpha,
		entries:  new(btree.Map[float64, int64]),
		landmark: clk.Now().Unix(),
		clk:      clk,
		elapsed:  stopwatch.New().ElapsedNanos,
		randf:    randutil.Float64,
	}
}

// Update offers a value to the reservoir. Below capacity every value is
// retained. At capacity the value replaces the lowest-priority entry if it
// outranks it and is discarded otherwise.
func (s *expDecay) Update(v int64) {
	now := s.clk.Now().Unix()

	s.mtx.Lock()
	priority := s.priority(now)
	if n := s.count.Inc(); n <= int64(s.size) {
		s.entries.Set(priority, v)
	} else if minKey, _, ok := s.entries.Min(); ok && priority > minKey {
		// Ties keep the incumbent, both on rank against the minimum
		// and on the (vanishingly rare) exact priority collision.
		if _, taken := s.entries.Get(priority); !taken {
			s.entries.Set(priority, v)
			s.entries.Delete(minKey)
		}
	}
	s.mtx.Unlock()

	if elapsed, next := s.elapsed(), s.nextRescale.Load(); elapsed >= next {
		s.rescale(elapsed, next)
	}
}

// priority ranks a value observed at now (Unix seconds) against the current
// landmark. The variate must fall in the open interval (0, 1): zero would
// divide to +Inf, and a non-finite key breaks the ordering of the entry
// map, so zero draws are redrawn. Callers must hold mtx.
func (s *expDecay) priority(now int64) float64 {
	u := s.randf()
	for u == 0 {
		u = s.randf()
	}
	return math.Exp(s.alpha*float64(now-s.landmark)) / u
}

// Count returns the number of retained values, at most the reservoir size.
func (s *expDecay) Count() int {
	if n := s.count.Load(); n < int64(s.size) {
		return int(n)
	}
	return s.size
}

// Values returns an independent snapshot of the retained values.
func (s *expDecay) Values() []int64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.entries.Values()
}

// Clear discards all retained values, resets the observation counter, and
// moves the decay landmark to now. The rescale deadline is deliberately
// left alone: the rescale cadence follows the sampler's lifetime, not its
// contents.
func (s *expDecay) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.entries = new(btree.Map[float64, int64])
	s.count.Store(0)
	s.landmark = s.clk.Now().Unix()
}

// Copy returns an independent sampler with the same configuration, retained
// values, counters, and rescale deadline. The copy keeps observing the
// original's stopwatch so the inherited deadline stays meaningful; a fresh
// stopwatch would silently defer the copy's first rescale by up to the full
// threshold.
func (s *expDecay) Copy() Sampler {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	cp := &expDecay{
		size:     s.size,
		alpha:    s.alpha,
		entries:  s.entries.Copy(),
		landmark: s.landmark,
		clk:      s.clk,
		elapsed:  s.elapsed,
		randf:    s.randf,
	}
	cp.count.Store(s.count.Load())
	cp.nextRescale.Store(s.nextRescale.Load())
	return cp
}

// rescale re-expresses every stored priority relative to a fresh landmark.
// Forward-decay weights grow as exp(alpha*t) for as long as the sampler
// lives, so without the periodic landmark shift the keys would eventually
// overflow to +Inf. Multiplying every key by exp(-alpha*(new-old)) moves
// the coordinate system without changing which values are retained or how
// they rank against each other.
//
// The compare-and-set on the deadline picks a single winner among the
// concurrent callers that observed the crossing; losers return without side
// effects.
func (s *expDecay) rescale(now, next int64) {
	if !s.nextRescale.CompareAndSwap(next, now+rescaleThreshold.Nanoseconds()) {
		return
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	old := s.landmark
	s.landmark = s.clk.Now().Unix()
	factor := math.Exp(-s.alpha * float64(s.landmark-old))

	rescaled := new(btree.Map[float64, int64])
	s.entries.Scan(func(priority float64, v int64) bool {
		rescaled.Set(priority*factor, v)
		return true
	})
	s.entries = rescaled
}
