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
	"sync"

	"go.uber.org/atomic"

	"github.com/prometheus/sampling/randutil"
)

// uniform samples with Vitter's Algorithm R: once the reservoir is full,
// the n-th observation replaces a random slot with probability size/n.
// Every observation of the stream ends up retained with equal probability,
// no matter how long the stream runs.
//
// See Vitter: "Random Sampling with a Reservoir", ACM TOMS 11(1), 1985.
// https://www.cs.umd.edu/~samir/498/vitter.pdf
type uniform struct {
	size int

	mtx    sync.RWMutex
	values []int64

	count atomic.Int64

	randi func(n int64) int64 // uniform draw from [0, n)
}

// NewUniform returns a Sampler of at most size values drawn uniformly from
// the whole observed stream. It returns ErrReservoirSize if size is not
// positive.
func NewUniform(size int) (Sampler, error) {
	if size <= 0 {
		return nil, ErrReservoirSize
	}
	return &uniform{
		size:   size,
		values: make([]int64, 0, size),
		randi:  randutil.Int64N,
	}, nil
}

// MustNewUniform is like NewUniform but panics where NewUniform would have
// returned an error.
func MustNewUniform(size int) Sampler {
	s, err := NewUniform(size)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *uniform) Update(v int64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	n := s.count.Inc()
	if len(s.values) < s.size {
		s.values = append(s.values, v)
	} else if j := s.randi(n); j < int64(s.size) {
		s.values[j] = v
	}
}

func (s *uniform) Count() int {
	if n := s.count.Load(); n < int64(s.size) {
		return int(n)
	}
	return s.size
}

func (s *uniform) Values() []int64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return append([]int64(nil), s.values...)
}

func (s *uniform) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.values = s.values[:0]
	s.count.Store(0)
}

func (s *uniform) Copy() Sampler {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	cp := &uniform{
		size:   s.size,
		values: append(make([]int64, 0, s.size), s.values...),
		randi:  s.randi,
	}
	cp.count.Store(s.count.Load())
	return cp
}
