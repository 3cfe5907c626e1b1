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
)

// window retains exactly the last size observations in a ring. Unlike the
// probabilistic policies it never discards a recent value in favor of an
// old one, which makes it the right choice when the consumer wants "what
// just happened" rather than a summary of the whole stream.
type window struct {
	size int

	mtx    sync.RWMutex
	values []int64

	count atomic.Int64
}

// NewWindow returns a Sampler retaining the size most recent values. It
// returns ErrReservoirSize if size is not positive.
func NewWindow(size int) (Sampler, error) {
	if size <= 0 {
		return nil, ErrReservoirSize
	}
	return &window{
		size:   size,
		values: make([]int64, 0, size),
	}, nil
}

// MustNewWindow is like NewWindow but panics where NewWindow would have
// returned an error.
func MustNewWindow(size int) Sampler {
	s, err := NewWindow(size)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *window) Update(v int64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	n := s.count.Inc()
	if len(s.values) < s.size {
		s.values = append(s.values, v)
	} else {
		s.values[(n-1)%int64(s.size)] = v
	}
}

func (s *window) Count() int {
	if n := s.count.Load(); n < int64(s.size) {
		return int(n)
	}
	return s.size
}

func (s *window) Values() []int64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return append([]int64(nil), s.values...)
}

func (s *window) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.values = s.values[:0]
	s.count.Store(0)
}

func (s *window) Copy() Sampler {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	cp := &window{
		size:   s.size,
		values: append(make([]int64, 0, s.size), s.values...),
	}
	cp.count.Store(s.count.Load())
	return cp
}
