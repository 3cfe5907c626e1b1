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

// Package randutil provides uniform pseudo-random numbers drawn from
// per-thread generators, safe for concurrent use without hot-path locking.
// Generators are created lazily and seeded independently, so no sequence is
// reproducible across runs.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/atomic"
)

// Generators are checked out of a process-wide pool for the duration of a
// single draw. The pool's per-P free lists mean a running goroutine almost
// always gets back the generator it used last time, with no locking and no
// generator state shared between threads.
var generators = sync.Pool{New: func() interface{} { return newGenerator() }}

// fallbackSeq distinguishes generator streams seeded without system entropy.
var fallbackSeq atomic.Uint64

func newGenerator() *rand.Rand {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// No system entropy. Derive a distinct stream by hashing the
		// wall clock together with a process-wide sequence number.
		binary.LittleEndian.PutUint64(seed[:8], uint64(time.Now().UnixNano()))
		binary.LittleEndian.PutUint64(seed[8:], fallbackSeq.Inc())
		binary.LittleEndian.PutUint64(seed[:8], xxhash.Sum64(seed[:]))
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// Float64 returns a uniform pseudo-random number in [0, 1).
func Float64() float64 {
	g := generators.Get().(*rand.Rand)
	v := g.Float64()
	generators.Put(g)
	return v
}

// Int64 returns a non-negative uniform pseudo-random 63-bit integer.
func Int64() int64 {
	g := generators.Get().(*rand.Rand)
	v := g.Int64()
	generators.Put(g)
	return v
}

// Int64N returns a uniform pseudo-random number in [0, n). It panics if n
// is not positive.
func Int64N(n int64) int64 {
	g := generators.Get().(*rand.Rand)
	defer generators.Put(g)
	return g.Int64N(n)
}
