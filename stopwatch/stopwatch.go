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

// Package stopwatch measures elapsed time from a fixed starting point using
// the platform's monotonic clock.
package stopwatch

import "time"

// A Stopwatch reports the time elapsed since its construction. Readings come
// from a monotonic clock, so they are unaffected by wall-clock adjustments
// and never decrease. The zero value is not useful; use New.
//
// A Stopwatch is safe for concurrent use.
type Stopwatch struct {
	start ticks
}

// New returns a Stopwatch started now.
func New() *Stopwatch {
	return &Stopwatch{start: read()}
}

// ElapsedNanos returns the number of nanoseconds elapsed since the Stopwatch
// was started. Spans too wide for nanosecond representation are reported at
// millisecond precision and saturate at the maximum int64 instead of
// wrapping.
func (s *Stopwatch) ElapsedNanos() int64 {
	return nanosBetween(s.start, read())
}

// Elapsed returns the time elapsed since the Stopwatch was started.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Duration(s.ElapsedNanos())
}
