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

//go:build !linux

package stopwatch

import "time"

// Platforms without a direct CLOCK_MONOTONIC read use the runtime's
// monotonic reading carried inside time.Time.
type ticks struct {
	t time.Time
}

func read() ticks {
	return ticks{t: time.Now()}
}

// nanosBetween returns the span from start to end in nanoseconds.
// Subtracting two monotonic readings already saturates at the extremes of
// time.Duration instead of wrapping.
func nanosBetween(start, end ticks) int64 {
	return end.t.Sub(start.t).Nanoseconds()
}
