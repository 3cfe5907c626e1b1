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

//go:build linux

package stopwatch

import (
	"math"
	"time"

	"golang.org/x/sys/unix"
)

// ticks is a raw CLOCK_MONOTONIC reading. The timespec fields are widened to
// int64 on capture so the span arithmetic below is the same on 32-bit and
// 64-bit platforms.
type ticks struct {
	sec, nsec int64
}

func read() ticks {
	var ts unix.Timespec
	// ClockGettime cannot fail for CLOCK_MONOTONIC on any kernel this
	// build targets; a failed reading would leave ts zero and shorten
	// one span.
	_ = unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	return ticks{sec: int64(ts.Sec), nsec: int64(ts.Nsec)}
}

const (
	nanosPerSecond  = int64(time.Second)
	nanosPerMilli   = int64(time.Millisecond)
	millisPerSecond = int64(time.Second / time.Millisecond)

	// maxNanoSeconds is the widest seconds component that can be scaled
	// to nanoseconds with room left for the sub-second part.
	maxNanoSeconds = math.MaxInt64/nanosPerSecond - 1
)

// nanosBetween returns the span from start to end in nanoseconds. The
// sub-second difference may be negative; it is folded into the total rather
// than normalized. Spans whose seconds component cannot be expressed in
// nanoseconds fall back to millisecond arithmetic scaled back up, and
// saturate at math.MaxInt64 when even that overflows.
func nanosBetween(start, end ticks) int64 {
	sec := end.sec - start.sec
	nsec := end.nsec - start.nsec
	if sec <= maxNanoSeconds {
		return sec*nanosPerSecond + nsec
	}
	if sec >= math.MaxInt64/millisPerSecond-1 {
		return math.MaxInt64
	}
	millis := sec*millisPerSecond + nsec/nanosPerMilli
	if millis >= math.MaxInt64/nanosPerMilli {
		return math.MaxInt64
	}
	return millis * nanosPerMilli
}
