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

import "errors"

// ErrReservoirSize is returned by constructors when the requested capacity
// is not positive.
var ErrReservoirSize = errors.New("reservoir: reservoir size must be positive")

// A Sampler maintains a bounded sample of an int64 value stream. All
// implementations in this package are safe for concurrent use.
type Sampler interface {
	// Update offers a value to the sampler. Whether the value is
	// retained, and which retained value it displaces, is up to the
	// sampler's selection policy.
	Update(value int64)

	// Count returns the number of values currently retained. It never
	// exceeds the reservoir size and never exceeds the number of Update
	// calls made since construction or the last Clear.
	Count() int

	// Values returns an independent snapshot of the retained values in
	// unspecified order. Mutating the returned slice does not affect the
	// sampler.
	Values() []int64

	// Clear discards all retained values and resets the observation
	// counter.
	Clear()

	// Copy returns an independent sampler of the same kind holding the
	// same retained values. Subsequent updates to either sampler never
	// affect the other.
	Copy() Sampler
}
