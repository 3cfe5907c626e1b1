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

// Package reservoir provides fixed-capacity samplers that maintain
// statistically representative subsets of unbounded streams of observed
// int64 values, such as request latencies.
//
// Three selection policies are available. NewExpDecay keeps a sample
// exponentially biased toward recent observations and is the usual choice
// for long-running processes, NewUniform keeps every observation with equal
// probability, and NewWindow keeps exactly the most recent observations.
//
// Samplers only retain values. Deriving statistics such as quantiles from
// the retained sample is the caller's business, working from the snapshot
// returned by Values.
package reservoir
