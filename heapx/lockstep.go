// Copyright 2025 quickheap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package heapx

import (
	"fmt"

	"github.com/RagnarGrootKoerkamp/quickheap"
)

// Lockstep drives two heaps through identical operations and requires
// every Pop to agree. It is a testing double: running a workload through
// Lockstep(quickheap, reference) checks the full pop sequence for free.
// Divergence is a bug in one of the heaps and panics.
type Lockstep[K quickheap.Unsigned] struct {
	a, b Interface[K]
}

// NewLockstep composes two heaps into a lock-step pair.
func NewLockstep[K quickheap.Unsigned](a, b Interface[K]) *Lockstep[K] {
	return &Lockstep[K]{a: a, b: b}
}

// Push inserts k into both heaps.
func (l *Lockstep[K]) Push(k K) {
	l.a.Push(k)
	l.b.Push(k)
}

// Pop pops both heaps and returns the shared result. Panics if the two
// heaps disagree.
func (l *Lockstep[K]) Pop() (K, bool) {
	ka, oka := l.a.Pop()
	kb, okb := l.b.Pop()
	if oka != okb || (oka && ka != kb) {
		panic(fmt.Sprintf("heapx: lock-step divergence: (%v, %v) vs (%v, %v)", ka, oka, kb, okb))
	}
	return ka, oka
}
