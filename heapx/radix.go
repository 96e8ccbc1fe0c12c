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
	"github.com/galactixx/heapcraft"

	"github.com/RagnarGrootKoerkamp/quickheap"
)

// Radix adapts heapcraft's radix heap to the shared capability. The radix
// heap is monotone: pushing a key below the last popped minimum is a
// contract violation and panics. Benchmarks therefore run it only on
// monotone workloads.
type Radix[K quickheap.Unsigned] struct {
	h *heapcraft.RadixHeap[struct{}, K]
}

// NewRadix returns an empty monotone radix heap.
func NewRadix[K quickheap.Unsigned]() *Radix[K] {
	return &Radix[K]{h: heapcraft.NewRadixHeap[struct{}, K](nil)}
}

// Push inserts k. Panics if k is below the last popped minimum.
func (r *Radix[K]) Push(k K) {
	if err := r.h.Push(struct{}{}, k); err != nil {
		panic("heapx: non-monotone push into radix heap: " + err.Error())
	}
}

// Pop removes and returns the minimum key, or reports false when empty.
func (r *Radix[K]) Pop() (K, bool) {
	k, err := r.h.PopPriority()
	if err != nil {
		return 0, false
	}
	return k, true
}

// Len returns the number of keys in the heap.
func (r *Radix[K]) Len() int { return r.h.Length() }
