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

// Package heapx defines the heap capability shared by quickheap and the
// baseline heaps it is compared against, and provides those baselines:
// a container/heap binary heap, a flat-array d-ary heap, and an adapter
// for heapcraft's monotone radix heap. Lockstep composes two heaps for
// cross-checking.
package heapx

import (
	stdheap "container/heap"

	"github.com/RagnarGrootKoerkamp/quickheap"
)

// Interface is the capability every heap under comparison provides:
// insert a key, extract the minimum. Pop reports false on an empty heap.
type Interface[K quickheap.Unsigned] interface {
	Push(K)
	Pop() (K, bool)
}

var _ Interface[uint32] = (*quickheap.Heap[uint32])(nil)
var _ Interface[uint64] = (*quickheap.Heap[uint64])(nil)

// Binary is the reference binary min-heap, backed by container/heap.
type Binary[K quickheap.Unsigned] struct {
	keys keySlice[K]
}

// NewBinary returns an empty binary min-heap.
func NewBinary[K quickheap.Unsigned]() *Binary[K] {
	return &Binary[K]{}
}

// Push inserts k.
func (b *Binary[K]) Push(k K) {
	stdheap.Push(&b.keys, k)
}

// Pop removes and returns the minimum key, or reports false when empty.
func (b *Binary[K]) Pop() (K, bool) {
	if len(b.keys) == 0 {
		return 0, false
	}
	return stdheap.Pop(&b.keys).(K), true
}

// Len returns the number of keys in the heap.
func (b *Binary[K]) Len() int { return len(b.keys) }

// keySlice implements container/heap.Interface as a min-heap of keys.
type keySlice[K quickheap.Unsigned] []K

func (s keySlice[K]) Len() int           { return len(s) }
func (s keySlice[K]) Less(i, j int) bool { return s[i] < s[j] }
func (s keySlice[K]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func (s *keySlice[K]) Push(x any) {
	*s = append(*s, x.(K))
}

func (s *keySlice[K]) Pop() any {
	old := *s
	n := len(old) - 1
	k := old[n]
	*s = old[:n]
	return k
}
