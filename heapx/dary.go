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

// DefaultFanout is the d-ary fanout used by the headline baseline. Eight
// children per node keeps a sift-down within one cache line of uint32 keys.
const DefaultFanout = 8

// Dary is a flat-array d-ary min-heap with configurable fanout.
type Dary[K quickheap.Unsigned] struct {
	fanout int
	keys   []K
}

// NewDary returns an empty d-ary min-heap. Panics if fanout < 2.
func NewDary[K quickheap.Unsigned](fanout int) *Dary[K] {
	if fanout < 2 {
		panic(fmt.Sprintf("heapx: d-ary fanout %d out of range", fanout))
	}
	return &Dary[K]{fanout: fanout}
}

// Push inserts k.
func (d *Dary[K]) Push(k K) {
	d.keys = append(d.keys, k)
	i := len(d.keys) - 1
	for i > 0 {
		parent := (i - 1) / d.fanout
		if d.keys[parent] <= k {
			break
		}
		d.keys[i] = d.keys[parent]
		i = parent
	}
	d.keys[i] = k
}

// Pop removes and returns the minimum key, or reports false when empty.
func (d *Dary[K]) Pop() (K, bool) {
	n := len(d.keys)
	if n == 0 {
		return 0, false
	}
	minKey := d.keys[0]
	last := d.keys[n-1]
	d.keys = d.keys[:n-1]
	n--
	if n > 0 {
		i := 0
		for {
			first := i*d.fanout + 1
			if first >= n {
				break
			}
			best := first
			end := min(first+d.fanout, n)
			for c := first + 1; c < end; c++ {
				if d.keys[c] < d.keys[best] {
					best = c
				}
			}
			if d.keys[best] >= last {
				break
			}
			d.keys[i] = d.keys[best]
			i = best
		}
		d.keys[i] = last
	}
	return minKey, true
}

// Len returns the number of keys in the heap.
func (d *Dary[K]) Len() int { return len(d.keys) }
