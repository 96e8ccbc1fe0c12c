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

package quickheap

import (
	"fmt"
	"math/rand/v2"

	"github.com/ajroetker/go-highway/hwy"
)

// Unsigned constrains heap keys to the supported fixed-width unsigned
// integer types.
type Unsigned interface {
	~uint32 | ~uint64
}

const (
	// DefaultBucketLimit is the bucket size above which Pop partitions the
	// active layer before scanning for the minimum.
	DefaultBucketLimit = 16

	// DefaultPivotSamples is the number of random samples whose median
	// becomes the partition pivot. Must be odd.
	DefaultPivotSamples = 3

	// initialLayers sizes the pivot and bucket spines at construction.
	// Both grow on demand; this is a hint, not a bound.
	initialLayers = 128

	// maxSplitRetries bounds consecutive failed splits within one Pop.
	// After that the minimum is extracted from the oversized bucket
	// directly and splitting resumes on a later Pop.
	maxSplitRetries = 4
)

// Heap is a min-priority queue over unsigned integer keys.
//
// Keys live in a stack of buckets. buckets[i] holds keys below pivots[i],
// and pivots decrease as i grows, so buckets[layer] (the topmost occupied
// bucket) always contains the minimum. pivots[i] stores an exclusive upper
// bound, normally the sampled pivot plus one (a split at the maximum key
// stores the key itself); the zero value marks an unused layer. Layers above
// layer are empty and, except during a split, every layer at or below it
// is not.
//
// A Heap is not safe for concurrent use.
type Heap[K Unsigned] struct {
	layer   int
	pivots  []K
	buckets [][]K
	size    int

	limit   int // bucket size that triggers partitioning
	samples int // random pivot samples per split, odd

	rng        *rand.Rand
	sampleKeys []K
	samplePos  []int
}

// New returns an empty heap with the default tuning (bucket limit 16,
// median of 3 pivot samples) and a randomly seeded pivot sampler.
func New[K Unsigned]() *Heap[K] {
	return NewTuned[K](DefaultBucketLimit, DefaultPivotSamples)
}

// NewSeeded is New with a deterministic pivot sampler, for reproducible
// runs and tests.
func NewSeeded[K Unsigned](seed uint64) *Heap[K] {
	h := New[K]()
	h.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return h
}

// NewTuned returns an empty heap with explicit tuning parameters.
// bucketLimit is the bucket size above which Pop partitions; pivotSamples
// is the number of random samples per split and must be odd. Panics on
// invalid parameters.
func NewTuned[K Unsigned](bucketLimit, pivotSamples int) *Heap[K] {
	if bucketLimit < 1 {
		panic(fmt.Sprintf("quickheap: bucket limit %d out of range", bucketLimit))
	}
	if pivotSamples < 1 || pivotSamples%2 == 0 {
		panic(fmt.Sprintf("quickheap: pivot sample count %d must be odd", pivotSamples))
	}
	pivots := make([]K, initialLayers)
	pivots[0] = ^K(0)
	return &Heap[K]{
		pivots:     pivots,
		buckets:    make([][]K, initialLayers),
		limit:      bucketLimit,
		samples:    pivotSamples,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		sampleKeys: make([]K, pivotSamples),
		samplePos:  make([]int, pivotSamples),
	}
}

// Len returns the number of keys in the heap.
func (h *Heap[K]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no keys.
func (h *Heap[K]) IsEmpty() bool { return h.size == 0 }

// Push inserts k.
func (h *Heap[K]) Push(k K) {
	j := pushPosition(h.pivots, h.layer, k)
	h.buckets[j] = append(h.buckets[j], k)
	h.size++
}

// Pop removes and returns the minimum key. The second result is false when
// the heap is empty.
func (h *Heap[K]) Pop() (K, bool) {
	// Only the active layer can be empty, and then only at layer 0.
	if len(h.buckets[h.layer]) == 0 {
		return 0, false
	}

	// Split the active bucket until it is small enough to scan.
	for retries := 0; len(h.buckets[h.layer]) > h.limit; {
		if h.partition() {
			retries = 0
			continue
		}
		retries++
		if retries == maxSplitRetries {
			// Unlucky pivots, or a bucket of identical keys that cannot
			// split. The minimum is still here; scan it as is.
			break
		}
	}

	b := h.buckets[h.layer]
	pos := positionMin(b)
	minKey := b[pos]

	// Swap-remove.
	last := len(b) - 1
	b[pos] = b[last]
	b = b[:last]
	h.buckets[h.layer] = b
	h.size--

	if len(b) == 0 && h.layer > 0 {
		h.pivots[h.layer] = 0
		h.layer--
	}
	return minKey, true
}

// partition splits the active bucket against a sampled pivot, moving every
// key below it into the next layer. Returns true when the active layer
// advanced, false when the split made no progress (pivot was the bucket
// maximum, or the bucket is uniform at the maximum representable key).
func (h *Heap[K]) partition() bool {
	lanes := hwy.MaxLanes[K]()

	// Extend the spines when the next layer would be the last slot.
	if h.layer+2 == len(h.pivots) {
		h.pivots = append(h.pivots, make([]K, lanes)...)
		h.buckets = append(h.buckets, make([][]K, lanes)...)
	}

	cur := h.buckets[h.layer]
	n := len(cur)
	pivot, pivotPos := h.samplePivot(cur)

	// Pad both buckets with a zeroed tail so partitionChunk can always
	// store a full vector past the live region.
	next := h.buckets[h.layer+1][:0]
	cur = padTo(cur, n+lanes)
	next = padTo(next, n+lanes)

	curLen, nextLen := 0, 0
	if pivot == ^K(0) {
		// The maximum representable key admits no exclusive bound of
		// pivot+1. Peel off everything below it; the sampled key itself
		// stays, so the split fails only on a uniform bucket.
		for i := 0; i < n; i += lanes {
			partitionChunk(hwy.Load(cur[i:]), n-i, pivot, cur, &curLen, next, &nextLen)
		}
		if nextLen == 0 {
			h.buckets[h.layer] = cur[:n]
			h.buckets[h.layer+1] = next[:0]
			return false
		}
		h.pivots[h.layer+1] = pivot
	} else {
		// Stored bounds are exclusive and offset by one so that 0 stays
		// reserved for unused layers.
		h.pivots[h.layer+1] = pivot + 1

		// Two thresholds: chunks up to the sampled position also move
		// keys equal to the pivot down (so the next layer is never
		// empty); later chunks keep them, so a bucket of duplicates
		// still splits in two.
		half := roundUp(pivotPos+1, lanes)
		for i := 0; i < half; i += lanes {
			partitionChunk(hwy.Load(cur[i:]), n-i, pivot+1, cur, &curLen, next, &nextLen)
		}
		for i := half; i < n; i += lanes {
			partitionChunk(hwy.Load(cur[i:]), n-i, pivot, cur, &curLen, next, &nextLen)
		}
	}

	if curLen == 0 {
		// The pivot was the bucket maximum: every key moved down. Undo
		// the split and let the caller resample.
		h.buckets[h.layer] = next[:nextLen]
		h.buckets[h.layer+1] = cur[:0]
		h.pivots[h.layer+1] = 0
		return false
	}

	h.buckets[h.layer] = cur[:curLen]
	h.buckets[h.layer+1] = next[:nextLen]
	h.layer++
	return true
}

// samplePivot draws the configured number of random samples from cur and
// returns the median key and its original position.
func (h *Heap[K]) samplePivot(cur []K) (K, int) {
	n := len(cur)
	keys, pos := h.sampleKeys, h.samplePos
	for i := range keys {
		p := h.rng.IntN(n)
		keys[i], pos[i] = cur[p], p
	}
	// Insertion sort by (key, position); the sample count is tiny.
	for i := 1; i < len(keys); i++ {
		k, p := keys[i], pos[i]
		j := i - 1
		for j >= 0 && (keys[j] > k || (keys[j] == k && pos[j] > p)) {
			keys[j+1], pos[j+1] = keys[j], pos[j]
			j--
		}
		keys[j+1], pos[j+1] = k, p
	}
	m := len(keys) / 2
	return keys[m], pos[m]
}

// padTo extends s with zeroed entries up to length n.
func padTo[K Unsigned](s []K, n int) []K {
	return append(s, make([]K, n-len(s))...)
}

// roundUp rounds x up to the next multiple of m.
func roundUp(x, m int) int {
	return (x + m - 1) / m * m
}
