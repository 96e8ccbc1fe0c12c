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

import "github.com/ajroetker/go-highway/hwy"

// Vectorized kernels backing Push, Pop and partition. All three process
// full vectors with the hwy primitives. pushPosition and positionMin finish
// sub-vector tails with scalar code; partitionChunk masks the final,
// partially filled vector instead.

// pushPosition returns the target layer for key k: the number of pivots in
// pivots[1..=layer] that are strictly greater than k. Unused layers hold
// the sentinel 0, which is never strictly greater than any key, so the
// count is well defined even for k = 0.
func pushPosition[K Unsigned](pivots []K, layer int, k K) int {
	lanes := hwy.MaxLanes[K]()
	count := 0

	i := 1
	if layer >= lanes {
		kv := hwy.Set(k)
		for ; i+lanes <= layer+1; i += lanes {
			v := hwy.Load(pivots[i:])
			count += hwy.CountTrue(hwy.GreaterThan(v, kv))
		}
	}
	for ; i <= layer; i++ {
		if pivots[i] > k {
			count++
		}
	}
	return count
}

// positionMin returns the index of a minimum element of s. Ties resolve to
// an arbitrary one of the minima. Panics if s is empty.
func positionMin[K Unsigned](s []K) int {
	n := len(s)
	if n == 0 {
		panic("quickheap: positionMin called on empty bucket")
	}

	lanes := hwy.MaxLanes[K]()
	if n < lanes {
		return scalarPositionMin(s)
	}

	// Running minima and their indices, one candidate per lane.
	minVals := hwy.Load(s)
	minIdxs := hwy.Iota[K]()

	i := lanes
	for ; i+lanes <= n; i += lanes {
		vals := hwy.Load(s[i:])
		idxs := hwy.Add(hwy.Set(K(i)), hwy.Iota[K]())
		mask := hwy.LessThan(vals, minVals)
		minVals = hwy.IfThenElse(mask, vals, minVals)
		minIdxs = hwy.IfThenElse(mask, idxs, minIdxs)
	}

	// Fold the per-lane candidates.
	valsData := minVals.Data()
	idxsData := minIdxs.Data()
	best := int(idxsData[0])
	bestVal := valsData[0]
	for j := 1; j < lanes; j++ {
		if valsData[j] < bestVal {
			bestVal = valsData[j]
			best = int(idxsData[j])
		}
	}

	// Scalar tail.
	for ; i < n; i++ {
		if s[i] < bestVal {
			bestVal = s[i]
			best = i
		}
	}
	return best
}

func scalarPositionMin[K Unsigned](s []K) int {
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[best] {
			best = i
		}
	}
	return best
}

// partitionChunk splits one vector v of keys against threshold: lanes with
// key < threshold are compress-stored into next at *nextLen, the rest into
// cur at *curLen, and the cursors advance by the respective lane counts.
// Both stores write a full vector; the callers guarantee at least a
// vector's worth of slack past each cursor, and the cursors alone define
// the logical lengths. remaining clamps the final, partially filled vector
// so that lanes past the live region contribute to neither side.
func partitionChunk[K Unsigned](v hwy.Vec[K], remaining int, threshold K, cur []K, curLen *int, next []K, nextLen *int) {
	lanes := hwy.MaxLanes[K]()
	valid := hwy.FirstN[K](min(remaining, lanes))

	below := hwy.MaskAnd(hwy.LessThan(v, hwy.Set(threshold)), valid)
	kept := hwy.MaskAndNot(below, valid)

	down, nDown := hwy.Compress(v, below)
	hwy.Store(down, next[*nextLen:])
	*nextLen += nDown

	stay, nStay := hwy.Compress(v, kept)
	hwy.Store(stay, cur[*curLen:])
	*curLen += nStay
}
