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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
)

// scalarPushPosition is the reference for the vectorized prefix count.
func scalarPushPosition[K Unsigned](pivots []K, layer int, k K) int {
	count := 0
	for i := 1; i <= layer; i++ {
		if pivots[i] > k {
			count++
		}
	}
	return count
}

func TestPushPositionMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewPCG(20, 21))
	for layer := 0; layer <= 40; layer++ {
		pivots := make([]uint32, 128)
		pivots[0] = ^uint32(0)
		// Distinct decreasing pivots, all at least 1.
		vals := make([]uint32, layer)
		for i := range vals {
			vals[i] = uint32(rng.IntN(1<<30)) + 1
		}
		slices.Sort(vals)
		slices.Reverse(vals)
		copy(pivots[1:], vals)

		keys := []uint32{0, 1, ^uint32(0), ^uint32(0) - 1}
		for i := 0; i < 50; i++ {
			keys = append(keys, uint32(rng.IntN(1<<31)))
		}
		for _, k := range keys {
			got := pushPosition(pivots, layer, k)
			want := scalarPushPosition(pivots, layer, k)
			if got != want {
				t.Fatalf("layer %d key %d: pushPosition = %d, want %d", layer, k, got, want)
			}
		}
	}
}

func TestPositionMin(t *testing.T) {
	rng := rand.New(rand.NewPCG(22, 23))
	for n := 1; n <= 70; n++ {
		s := make([]uint32, n)
		for i := range s {
			s[i] = uint32(rng.IntN(100))
		}
		pos := positionMin(s)
		if pos < 0 || pos >= n {
			t.Fatalf("n=%d: index %d out of range", n, pos)
		}
		if want := slices.Min(s); s[pos] != want {
			t.Fatalf("n=%d: s[%d] = %d, want minimum %d", n, pos, s[pos], want)
		}
	}
}

func TestPositionMinUint64(t *testing.T) {
	rng := rand.New(rand.NewPCG(24, 25))
	for n := 1; n <= 40; n++ {
		s := make([]uint64, n)
		for i := range s {
			s[i] = rng.Uint64()
		}
		pos := positionMin(s)
		if want := slices.Min(s); s[pos] != want {
			t.Fatalf("n=%d: s[%d] = %d, want minimum %d", n, pos, s[pos], want)
		}
	}
}

func TestPositionMinPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty slice")
		}
	}()
	positionMin([]uint32{})
}

// TestPartitionChunk verifies one compress-store step: the valid prefix of
// the vector splits by threshold, order preserved, cursors advanced by the
// respective counts.
func TestPartitionChunk(t *testing.T) {
	lanes := hwy.MaxLanes[uint32]()
	rng := rand.New(rand.NewPCG(26, 27))

	for remaining := 1; remaining <= lanes+3; remaining++ {
		vals := make([]uint32, lanes)
		for i := range vals {
			vals[i] = uint32(rng.IntN(100))
		}
		threshold := uint32(50)

		cur := make([]uint32, 2*lanes)
		next := make([]uint32, 2*lanes)
		curLen, nextLen := 0, 0
		partitionChunk(hwy.Load(vals), remaining, threshold, cur, &curLen, next, &nextLen)

		var wantNext, wantCur []uint32
		for i := 0; i < min(remaining, lanes); i++ {
			if vals[i] < threshold {
				wantNext = append(wantNext, vals[i])
			} else {
				wantCur = append(wantCur, vals[i])
			}
		}
		if nextLen != len(wantNext) || !slices.Equal(next[:nextLen], wantNext) {
			t.Fatalf("remaining=%d: next = %v (len %d), want %v", remaining, next[:nextLen], nextLen, wantNext)
		}
		if curLen != len(wantCur) || !slices.Equal(cur[:curLen], wantCur) {
			t.Fatalf("remaining=%d: cur = %v (len %d), want %v", remaining, cur[:curLen], curLen, wantCur)
		}
	}
}

// TestPartitionChunkCursorAppend checks that successive chunks append at
// the cursors rather than overwrite.
func TestPartitionChunkCursorAppend(t *testing.T) {
	lanes := hwy.MaxLanes[uint32]()
	n := 4 * lanes
	vals := make([]uint32, n)
	for i := range vals {
		vals[i] = uint32(i % 10)
	}
	threshold := uint32(5)

	cur := make([]uint32, n+lanes)
	next := make([]uint32, n+lanes)
	copy(cur, vals)
	curLen, nextLen := 0, 0
	for i := 0; i < n; i += lanes {
		partitionChunk(hwy.Load(cur[i:]), n-i, threshold, cur, &curLen, next, &nextLen)
	}

	var wantNext, wantCur []uint32
	for _, v := range vals {
		if v < threshold {
			wantNext = append(wantNext, v)
		} else {
			wantCur = append(wantCur, v)
		}
	}
	if !slices.Equal(next[:nextLen], wantNext) {
		t.Fatalf("next = %v, want %v", next[:nextLen], wantNext)
	}
	if !slices.Equal(cur[:curLen], wantCur) {
		t.Fatalf("cur = %v, want %v", cur[:curLen], wantCur)
	}
}
