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
	"testing"
)

func benchmarkRandom(b *testing.B, n int) {
	rng := rand.New(rand.NewPCG(28, 29))
	keys := make([]uint32, n)
	for i := range keys {
		keys[i] = uint32(rng.Uint64())
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := NewSeeded[uint32](30)
		for _, k := range keys {
			h.Push(k)
		}
		for range keys {
			h.Pop()
		}
	}
}

func BenchmarkRandom_1024(b *testing.B) { benchmarkRandom(b, 1024) }

func BenchmarkRandom_65536(b *testing.B) { benchmarkRandom(b, 65536) }

func BenchmarkRandom_1048576(b *testing.B) { benchmarkRandom(b, 1<<20) }

// benchmarkMonotone is the motivating workload: monotone pops with local
// random pushes, as in shortest-path relaxation.
func benchmarkMonotone(b *testing.B, n int) {
	rng := rand.New(rand.NewPCG(31, 32))
	offsets := make([]uint32, n)
	for i := range offsets {
		offsets[i] = uint32(rng.IntN(1000))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := NewSeeded[uint32](33)
		h.Push(0)
		for _, d := range offsets {
			l, _ := h.Pop()
			h.Push(l + d)
			h.Push(l + d/2)
		}
		for !h.IsEmpty() {
			h.Pop()
		}
	}
}

func BenchmarkMonotone_1024(b *testing.B) { benchmarkMonotone(b, 1024) }

func BenchmarkMonotone_65536(b *testing.B) { benchmarkMonotone(b, 65536) }

func BenchmarkPush(b *testing.B) {
	h := NewSeeded[uint32](34)
	rng := rand.New(rand.NewPCG(35, 36))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Push(uint32(rng.Uint64()))
	}
}
