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

// Package quickheap implements a min-priority queue for small fixed-width
// unsigned integer keys, optimized for monotone and near-monotone workloads
// such as Dijkstra-style shortest-path relaxation.
//
// # Algorithm
//
// The heap keeps its keys in a short stack of buckets. Each bucket holds the
// keys of one "layer", bounded above by a pivot; pivots decrease from layer
// to layer, so the active (topmost) layer always contains the global
// minimum. Push locates the target layer with a vectorized scan over the
// pivot prefix and appends. Pop splits the active bucket with a vectorized
// quicksort-style partition until it is small, then extracts the minimum
// with a vectorized linear scan and a swap-remove.
//
// Compared to a binary or d-ary heap, almost all work happens on a small,
// cache-resident bucket, and the partition inner loop is branchless: each
// SIMD block is compared against the pivot and compress-stored into the two
// output buckets in one step.
//
// # Usage
//
//	h := quickheap.New[uint32]()
//	h.Push(42)
//	h.Push(7)
//	k, ok := h.Pop() // 7, true
//
// Keys are uint32 by default. Build with the quickheap64 tag to make the
// Key alias 64-bit; both widths are always available through the generic
// type parameter.
//
// # Limitations
//
// Only Push and Pop (plus Len/IsEmpty conveniences) are provided: no
// decrease-key, no arbitrary delete, no merge. Equal keys pop in
// unspecified order. A Heap is single-owner; concurrent mutation is not
// supported.
//
// SIMD acceleration comes from github.com/ajroetker/go-highway/hwy and
// follows its runtime dispatch (AVX2, AVX-512, NEON, or the portable
// fallback).
package quickheap
