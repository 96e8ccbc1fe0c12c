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

// Package bench defines the workloads used to compare heap
// implementations and a small driver that times them.
//
// Each workload drives a fresh heap through a run of size n with a
// particular shape: sorted or reverse-sorted pushes, uniform random keys,
// alternating push/pop, and the "natural" staircase that mimics Dijkstra's
// frontier. Times are reported as nanoseconds per unit of n (the run's
// total time divided by n, whatever number of pushes and pops the run
// performs), taking the best of a fixed number of runs.
package bench

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/RagnarGrootKoerkamp/quickheap"
	"github.com/RagnarGrootKoerkamp/quickheap/heapx"
)

// Maker constructs a fresh heap for one timed run.
type Maker[K quickheap.Unsigned] func() heapx.Interface[K]

// Workload is one benchmark shape. Monotone workloads never push a key
// below the last popped minimum and are therefore safe for monotone-only
// heaps such as the radix baseline.
type Workload[K quickheap.Unsigned] struct {
	Name     string
	Monotone bool
	Run      func(mk Maker[K], n int, rng *rand.Rand)
}

// repeats per measurement; the minimum is reported.
const repeats = 2

// Workloads returns the full comparison suite.
func Workloads[K quickheap.Unsigned]() []Workload[K] {
	return []Workload[K]{
		{Name: "push_lin", Monotone: true, Run: pushLinear[K]},
		{Name: "lin", Monotone: true, Run: linear[K]},
		{Name: "push_rev", Monotone: true, Run: pushLinearRev[K]},
		{Name: "rev", Monotone: true, Run: linearRev[K]},
		{Name: "push_rnd", Monotone: true, Run: pushRandom[K]},
		{Name: "natural", Monotone: false, Run: natural[K]},
		{Name: "rnd", Monotone: true, Run: random[K]},
		{Name: "rnd_alt", Monotone: false, Run: randomAlternate[K]},
		{Name: "lin_mix1", Monotone: true, Run: linearMix[K](1)},
		{Name: "lin_mix4", Monotone: true, Run: linearMix[K](4)},
		{Name: "rnd_mix1", Monotone: false, Run: randomMix[K](1)},
		{Name: "rnd_mix4", Monotone: false, Run: randomMix[K](4)},
	}
}

// Time runs w repeatedly on fresh heaps and returns the best run time in
// nanoseconds divided by n. The seed fixes the workload's key stream across heaps so
// every implementation sees identical input.
func Time[K quickheap.Unsigned](w Workload[K], mk Maker[K], n int, seed uint64) float64 {
	best := math.Inf(1)
	for r := 0; r < repeats; r++ {
		rng := rand.New(rand.NewPCG(seed, 1))
		start := time.Now()
		w.Run(mk, n, rng)
		if el := time.Since(start).Seconds(); el < best {
			best = el
		}
	}
	return best / float64(n) * 1e9
}

// Header writes the column legend for Row output.
func Header[K quickheap.Unsigned](out io.Writer) {
	fmt.Fprintf(out, "%-24s %10s", "heap", "n")
	for _, w := range Workloads[K]() {
		fmt.Fprintf(out, " %9s", w.Name)
	}
	fmt.Fprintln(out)
}

// Row times every workload for one heap at one size and writes a
// fixed-width line. Non-monotone workloads are skipped (printed as a dash)
// when monotoneOnly is set.
func Row[K quickheap.Unsigned](out io.Writer, label string, mk Maker[K], n int, monotoneOnly bool, seed uint64) {
	fmt.Fprintf(out, "%-24s %10d", label, n)
	for _, w := range Workloads[K]() {
		if monotoneOnly && !w.Monotone {
			fmt.Fprintf(out, " %9s", "-")
			continue
		}
		fmt.Fprintf(out, " %9.2f", Time(w, mk, n, seed))
	}
	fmt.Fprintln(out)
}

func pushLinear[K quickheap.Unsigned](mk Maker[K], n int, rng *rand.Rand) {
	h := mk()
	for i := 0; i < n; i++ {
		h.Push(K(i))
	}
}

func pushLinearRev[K quickheap.Unsigned](mk Maker[K], n int, rng *rand.Rand) {
	h := mk()
	for i := n - 1; i >= 0; i-- {
		h.Push(K(i))
	}
}

func pushRandom[K quickheap.Unsigned](mk Maker[K], n int, rng *rand.Rand) {
	h := mk()
	for i := 0; i < n; i++ {
		h.Push(K(rng.Uint64()))
	}
}

func linear[K quickheap.Unsigned](mk Maker[K], n int, rng *rand.Rand) {
	h := mk()
	for i := 0; i < n; i++ {
		h.Push(K(i))
	}
	for i := 0; i < n; i++ {
		h.Pop()
	}
}

func linearRev[K quickheap.Unsigned](mk Maker[K], n int, rng *rand.Rand) {
	h := mk()
	for i := n - 1; i >= 0; i-- {
		h.Push(K(i))
	}
	for i := 0; i < n; i++ {
		h.Pop()
	}
}

func random[K quickheap.Unsigned](mk Maker[K], n int, rng *rand.Rand) {
	h := mk()
	for i := 0; i < n; i++ {
		h.Push(K(rng.Uint64()))
	}
	for i := 0; i < n; i++ {
		h.Pop()
	}
}

func randomAlternate[K quickheap.Unsigned](mk Maker[K], n int, rng *rand.Rand) {
	h := mk()
	for i := 0; i < n; i++ {
		h.Push(K(rng.Uint64()))
	}
	for i := 0; i < n; i++ {
		h.Push(K(rng.Uint64()))
		h.Pop()
	}
}

// linearMix interleaves every push of an increasing key with k pop/push
// pairs, then drains the same way.
func linearMix[K quickheap.Unsigned](k int) func(Maker[K], int, *rand.Rand) {
	return func(mk Maker[K], n int, rng *rand.Rand) {
		h := mk()
		x := 0
		for i := 0; i < n; i++ {
			h.Push(K(x))
			x++
			for j := 0; j < k; j++ {
				h.Pop()
				h.Push(K(x))
				x++
			}
		}
		for i := 0; i < n; i++ {
			h.Pop()
			for j := 0; j < k; j++ {
				h.Push(K(x))
				x++
				h.Pop()
			}
		}
	}
}

func randomMix[K quickheap.Unsigned](k int) func(Maker[K], int, *rand.Rand) {
	return func(mk Maker[K], n int, rng *rand.Rand) {
		h := mk()
		for i := 0; i < n; i++ {
			h.Push(K(rng.Uint64()))
			for j := 0; j < k; j++ {
				h.Pop()
				h.Push(K(rng.Uint64()))
			}
		}
		for i := 0; i < n; i++ {
			h.Pop()
			for j := 0; j < k; j++ {
				h.Push(K(rng.Uint64()))
				h.Pop()
			}
		}
	}
}

// natural mimics a shortest-path frontier: a staircase of rounds
// i = 0..sqrt(n) (sqrt(n)+1 rounds) where round i pops i times and pushes
// sqrt(n)-i random keys.
func natural[K quickheap.Unsigned](mk Maker[K], n int, rng *rand.Rand) {
	h := mk()
	s := int(math.Sqrt(float64(n)))
	for i := 0; i <= s; i++ {
		for j := 0; j < s; j++ {
			if j < i {
				h.Pop()
			} else {
				h.Push(K(rng.Uint64()))
			}
		}
	}
}
