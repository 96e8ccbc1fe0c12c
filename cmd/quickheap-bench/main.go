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

// Command quickheap-bench compares quickheap against the baseline heaps
// over the workload suite, printing each run's time in nanoseconds divided
// by the input size, for a sweep of input sizes.
//
// Usage:
//
//	quickheap-bench [--min-exp 10] [--max-exp 22] [--step 2] \
//	    [--heaps quick,binary,dary8,radix] [--seed 1]
package main

import (
	"fmt"
	"os"

	"github.com/ajroetker/go-highway/hwy"
	flag "github.com/spf13/pflag"

	"github.com/RagnarGrootKoerkamp/quickheap"
	"github.com/RagnarGrootKoerkamp/quickheap/bench"
	"github.com/RagnarGrootKoerkamp/quickheap/heapx"
)

var (
	minExp = flag.Int("min-exp", 10, "smallest input size, as a power of two")
	maxExp = flag.Int("max-exp", 22, "largest input size, as a power of two")
	step   = flag.Int("step", 2, "exponent step between input sizes")
	heaps  = flag.StringSlice("heaps", []string{"quick", "binary", "dary8", "radix"}, "heaps to compare")
	seed   = flag.Uint64("seed", 1, "seed for the workload key streams")
)

type candidate struct {
	mk           bench.Maker[quickheap.Key]
	monotoneOnly bool
}

var candidates = map[string]candidate{
	"quick": {mk: func() heapx.Interface[quickheap.Key] {
		return quickheap.New[quickheap.Key]()
	}},
	"binary": {mk: func() heapx.Interface[quickheap.Key] {
		return heapx.NewBinary[quickheap.Key]()
	}},
	"dary2": {mk: func() heapx.Interface[quickheap.Key] {
		return heapx.NewDary[quickheap.Key](2)
	}},
	"dary4": {mk: func() heapx.Interface[quickheap.Key] {
		return heapx.NewDary[quickheap.Key](4)
	}},
	"dary8": {mk: func() heapx.Interface[quickheap.Key] {
		return heapx.NewDary[quickheap.Key](heapx.DefaultFanout)
	}},
	"radix": {mk: func() heapx.Interface[quickheap.Key] {
		return heapx.NewRadix[quickheap.Key]()
	}, monotoneOnly: true},
}

func main() {
	flag.Parse()

	if *minExp < 1 || *maxExp < *minExp || *step < 1 {
		fmt.Fprintln(os.Stderr, "Error: invalid size sweep")
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "simd target: %s, ns/op, best of 2 runs\n", hwy.CurrentName())
	bench.Header[quickheap.Key](os.Stderr)

	for _, name := range *heaps {
		c, ok := candidates[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown heap %q\n", name)
			os.Exit(1)
		}
		for exp := *minExp; exp <= *maxExp; exp += *step {
			bench.Row(os.Stderr, name, c.mk, 1<<exp, c.monotoneOnly, *seed)
		}
		fmt.Fprintln(os.Stderr)
	}
}
