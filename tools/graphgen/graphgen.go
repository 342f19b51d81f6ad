// graphgen.go is a tiny helper utility that generates deterministic random
// component-graph descriptions for scheduler benchmarking (outside `go
// test`). It emits one "component <name> <offset> <interval> <sleep>" line
// per node, then one "edge <src> <dst>" line per random edge. Edges are
// drawn independently, so the graph may contain cycles and duplicate edges.
//
// Usage:
//
//	go run tools/graphgen/graphgen.go -n 64 -edges 128 -seed 42 -out graph.txt
//
// Flags:
//
//	-n       number of components to generate (default 64)
//	-edges   number of random edges to draw (default 2*n); draws that land
//	         on a self-loop are dropped, so fewer edge lines than the
//	         "# edges:" header states may follow it
//	-seed    RNG seed (default current time)
//	-out     output file (default stdout)
//
// The program is embarrassingly simple but placed under version control so
// any contributor can regenerate the exact graph shape used in a particular
// scheduler benchmark run.
//
// © 2025 flowkernel authors. MIT License.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

func main() {
	var (
		n       = flag.Int("n", 64, "number of components to generate")
		edges   = flag.Int("edges", 0, "number of random edges to generate (default 2*n)")
		seedVal = flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
		outPath = flag.String("out", "", "output file (default stdout)")
	)
	flag.Parse()

	if *edges <= 0 {
		*edges = 2 * *n
	}

	rnd := rand.New(rand.NewSource(*seedVal))

	var out *os.File
	var err error
	if *outPath == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot create file:", err)
			os.Exit(1)
		}
		defer out.Close()
	}

	w := bufio.NewWriterSize(out, 1<<16)
	defer w.Flush()

	fmt.Fprintf(w, "# components: %d\n", *n)
	for i := 0; i < *n; i++ {
		offset := rnd.Intn(8)
		interval := 1 + rnd.Intn(4)
		sleep := 1 + rnd.Intn(8)
		fmt.Fprintf(w, "component node%d %d %d %d\n", i, offset, interval, sleep)
	}

	fmt.Fprintf(w, "# edges: %d\n", *edges)
	for i := 0; i < *edges; i++ {
		src := rnd.Intn(*n)
		dst := rnd.Intn(*n)
		if src == dst {
			continue
		}
		fmt.Fprintf(w, "edge node%d node%d\n", src, dst)
	}
}
