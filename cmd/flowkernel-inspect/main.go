package main

// main.go implements the flowkernel inspector CLI: it parses command-line
// flags, fetches a diagnostic snapshot from one or more running kernel
// processes, and prints it either as pretty text or JSON. Multiple targets
// are fetched concurrently via golang.org/x/sync/errgroup, then printed in
// flag order so output stays stable across runs.
//
// The target Go service is expected to expose:
//   - GET /debug/flowkernel/snapshot — JSON payload with scheduler/executor
//     counters.
//
// The snapshot object is intentionally generic; we decode into
// map[string]any to avoid version skew between the CLI and the library.
//
// © 2025 flowkernel authors. MIT License.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

var version = "dev"

type options struct {
	targets  []string
	json     bool
	watch    bool
	interval time.Duration
}

func parseFlags() *options {
	var (
		targets = flag.String("targets", "http://localhost:6060", "comma-separated list of flowkernel debug endpoints")
		asJSON  = flag.Bool("json", false, "print raw JSON instead of a formatted table")
		watch   = flag.Bool("watch", false, "poll every -interval until interrupted")
		interval = flag.Duration("interval", 2*time.Second, "poll interval in watch mode")
		showVer = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version)
		os.Exit(0)
	}

	opts := &options{
		json:     *asJSON,
		watch:    *watch,
		interval: *interval,
	}
	for _, t := range strings.Split(*targets, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			opts.targets = append(opts.targets, t)
		}
	}
	return opts
}

func main() {
	opts := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	if opts.watch {
		ticker := time.NewTicker(opts.interval)
		defer ticker.Stop()
		for {
			if err := dumpOnce(ctx, opts); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
			select {
			case <-ticker.C:
				continue
			case <-ctx.Done():
				return
			}
		}
	}

	if err := dumpOnce(ctx, opts); err != nil {
		fatal(err)
	}
}

// dumpOnce fetches every target's snapshot concurrently, bounding the
// overall call to the slowest single target rather than the sum of all of
// them, then renders the results in the order the targets were given.
func dumpOnce(ctx context.Context, opts *options) error {
	snaps := make([]map[string]any, len(opts.targets))

	g, gctx := errgroup.WithContext(ctx)
	for i, target := range opts.targets {
		i, target := i, target
		g.Go(func() error {
			snap, err := fetchSnapshot(gctx, target)
			if err != nil {
				return fmt.Errorf("%s: %w", target, err)
			}
			snaps[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		for i, target := range opts.targets {
			if err := enc.Encode(map[string]any{"target": target, "snapshot": snaps[i]}); err != nil {
				return err
			}
		}
		return nil
	}

	for i, target := range opts.targets {
		prettyPrint(target, snaps[i])
	}
	return nil
}

func fetchSnapshot(ctx context.Context, base string) (map[string]any, error) {
	url := base + "/debug/flowkernel/snapshot"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
	var data map[string]any
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

func prettyPrint(target string, data map[string]any) {
	fmt.Printf("== %s ==\n", target)
	fmt.Printf("  steps_total:          %v\n", data["steps_total"])
	fmt.Printf("  awake_total:          %v\n", data["awake_total"])
	fmt.Printf("  asleep_total:         %v\n", data["asleep_total"])
	fmt.Printf("  functor_errors_total: %v\n", data["functor_errors_total"])
	fmt.Printf("  posted_total:         %v\n", data["posted_total"])
	fmt.Printf("  completed_total:      %v\n", data["completed_total"])
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "flowkernel-inspect:", err)
	os.Exit(1)
}
