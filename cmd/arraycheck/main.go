// Copyright 2025 go-array Authors
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

// Command arraycheck runs randomized property checks against the go-array
// copy, sort and search engines, over both the fast (typed slice) and the
// generic (erased View) paths.
//
// Usage:
//
//	arraycheck -trials 1000 -size 500 -suites all
//	arraycheck -suites sort,pairs -seed 7 -workers 4
//	ARRAY_NO_FAST=1 arraycheck                        # typed calls take the generic path too
//
// Suites run concurrently; trials within a suite are spread over a shared
// worker pool. Each trial owns its storage. The command exits with status 1
// if any property is violated.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ajroetker/go-array/array"
	"github.com/ajroetker/go-array/array/contrib/workerpool"
	"golang.org/x/sync/errgroup"
)

var (
	trials  = flag.Int("trials", 200, "Number of randomized trials per suite")
	size    = flag.Int("size", 300, "Maximum array length per trial")
	seed    = flag.Uint64("seed", 1, "Base random seed; trial i uses seed+i")
	workers = flag.Int("workers", 0, "Worker goroutines (default: GOMAXPROCS)")
	suites  = flag.String("suites", "all", "Comma-separated suites ("+strings.Join(suiteNames(), ",")+") or 'all'")
)

func main() {
	flag.Parse()

	names := parseSuites(*suites)
	if len(names) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid suites specified\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if *trials <= 0 || *size <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -trials and -size must be positive\n")
		os.Exit(1)
	}

	fmt.Printf("arraycheck: level %s (%d-byte blocks), fast path %v\n",
		array.CurrentName(), array.CurrentWidth(), array.FastPathEnabled())

	pool := workerpool.New(*workers)
	defer pool.Close()

	cfg := Config{Trials: *trials, Size: *size, Seed: *seed}
	if err := Run(context.Background(), pool, cfg, names); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		pool.Close()
		os.Exit(1)
	}
	fmt.Printf("All properties held for suites: %s\n", strings.Join(names, ", "))
}

// Run executes the named suites concurrently and returns every violation.
func Run(ctx context.Context, pool *workerpool.Pool, cfg Config, names []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		check := suiteByName[name]
		g.Go(func() error {
			err := pool.ForEach(cfg.Trials, func(i int) error {
				// Another suite already failed.
				if gctx.Err() != nil {
					return nil
				}
				return check(cfg, cfg.Seed+uint64(i))
			})
			if err != nil {
				return fmt.Errorf("suite %s: %w", name, err)
			}
			if gctx.Err() == nil {
				fmt.Printf("  %-8s %d trials ok\n", name, cfg.Trials)
			}
			return nil
		})
	}
	return g.Wait()
}

func parseSuites(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "all" {
			return suiteNames()
		}
		if _, ok := suiteByName[p]; !ok {
			fmt.Fprintf(os.Stderr, "Warning: unknown suite %q ignored\n", p)
			continue
		}
		result = append(result, p)
	}
	return result
}
