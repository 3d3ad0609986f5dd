// Command trimbench runs the comparative append/trim/read workload against
// the trimlist containers and prints per-block read latencies.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/hupe1980/trimlist"
	"github.com/hupe1980/trimlist/benchmark"
)

var (
	subject     = flag.String("subject", "all", "Container under test: all, sliding, chunked")
	blockSize   = flag.Int("block", 1000, "Items per block")
	addBlocks   = flag.Int("add", 50, "Blocks to append")
	trimBlocks  = flag.Int("trim", 15, "Blocks to trim away")
	probAdd     = flag.Float64("padd", 0.50, "Per-step append probability")
	probRemove  = flag.Float64("ptrim", 0.15, "Per-step trim probability")
	seed        = flag.Int64("seed", 1, "Workload RNG seed")
	jsonLogging = flag.Bool("json", false, "JSON log output")
	verbose     = flag.Bool("verbose", false, "Verbose output")
)

func main() {
	flag.Parse()

	fmt.Printf("trimlist comparative benchmark\n")
	fmt.Printf("==============================\n")
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Block Size: %d\n", *blockSize)
	fmt.Printf("Blocks: %d append / %d trim\n", *addBlocks, *trimBlocks)
	fmt.Printf("Seed: %d\n", *seed)
	fmt.Printf("\n")

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	var logger *trimlist.Logger
	if *jsonLogging {
		logger = trimlist.NewJSONLogger(level)
	} else {
		logger = trimlist.NewTextLogger(level)
	}

	cfg := benchmark.Config{
		BlockSize:      *blockSize,
		BlocksToAdd:    *addBlocks,
		BlocksToRemove: *trimBlocks,
		ProbAdd:        *probAdd,
		ProbRemove:     *probRemove,
		Seed:           *seed,
	}
	h, err := benchmark.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	subjects := []struct {
		name  string
		build func() trimlist.TrimmableList[int]
	}{
		{"SlidingWindowList", func() trimlist.TrimmableList[int] { return trimlist.NewSlidingWindowList[int]() }},
		{"ChunkedArray", func() trimlist.TrimmableList[int] { return trimlist.NewChunkedArray[int]() }},
	}

	ran := false
	for _, s := range subjects {
		if *subject != "all" && !matches(*subject, s.name) {
			continue
		}
		ran = true
		fmt.Printf("=== %s ===\n", s.name)
		stats, err := h.Run(s.name, s.build)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", s.name, err)
			os.Exit(1)
		}
		bn := *blockSize
		for _, st := range stats {
			fmt.Printf("Block [%d], item index range [%d, %d), avg_ns_per_read=%.2f (%d ns / %d ops)\n",
				st.Block, st.Block*bn, (st.Block+1)*bn, st.PerRead, st.Total.Nanoseconds(), st.Ops)
		}
		fmt.Printf("\n")
	}
	if !ran {
		fmt.Fprintf(os.Stderr, "unknown subject: %s\n", *subject)
		os.Exit(1)
	}
}

func matches(flagValue, name string) bool {
	switch flagValue {
	case "sliding":
		return name == "SlidingWindowList"
	case "chunked":
		return name == "ChunkedArray"
	}
	return false
}
