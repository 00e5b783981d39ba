// Package slitebench benchmarks the slite driver against two database/sql
// based SQLite drivers on the same workloads.
package slitebench

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/slitedb/slite/internal/util/numutil"
	"github.com/slitedb/slite/internal/version"
)

type cliArgs struct {
	Config string `arg:"--config" help:"Path to a YAML file overriding the default benchmark parameters"`
}

func (cliArgs) Version() string {
	return fmt.Sprintf("%s\n", version.BenchVersion())
}

// benchmarkResult stores the outcome of a benchmark.
type benchmarkResult struct {
	Name        string
	Duration    time.Duration
	TotalReads  uint64
	TotalWrites uint64
}

// Run executes the benchmarks for every driver and prints the results.
func Run(ctx context.Context) error {
	args := cliArgs{}
	arg.MustParse(&args)

	fmt.Println(version.BenchVersion())

	conf, err := loadConfig(args.Config)
	if err != nil {
		return fmt.Errorf("error loading benchmark config: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "slitebench_*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	drivers, err := createDrivers(tmpDir)
	if err != nil {
		return err
	}
	defer func() {
		for _, d := range drivers {
			_ = d.Close()
		}
	}()

	for _, d := range drivers {
		fmt.Printf("\n--- Benchmarks for %s ---\n", d.Name())
		results, err := runBenchmarks(d, conf)
		if err != nil {
			return fmt.Errorf("error benchmarking %s: %w", d.Name(), err)
		}
		printResults(results)
	}

	return nil
}

func printResults(results []benchmarkResult) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	tw.AppendHeader(table.Row{"Name", "Reads", "Writes", "Duration"})

	for _, r := range results {
		tw.AppendRow(table.Row{
			r.Name,
			numutil.IntWithCommas(int(r.TotalReads)),
			numutil.IntWithCommas(int(r.TotalWrites)),
			r.Duration,
		})
	}

	fmt.Println(tw.Render())
}

// runBenchmarks executes all benchmarks against one driver, recreating the
// schema before each one.
func runBenchmarks(d benchDriver, conf benchmarksConfig) ([]benchmarkResult, error) {
	benchs := []func(benchDriver, benchmarksConfig) (benchmarkResult, error){
		runBenchmarkSimple,
		runBenchmarkMany,
		runBenchmarkLarge,
	}

	var results []benchmarkResult

	for _, bench := range benchs {
		if err := recreateSchema(d); err != nil {
			return nil, err
		}

		res, err := bench(d, conf)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}
