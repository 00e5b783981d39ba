package slitebench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/slitedb/slite/internal/slitebench/benchbar"
)

// runBenchmarkSimple inserts users one by one from concurrent goroutines
// and then reads all of them back in a single query.
func runBenchmarkSimple(
	d benchDriver, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.Simple
	start := time.Now()
	var totalReads, totalWrites uint64

	wg := sync.WaitGroup{}
	wgch := make(chan bool, conf.InsertGoroutines)
	errChan := make(chan error, conf.InsertUsers)
	bar := benchbar.NewBar(
		fmt.Sprintf("Inserting %d users", conf.InsertUsers), conf.InsertUsers,
	)

	for idx := 0; idx < conf.InsertUsers; idx++ {
		idx := idx
		wg.Add(1)
		wgch <- true

		go func() {
			defer func() {
				wg.Done()
				<-wgch
			}()

			affected, err := d.InsertUser(fmt.Sprintf("user%d@example.com", idx), nil)
			if err != nil {
				errChan <- err
				return
			}

			bar.Inc()
			atomic.AddUint64(&totalWrites, uint64(affected))
		}()
	}

	wg.Wait()
	close(wgch)
	close(errChan)

	for e := range errChan {
		if e != nil {
			return benchmarkResult{}, fmt.Errorf("error when inserting: %w", e)
		}
	}

	bar.Finish()
	bar = benchbar.NewBar("Reading users", 1)

	count, err := d.ScanUsers()
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when querying: %w", err)
	}
	atomic.AddUint64(&totalReads, uint64(count))

	bar.Finish()
	return benchmarkResult{
		Name:        "Simple",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
