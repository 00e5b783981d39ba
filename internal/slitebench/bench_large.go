package slitebench

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/slitedb/slite/internal/slitebench/benchbar"
)

// runBenchmarkLarge inserts users that each carry a binary payload and
// then reads all of them back in a single query.
func runBenchmarkLarge(
	d benchDriver, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.Large
	start := time.Now()
	var totalReads, totalWrites uint64

	wg := sync.WaitGroup{}
	wgch := make(chan bool, conf.InsertGoroutines)
	errChan := make(chan error, conf.InsertUsers)
	bar := benchbar.NewBar(
		fmt.Sprintf("Inserting %d users with %d byte payloads",
			conf.InsertUsers, conf.PayloadBytes),
		conf.InsertUsers,
	)

	payload := bytes.Repeat([]byte{0xab}, conf.PayloadBytes)
	for idx := 0; idx < conf.InsertUsers; idx++ {
		idx := idx
		wg.Add(1)
		wgch <- true

		go func() {
			defer func() {
				wg.Done()
				<-wgch
			}()

			affected, err := d.InsertUser(fmt.Sprintf("user%d@example.com", idx), payload)
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

	count, err := d.ScanUsers()
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when querying: %w", err)
	}
	atomic.AddUint64(&totalReads, uint64(count))

	return benchmarkResult{
		Name:        "Large",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
