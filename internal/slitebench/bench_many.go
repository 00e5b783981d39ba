package slitebench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/slitedb/slite/internal/slitebench/benchbar"
)

// runBenchmarkMany inserts users in a single transaction and then queries
// all of them many times from concurrent goroutines. This simulates a
// read-heavy workload.
func runBenchmarkMany(
	d benchDriver, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.Many
	start := time.Now()
	var totalReads, totalWrites uint64

	bar := benchbar.NewBar(
		fmt.Sprintf("Inserting %d users in one transaction", conf.InsertUsers), 1,
	)

	emails := make([]string, conf.InsertUsers)
	for idx := range emails {
		emails[idx] = fmt.Sprintf("user%d@example.com", idx)
	}

	affected, err := d.InsertUsersTx(emails)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when inserting: %w", err)
	}
	totalWrites += uint64(affected)
	bar.Finish()

	wgQuery := sync.WaitGroup{}
	chQuery := make(chan bool, conf.QueryGoroutines)
	errQuery := make(chan error, conf.QueryTimes)
	bar = benchbar.NewBar(
		fmt.Sprintf("Querying all users %d times", conf.QueryTimes),
		conf.QueryTimes,
	)

	for i := 0; i < conf.QueryTimes; i++ {
		wgQuery.Add(1)
		chQuery <- true
		go func() {
			defer func() {
				wgQuery.Done()
				<-chQuery
			}()

			count, err := d.ScanUsers()
			if err != nil {
				errQuery <- err
				return
			}

			bar.Inc()
			atomic.AddUint64(&totalReads, uint64(count))
		}()
	}

	wgQuery.Wait()
	close(chQuery)
	close(errQuery)

	for e := range errQuery {
		if e != nil {
			return benchmarkResult{}, fmt.Errorf("error when querying: %w", e)
		}
	}
	bar.Finish()

	return benchmarkResult{
		Name:        "Many",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
