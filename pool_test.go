package slite

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	t.Run("PathIsRequired", func(t *testing.T) {
		_, err := NewPool(PoolConfig{Size: 1})
		assert.Error(t, err)
	})

	t.Run("DefaultSize", func(t *testing.T) {
		pool, err := NewPool(PoolConfig{Path: filepath.Join(t.TempDir(), "p.db")})
		require.NoError(t, err)
		defer pool.Close()

		assert.Len(t, pool.conns, 5)
		assert.Equal(t, 5, pool.available)
	})

	t.Run("CallbackOrder", func(t *testing.T) {
		var calls []string
		pool, err := NewPool(PoolConfig{
			Size: 3,
			Path: filepath.Join(t.TempDir(), "p.db"),
			OnFirstConnection: func(conn *Conn) error {
				calls = append(calls, "first")
				return conn.Execute("CREATE TABLE t (id INTEGER)")
			},
			OnConnection: func(conn *Conn) error {
				calls = append(calls, "each")
				return conn.SetBusyTimeout(1000)
			},
		})
		require.NoError(t, err)
		defer pool.Close()

		assert.Equal(t, []string{"first", "each", "each", "each"}, calls)
	})

	t.Run("FailedSetupClosesEverything", func(t *testing.T) {
		var opened []*Conn
		var initCalls int

		_, err := NewPool(PoolConfig{
			Size: 5,
			Path: filepath.Join(t.TempDir(), "p.db"),
			OnConnection: func(conn *Conn) error {
				opened = append(opened, conn)
				initCalls++
				if initCalls == 2 {
					return assert.AnError
				}
				return nil
			},
		})
		require.Error(t, err)

		// The callback never ran for indices beyond the failure, and every
		// handle opened so far was closed.
		assert.Equal(t, 2, initCalls)
		for _, conn := range opened {
			assert.Nil(t, conn.cDB)
		}
	})

	t.Run("FailedOpenPropagates", func(t *testing.T) {
		_, err := NewPool(PoolConfig{
			Size:  2,
			Path:  filepath.Join(t.TempDir(), "missing.db"),
			Flags: OpenReadWrite,
		})
		assert.Error(t, err)
	})
}

func TestPoolAcquireRelease(t *testing.T) {
	t.Run("LIFOHandOut", func(t *testing.T) {
		pool, err := NewPool(PoolConfig{
			Size: 3,
			Path: filepath.Join(t.TempDir(), "p.db"),
		})
		require.NoError(t, err)
		defer pool.Close()

		first := pool.Acquire()
		second := pool.Acquire()

		// The most recently released connection is handed out next.
		pool.Release(first)
		pool.Release(second)
		assert.Same(t, second, pool.Acquire())
		assert.Same(t, first, pool.Acquire())

		pool.Release(first)
		pool.Release(second)
	})

	t.Run("SelfRelease", func(t *testing.T) {
		pool, err := NewPool(PoolConfig{
			Size: 1,
			Path: filepath.Join(t.TempDir(), "p.db"),
		})
		require.NoError(t, err)
		defer pool.Close()

		conn := pool.Acquire()
		conn.Release()
		assert.Equal(t, 1, pool.available)
	})

	t.Run("AcquireBlocksUntilRelease", func(t *testing.T) {
		pool, err := NewPool(PoolConfig{
			Size: 1,
			Path: filepath.Join(t.TempDir(), "p.db"),
		})
		require.NoError(t, err)
		defer pool.Close()

		conn := pool.Acquire()

		acquired := make(chan *Conn)
		go func() {
			acquired <- pool.Acquire()
		}()

		select {
		case <-acquired:
			t.Fatal("acquire returned while no connection was available")
		default:
		}

		pool.Release(conn)
		got := <-acquired
		pool.Release(got)
	})
}

func TestPoolConcurrentCounter(t *testing.T) {
	const workers = 3
	const iterations = 1000

	pool, err := NewPool(PoolConfig{
		Size: 2,
		Path: filepath.Join(t.TempDir(), "counter.db"),
		OnFirstConnection: func(conn *Conn) error {
			if err := conn.Execute("PRAGMA journal_mode = WAL"); err != nil {
				return err
			}
			return conn.Execute("CREATE TABLE counter (n INTEGER NOT NULL DEFAULT 0); INSERT INTO counter (n) VALUES (0)")
		},
		OnConnection: func(conn *Conn) error {
			return conn.SetBusyTimeout(10_000)
		},
	})
	require.NoError(t, err)
	defer pool.Close()

	// holders tracks how many goroutines hold each connection; it must
	// never exceed one.
	var holders sync.Map

	var wg sync.WaitGroup
	errs := make(chan error, workers*iterations)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				conn := pool.Acquire()

				count, _ := holders.LoadOrStore(conn, new(int32))
				if atomic.AddInt32(count.(*int32), 1) != 1 {
					errs <- assert.AnError
				}

				if err := conn.Exec("UPDATE counter SET n = n + 1"); err != nil {
					errs <- err
				}

				atomic.AddInt32(count.(*int32), -1)
				pool.Release(conn)
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	conn := pool.Acquire()
	defer pool.Release(conn)

	row, err := conn.QueryRow("SELECT n FROM counter")
	require.NoError(t, err)
	require.NotNil(t, row)
	defer row.Close()
	assert.EqualValues(t, workers*iterations, row.Int(0))
}
