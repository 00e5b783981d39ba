package slite

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// PoolConfig configures a fixed-size connection pool.
type PoolConfig struct {
	// Size is the fixed number of connections to open. Defaults to 5.
	Size int
	// Path is the database path every connection opens. Required.
	Path string
	// Flags are the open flags shared by every connection. Defaults to
	// OpenCreate | OpenExResCode when zero.
	Flags OpenFlags
	// OnFirstConnection runs on the first connection only, before any
	// OnConnection callback. Meant for one-time schema or pragma setup.
	OnFirstConnection func(*Conn) error
	// OnConnection runs on every connection, after OnFirstConnection on
	// the first one. Meant for per-connection settings such as the busy
	// timeout.
	OnConnection func(*Conn) error
	// Logger, when set, receives structured lifecycle events.
	Logger *slog.Logger
}

// Pool owns a fixed set of connections, all opened with the same path and
// flags and initialized by the same callbacks. Acquire blocks until a
// connection is available and hands out the most recently released one;
// connections are never added, removed or health-checked after
// construction.
type Pool struct {
	mu    sync.Mutex
	cond  *sync.Cond
	conns []*Conn
	// available is the count of unchecked-out connections; conns[:available]
	// is the free range and conns[available-1] its top.
	available int
	logger    *slog.Logger
}

// NewPool opens config.Size connections sequentially and returns a pool
// with all of them available. If any open or callback fails, every
// connection opened so far is closed before the failure propagates;
// partial construction never leaks native handles.
func NewPool(config PoolConfig) (*Pool, error) {
	if config.Path == "" {
		return nil, errors.New("pool path is required")
	}

	size := config.Size
	if size == 0 {
		size = 5
	}
	if size < 0 {
		return nil, errors.New("pool size must be positive")
	}

	flags := config.Flags
	if flags == 0 {
		flags = OpenCreate | OpenExResCode
	}

	p := &Pool{
		conns:  make([]*Conn, 0, size),
		logger: config.Logger,
	}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < size; i++ {
		conn, err := Open(config.Path, flags)
		if err != nil {
			p.closeAll()
			return nil, fmt.Errorf("failed to open connection %d: %w", i, err)
		}
		conn.pool = p
		p.conns = append(p.conns, conn)

		if i == 0 && config.OnFirstConnection != nil {
			if err := config.OnFirstConnection(conn); err != nil {
				p.closeAll()
				return nil, fmt.Errorf("first-connection setup failed: %w", err)
			}
		}

		if config.OnConnection != nil {
			if err := config.OnConnection(conn); err != nil {
				p.closeAll()
				return nil, fmt.Errorf("connection %d setup failed: %w", i, err)
			}
		}
	}

	p.available = size

	if p.logger != nil {
		p.logger.Info("connection pool initialized",
			"path", config.Path, "size", size)
	}
	return p, nil
}

// Acquire returns an available connection, blocking until one is
// released if none is. It never fails; a caller that needs an upper bound
// must build its own timeout around the pool. The returned connection is
// exclusively owned by the caller until Release.
func (p *Pool) Acquire() *Conn {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.available == 0 {
		p.cond.Wait()
	}

	p.available--
	return p.conns[p.available]
}

// Release returns a checked-out connection to the pool. It becomes the
// new top of the free range, so the next Acquire prefers it; reusing the
// most recently active handle keeps its file-level caches warm.
func (p *Pool) Release(conn *Conn) {
	p.mu.Lock()
	p.conns[p.available] = conn
	p.available++
	p.mu.Unlock()

	p.cond.Signal()
}

// Close closes every connection unconditionally, ignoring individual
// close failures. The caller must guarantee no Acquire or Release is in
// flight; teardown is not synchronized against use.
func (p *Pool) Close() {
	p.closeAll()

	if p.logger != nil {
		p.logger.Info("connection pool closed", "size", len(p.conns))
	}
}

func (p *Pool) closeAll() {
	for _, conn := range p.conns {
		conn.Close()
	}
}
