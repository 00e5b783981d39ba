// Package slite is a thin driver layer over the SQLite C library.
//
// It exposes the native handle lifecycle directly: connections are opened
// with a set of OpenFlags, SQL is compiled into prepared statements, typed
// parameters are bound positionally, and result rows are read through typed
// column accessors. A fixed-size connection pool hands connections out to
// concurrent workers under mutual exclusion.
//
//   - https://www.sqlite.org/cintro.html
//   - https://www.sqlite.org/c3ref/intro.html
//
// Connections, statements and rows are not safe for concurrent use; confine
// each checked-out connection to a single goroutine until it is released.
package slite
