package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/slitedb/slite"
	"github.com/slitedb/slite/internal/log"
	"github.com/slitedb/slite/internal/shell/styled"
)

// cmdQuery executes one line of SQL. Transaction control is matched by
// prefix; everything else is prepared once to ask the engine whether it
// reads or writes, then dispatched.
func cmdQuery(r *Repl, input string) {
	trimmed := strings.ToLower(strings.TrimSpace(input))

	switch {
	case strings.HasPrefix(trimmed, "begin"):
		cmdBegin(r)
		return
	case strings.HasPrefix(trimmed, "commit"):
		cmdCommit(r)
		return
	case strings.HasPrefix(trimmed, "rollback"), strings.HasPrefix(trimmed, "end"):
		cmdRollback(r)
		return
	}

	stmt, err := r.conn.Prepare(input)
	if err != nil {
		renderError(r, input, err)
		return
	}
	readOnly := stmt.ReadOnly()
	if err := stmt.Finalize(); err != nil {
		renderError(r, input, err)
		return
	}

	if readOnly {
		cmdRead(r, input)
		return
	}
	cmdWrite(r, input)
}

func cmdRead(r *Repl, input string) {
	start := time.Now()

	rows, err := r.conn.Query(input)
	if err != nil {
		renderError(r, input, err)
		return
	}

	tw := styled.NewTableWriter()
	header := table.Row{}
	for i := 0; i < rows.ColumnCount(); i++ {
		header = append(header, rows.ColumnName(i))
	}
	tw.AppendHeader(header)

	count := 0
	for row := rows.Next(); row != nil; row = rows.Next() {
		out := table.Row{}
		for i := 0; i < row.ColumnCount(); i++ {
			out = append(out, renderValue(row, i))
		}
		tw.AppendRow(out)
		count++
	}

	err = rows.Err()
	_ = rows.Close()
	if err != nil {
		renderError(r, input, err)
		return
	}

	fmt.Println(tw.Render())
	styled.DimmedColor().Printf("%d row(s) in %s\n", count, time.Since(start))
	r.logQuery(log.KV{"query": input, "type": "read", "rows": count})
}

func cmdWrite(r *Repl, input string) {
	if err := r.conn.Exec(input); err != nil {
		renderError(r, input, err)
		return
	}

	changes := r.conn.Changes()
	lastID := r.conn.LastInsertRowID()

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"-", "Rows Affected", "Last Insert ID"})
	tw.AppendRow(table.Row{"OK", changes, lastID})
	fmt.Println(tw.Render())
	r.logQuery(log.KV{"query": input, "type": "write", "changes": changes})
}

func cmdBegin(r *Repl) {
	if err := r.conn.Begin(); err != nil {
		renderError(r, "begin", err)
		return
	}
	r.inTx = true
	renderOK("Transaction started")
	r.logQuery(log.KV{"type": "begin"})
}

func cmdCommit(r *Repl) {
	if err := r.conn.Commit(); err != nil {
		renderError(r, "commit", err)
		return
	}
	r.inTx = false
	renderOK("Transaction committed")
	r.logQuery(log.KV{"type": "commit"})
}

func cmdRollback(r *Repl) {
	r.conn.Rollback()
	r.inTx = false
	renderOK("Transaction rolled back")
	r.logQuery(log.KV{"type": "rollback"})
}

func renderOK(msg string) {
	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"OK"})
	tw.AppendRow(table.Row{msg})
	fmt.Println(tw.Render())
}

func renderError(r *Repl, input string, err error) {
	tw := styled.NewTableWriter()

	var derr *slite.Error
	if errors.As(err, &derr) {
		tw.AppendHeader(table.Row{"Error", "Kind"})
		tw.AppendRow(table.Row{derr.Message, derr.Kind.Value})
	} else {
		tw.AppendHeader(table.Row{"Error"})
		tw.AppendRow(table.Row{err.Error()})
	}

	styled.ErrorColor().Println("Query failed")
	fmt.Println(tw.Render())

	if r.logger.IsInitialized() {
		r.logger.ErrorNs("shell", "query failed", log.KV{
			"query": input,
			"error": err.Error(),
		})
	}
}

// renderValue formats one column of the current row for display.
func renderValue(row *slite.Row, index int) string {
	switch row.ColumnType(index) {
	case slite.TypeNull:
		return "NULL"
	case slite.TypeInt:
		return strconv.FormatInt(row.Int(index), 10)
	case slite.TypeFloat:
		return strconv.FormatFloat(row.Float(index), 'g', -1, 64)
	case slite.TypeBlob:
		return fmt.Sprintf("x'%x'", row.Blob(index))
	}
	return row.Text(index)
}

func (r *Repl) logQuery(kv log.KV) {
	if !r.logger.IsInitialized() {
		return
	}
	r.logger.InfoNs("shell", "query executed", kv)
}
