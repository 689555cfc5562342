package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// Writer holds the storage lock from Write until Commit or Rollback. Rows are
// kept as raw lines so untouched lines are written back unchanged.
type Writer struct {
	storage *Storage
	path    string
	mode    os.FileMode
	header  string
	rows    []ledger.Line
	closed  bool
}

// Write locks the storage and loads the file for modification.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.path == "" {
		s.mu.Unlock()
		return nil, ErrNoFile
	}

	f, err := os.Open(s.path)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("stat %s: %w", s.path, err)
	}

	lines, err := ledger.ReadLines(f)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	w := &Writer{
		storage: s,
		path:    s.path,
		mode:    info.Mode().Perm(),
		header:  ledger.FormatRecord(ledger.HeaderFields),
	}
	if len(lines) > 0 {
		w.header = lines[0].Raw
		w.rows = lines[1:]
	}
	return w, nil
}

func newLine(t ledger.Transaction) ledger.Line {
	record := t.Record()
	return ledger.Line{Raw: ledger.FormatRecord(record), Fields: record}
}

func (w *Writer) Append(t ledger.Transaction) {
	w.rows = append(w.rows, newLine(t))
}

// Delete drops the first row equal to t. Amounts are compared after
// formatting both sides to two decimals.
func (w *Writer) Delete(t ledger.Transaction) error {
	target := t
	target.Amount = comparableAmount(t.Amount)

	for i, row := range w.rows {
		stored := ledger.FromRecord(row.Fields)
		stored.Amount = comparableAmount(stored.Amount)
		if stored.Equal(target) {
			w.rows = append(w.rows[:i:i], w.rows[i+1:]...)
			return nil
		}
	}
	return ErrTransactionNotFound
}

// Replace swaps every pending row for transactions, keeping the header. Rows
// whose position and fields are unchanged keep their original line.
func (w *Writer) Replace(transactions []ledger.Transaction) {
	rows := make([]ledger.Line, len(transactions))
	for i, t := range transactions {
		if i < len(w.rows) && ledger.FromRecord(w.rows[i].Fields).Equal(t) {
			rows[i] = w.rows[i]
			continue
		}
		rows[i] = newLine(t)
	}
	w.rows = rows
}

// Transactions returns the pending rows in file order.
func (w *Writer) Transactions() []ledger.Transaction {
	out := make([]ledger.Transaction, len(w.rows))
	for i, row := range w.rows {
		out[i] = ledger.FromRecord(row.Fields)
	}
	return out
}

// Commit rewrites the file and releases the lock.
func (w *Writer) Commit() error {
	if w.closed {
		return ErrWriterClosed
	}
	defer w.release()

	var buf bytes.Buffer
	buf.WriteString(w.header)
	buf.WriteString("\n")
	for _, row := range w.rows {
		buf.WriteString(row.Raw)
		buf.WriteString("\n")
	}
	if err := os.WriteFile(w.path, buf.Bytes(), w.mode); err != nil {
		return fmt.Errorf("write %s: %w", w.path, err)
	}
	return nil
}

// Rollback discards pending changes and releases the lock.
func (w *Writer) Rollback() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.release()
	return nil
}

func (w *Writer) release() {
	w.closed = true
	w.storage.mu.Unlock()
}

func comparableAmount(amount string) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}
	return d.StringFixed(2)
}
