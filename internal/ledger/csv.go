package ledger

import (
	"encoding/csv"
	"errors"
	"io"
	"sort"
	"strings"
)

// HeaderFields is written as the first row of every CSV file we create.
var HeaderFields = []string{"date", "description", "category", "amount"}

// Line is one physical line of a CSV file. Raw is the line as read, without
// its newline, so untouched lines can be written back unchanged.
type Line struct {
	Raw    string
	Fields []string
}

// Parse turns CSV text into transactions. The first line is the header. Fields
// are mapped positionally and missing fields stay empty. The result is sorted
// by date.
func Parse(text string) []Transaction {
	lines, _ := ReadLines(strings.NewReader(text))
	if len(lines) < 2 {
		return []Transaction{}
	}

	transactions := make([]Transaction, 0, len(lines)-1)
	for _, line := range lines[1:] {
		transactions = append(transactions, FromRecord(line.Fields))
	}
	SortByDate(transactions)
	return transactions
}

// ReadLines splits the input into non-blank lines. Every line is exactly one
// record: a quote never joins a line with the ones after it.
func ReadLines(r io.Reader) ([]Line, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var lines []Line
	for _, raw := range strings.Split(string(data), "\n") {
		text := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, Line{Raw: raw, Fields: ParseLine(text)})
	}
	return lines, nil
}

// ParseLine splits one line on commas. A line that is valid quoted CSV on its
// own is unquoted; anything else, such as a description starting with a
// quote, is split literally.
func ParseLine(text string) []string {
	if !strings.Contains(text, `"`) {
		return strings.Split(text, ",")
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	record, err := reader.Read()
	if err != nil {
		return strings.Split(text, ",")
	}
	if _, err := reader.Read(); !errors.Is(err, io.EOF) {
		return strings.Split(text, ",")
	}
	return record
}

// FormatRecord renders a record as a single CSV line, quoting only the fields
// that need it.
func FormatRecord(record []string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(record)
	w.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}

// FromRecord maps a raw CSV row onto a transaction.
func FromRecord(record []string) Transaction {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}
	return Transaction{
		Date:        field(0),
		Description: field(1),
		Category:    field(2),
		Amount:      strings.TrimSpace(field(3)),
	}
}

// Record is the CSV row for a transaction.
func (t Transaction) Record() []string {
	return []string{t.Date, t.Description, t.Category, t.Amount}
}

// Format renders transactions as CSV text with a header row.
func Format(transactions []Transaction) string {
	var b strings.Builder
	b.WriteString(FormatRecord(HeaderFields))
	b.WriteString("\n")
	for _, t := range transactions {
		b.WriteString(FormatRecord(t.Record()))
		b.WriteString("\n")
	}
	return b.String()
}

// SortByDate orders transactions by date ascending, keeping the relative order
// of equal dates.
func SortByDate(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date < transactions[j].Date
	})
}
