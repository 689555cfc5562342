package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/view"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})

	headerStyle  = lipgloss.NewStyle().Bold(true)
	incomeStyle  = successStyle
	expenseStyle = errorStyle
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

func amountStyle(amount string) lipgloss.Style {
	if ledger.IsExpenseAmount(amount) {
		return expenseStyle
	}
	return incomeStyle
}

// renderRows lays the rows out as an aligned table.
func renderRows(rows []ledger.Transaction) string {
	widths := []int{len("Date"), len("Description"), len("Category"), len("Amount")}
	for _, r := range rows {
		for i, field := range r.Record() {
			if n := lipgloss.Width(field); n > widths[i] {
				widths[i] = n
			}
		}
	}

	cell := func(i int, s string) string {
		return lipgloss.NewStyle().Width(widths[i]).Render(s)
	}
	amountCell := func(s string) string {
		return lipgloss.NewStyle().Width(widths[3]).Align(lipgloss.Right).Render(s)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.Join([]string{
		cell(0, "Date"), cell(1, "Description"), cell(2, "Category"), amountCell("Amount"),
	}, "  ")))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(strings.Join([]string{
			cell(0, r.Date), cell(1, r.Description), cell(2, r.Category),
			amountStyle(r.Amount).Render(amountCell(r.Amount)),
		}, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTotals(t view.Totals) string {
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		headerStyle.Render("Income"), incomeStyle.Render(t.Income),
		headerStyle.Render("Expense"), expenseStyle.Render(t.Expense),
		headerStyle.Render("Balance"), amountStyle(t.Balance).Render(t.Balance),
	)
}

// renderReport draws one card per category; a card's width grows with its
// weight.
func renderReport(r view.CategoryReport) string {
	if len(r.Cards) == 0 {
		return ""
	}
	cards := make([]string, len(r.Cards))
	for i, c := range r.Cards {
		body := headerStyle.Render(c.Category) + "\n" + expenseStyle.Render(c.Total)
		cards[i] = cardStyle.Width(12 + 2*c.Weight).Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderModel(w io.Writer, state view.State, m view.Model) {
	month := state.Month
	if month == view.AllMonths {
		month = "all"
	}
	printInfof(w, "Month %s, %d transactions", month, m.Count)
	_, _ = fmt.Fprint(w, renderRows(m.Rows))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, renderTotals(m.Totals))
	if report := renderReport(m.Report); report != "" {
		_, _ = fmt.Fprintln(w, report)
	}
}
