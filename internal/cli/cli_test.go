package cli

import (
	"bytes"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/api"
	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/view"
)

const reportCSV = `date,description,category,amount
2024-05-20,Old rent,Important,-700.00
2024-06-01,Salary,Income,100.00
2024-06-02,Supermarket,Food,-10.00
2024-06-03,Pizza,Food,-5.00
2024-06-04,Cinema,Happy,-2.00
`

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "budget.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// run parses args like main does and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cmds Commands
	var stdout, stderr bytes.Buffer
	parser, err := kong.New(&cmds,
		Vars(),
		kong.Name("budget"),
		kong.Bind(&cmds.Globals),
		kong.Writers(&stdout, &stderr),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	err = kctx.Run()
	return stdout.String(), err
}

func startServer(t *testing.T, csvPath string) string {
	t.Helper()
	logger := logrus.New()
	logger.Out = io.Discard

	store, err := storage.NewStorage(&config.Config{CSVPath: csvPath})
	require.NoError(t, err)
	op := operator.NewOperatorDelegator(store, 1, logger)
	op.Start()
	t.Cleanup(op.Stop)

	rest := &api.Rest{Logger: logger, Storage: store, Persister: service.NewLocalPersister(op, store)}
	srv := httptest.NewServer(rest.Handler())
	t.Cleanup(srv.Close)
	return srv.URL
}

func readCSV(t *testing.T, path string) []ledger.Transaction {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return ledger.Parse(string(data))
}

func TestReportCmd_Controller(t *testing.T) {
	cmd := &ReportCmd{Month: "06", Query: "food", Sort: []string{"Amount", "amount"}}
	logger := logrus.New()
	logger.Out = io.Discard

	c, err := cmd.controller(reportCSV, logger)
	require.NoError(t, err)

	assert.Equal(t, view.State{
		Month:         "06",
		Query:         "food",
		SortColumn:    view.ColumnAmount,
		SortDirection: view.DirectionAscending,
	}, c.State())
	m := c.View()
	require.Len(t, m.Rows, 2)
	assert.Equal(t, "Supermarket", m.Rows[0].Description)
	assert.Equal(t, "-17.00", m.Totals.Expense)
}

func TestReportCmd_UnknownColumn(t *testing.T) {
	cmd := &ReportCmd{Sort: []string{"colour"}}

	_, err := cmd.controller(reportCSV, logrus.New())

	assert.Error(t, err)
}

func TestReportCmd_Run(t *testing.T) {
	path := writeCSV(t, reportCSV)

	out, err := run(t, "report", path, "--month", "00")

	require.NoError(t, err)
	assert.Contains(t, out, "5 transactions")
	assert.Contains(t, out, "Old rent")
	assert.Contains(t, out, "-717.00")
	assert.Contains(t, out, "-617.00")
}

func TestAddCmd_Form(t *testing.T) {
	form, err := (&AddCmd{Category: "Food", Amount: "3"}).form()
	require.NoError(t, err)
	assert.Equal(t, 5, form.CategoryIndex)

	_, err = (&AddCmd{Category: "Travel", Amount: "3"}).form()
	assert.ErrorIs(t, err, ledger.ErrUnknownCategory)
}

func TestAddAndDelete_ThroughServer(t *testing.T) {
	path := writeCSV(t, reportCSV)
	server := startServer(t, path)

	out, err := run(t, "add", "--server", server, "--date", "2024-06-05", "--category", "Food", "--amount", "4.5", "--description", "Bakery")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-06-05, Bakery, Food, -4.50")
	assert.Len(t, readCSV(t, path), 6)

	out, err = run(t, "delete", "--server", server, "--yes", "--", "2024-06-05", "Bakery", "Food", "-4.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")
	assert.Len(t, readCSV(t, path), 5)
}

func TestAddCmd_InvalidAmount(t *testing.T) {
	path := writeCSV(t, reportCSV)
	server := startServer(t, path)

	_, err := run(t, "add", "--server", server, "--category", "Income", "--amount", "abc")

	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	assert.Len(t, readCSV(t, path), 5)
}

func TestDeleteCmd_NoMatch(t *testing.T) {
	path := writeCSV(t, reportCSV)
	server := startServer(t, path)

	_, err := run(t, "delete", "--server", server, "--yes", "--", "2024-06-09", "Nothing", "Food", "-1")

	assert.Error(t, err)
	assert.Len(t, readCSV(t, path), 5)
}

func TestDeleteCmd_Target(t *testing.T) {
	cmd := &DeleteCmd{Date: "2024-06-03", Description: "Pizza", Category: "Food", Amount: "-5"}

	assert.Equal(t, ledger.Transaction{Date: "2024-06-03", Description: "Pizza", Category: "Food", Amount: "-5.00"}, cmd.target())
}

func TestPathCmd(t *testing.T) {
	server := startServer(t, writeCSV(t, reportCSV))
	other := writeCSV(t, "date,description,category,amount\n")

	out, err := run(t, "path", "--server", server, other)

	require.NoError(t, err)
	assert.Contains(t, out, other)
}

func TestServeCmd_ApplyOverrides(t *testing.T) {
	env := &config.Config{Port: "8385", OperatorWorkers: 1, LogLevel: "info"}
	cmd := &ServeCmd{Port: 9000, CSV: "/tmp/x.csv", Workers: 2}

	cmd.applyOverrides(env, &Globals{LogLevel: "debug"})

	assert.Equal(t, &config.Config{Port: "9000", CSVPath: "/tmp/x.csv", OperatorWorkers: 2, LogLevel: "debug"}, env)
}

func TestDeleteCmd_MatchesStoredAmountWithoutDecimals(t *testing.T) {
	path := writeCSV(t, reportCSV+"2024-06-06,Snack,Food,-5\n")
	server := startServer(t, path)

	out, err := run(t, "delete", "--server", server, "--yes", "--", "2024-06-06", "Snack", "Food", "-5")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")
	transactions := readCSV(t, path)
	assert.Len(t, transactions, 5)
	for _, tx := range transactions {
		assert.NotEqual(t, "Snack", tx.Description)
	}
}

func TestFindTransaction_ComparesAmountsWithTwoDecimals(t *testing.T) {
	m := view.Model{Rows: []ledger.Transaction{
		{Date: "2024-06-06", Description: "Snack", Category: "Food", Amount: "-5"},
	}}

	found, ok := findTransaction(m, ledger.Transaction{Date: "2024-06-06", Description: "Snack", Category: "Food", Amount: "-5.00"})

	require.True(t, ok)
	assert.Equal(t, "-5", found.Amount)
}
