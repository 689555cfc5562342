package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// confirmDelete asks whether t should be removed from the file. Without an
// interactive stdin nothing is deleted.
func confirmDelete(t ledger.Transaction) (bool, error) {
	if info, err := os.Stdin.Stat(); err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return false, nil
	}

	remove := false
	err := huh.NewConfirm().
		Title("Delete this transaction?").
		Description(fmt.Sprintf("%s  %s  %s  %s", t.Date, t.Description, t.Category, t.Amount)).
		Affirmative("Delete").
		Negative("Keep").
		WithButtonAlignment(lipgloss.Left).
		Value(&remove).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirm delete: %w", err)
	}
	return remove, nil
}
