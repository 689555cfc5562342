package transaction

import "github.com/carson-networks/budget-tracker/internal/ledger"

// Transaction is the API model for one CSV row.
type Transaction struct {
	Date        string `json:"date" doc:"Date in YYYY-MM-DD form"`
	Description string `json:"description" doc:"Free text description"`
	Category    string `json:"category" doc:"Category name"`
	Amount      string `json:"amount" doc:"Signed decimal amount, negative for expenses"`
}

func (t Transaction) toLedger() ledger.Transaction {
	return ledger.Transaction{
		Date:        t.Date,
		Description: t.Description,
		Category:    t.Category,
		Amount:      t.Amount,
	}
}

func fromLedger(t ledger.Transaction) Transaction {
	return Transaction{
		Date:        t.Date,
		Description: t.Description,
		Category:    t.Category,
		Amount:      t.Amount,
	}
}
