package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/storage"
)

type IAction interface {
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
