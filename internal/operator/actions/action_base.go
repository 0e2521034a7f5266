package actions

import (
	"context"

	"github.com/carson-networks/property-ledger/internal/storage"
)

// IAction is a unit of write work. Perform runs inside one database transaction owned by the operator.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// ICompensator is implemented by actions with side effects outside the database.
// The operator calls Compensate when Perform or the commit fails.
type ICompensator interface {
	Compensate(ctx context.Context) error
}
