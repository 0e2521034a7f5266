package service

import (
	"context"
	"time"

	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/filestore"
	"github.com/carson-networks/property-ledger/internal/operator/actions"
	"github.com/carson-networks/property-ledger/internal/storage"
)

type readStorage interface {
	Read() *storage.Reader
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Properties   *PropertyService
	Credits      *CreditService
	Transactions *TransactionService
	Documents    *DocumentService
}

// NewService creates a new Service. Writes go through the operator, reads go straight to storage.
func NewService(store readStorage, operator actionProcessor, files filestore.Store, maxUploadBytes int64) *Service {
	d := deps{storage: store, operator: operator, now: time.Now}
	return &Service{
		Properties:   &PropertyService{deps: d},
		Credits:      &CreditService{deps: d},
		Transactions: &TransactionService{deps: d},
		Documents:    &DocumentService{deps: d, files: files, maxUploadBytes: maxUploadBytes},
	}
}

// SetClock replaces the clock "today" is derived from.
func (s *Service) SetClock(now func() time.Time) {
	s.Properties.now = now
	s.Credits.now = now
	s.Transactions.now = now
	s.Documents.now = now
}

type deps struct {
	storage  readStorage
	operator actionProcessor
	now      func() time.Time
}

func (d deps) today() time.Time {
	return domain.Day(d.now())
}
