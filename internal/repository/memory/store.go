// Package memory is an in-memory storage gateway with the same contract as
// the PostgreSQL repositories: primary keys, foreign keys, NOT NULL columns
// and ON DELETE CASCADE are enforced, and failures are unclassified errors.
package memory

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotNull             = errors.New("null value violates not-null constraint")
	ErrCheckViolation      = errors.New("new row violates check constraint")
	ErrForeignKeyViolation = errors.New("insert or update violates foreign key constraint")
)

// DuplicateKeyError is returned when an insert reuses a unique value.
type DuplicateKeyError struct {
	Table string
	Key   string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key value violates unique constraint on %s: %s", e.Table, e.Key)
}

type companyRow struct {
	code        string
	name        string
	description *string
}

type invoiceRow struct {
	id       int64
	compCode string
	amt      decimal.Decimal
	paid     bool
	addDate  time.Time
	paidDate *time.Time
}

// Store holds both tables behind one lock so cascades are atomic.
type Store struct {
	mu        sync.RWMutex
	companies map[string]companyRow
	invoices  map[int64]invoiceRow
	nextID    int64

	// ErrorOnNextCall is returned, and cleared, by the next repository call.
	ErrorOnNextCall error
}

func NewStore() *Store {
	return &Store{
		companies: make(map[string]companyRow),
		invoices:  make(map[int64]invoiceRow),
	}
}

// checkError returns and clears any injected error. Callers hold mu for writing.
func (s *Store) checkError() error {
	if s.ErrorOnNextCall != nil {
		err := s.ErrorOnNextCall
		s.ErrorOnNextCall = nil
		return err
	}
	return nil
}

// CompanyCount reports the number of stored companies.
func (s *Store) CompanyCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.companies)
}

// InvoiceCount reports the number of stored invoices.
func (s *Store) InvoiceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.invoices)
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
