package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

type invoiceRepositoryImpl struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amount, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	return inv, err
}

// List implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) List(ctx context.Context) ([]invoice.Summary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []invoice.Summary{}
	for rows.Next() {
		var s invoice.Summary
		if err := rows.Scan(&s.ID, &s.CompCode); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, s)
	}
	return invoices, rows.Err()
}

// GetByID implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, id int64) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice %d: %w", id, err)
	}
	return inv, nil
}

// GetOwner implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetOwner(ctx context.Context, id int64) (invoice.Owner, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.code, c.name, c.description
		FROM companies c
		JOIN invoices i ON c.code = i.comp_code
		WHERE i.id = $1
	`

	var owner invoice.Owner
	err := q.QueryRow(ctx, query, id).Scan(&owner.Code, &owner.Name, &owner.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Owner{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Owner{}, fmt.Errorf("failed to get company of invoice %d: %w", id, err)
	}
	return owner, nil
}

// ListByCompany implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) ListByCompany(ctx context.Context, compCode string) ([]invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE comp_code = $1 ORDER BY id`

	rows, err := q.Query(ctx, query, compCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices of company %s: %w", compCode, err)
	}
	defer rows.Close()

	invoices := []invoice.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// Create implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) Create(ctx context.Context, newInvoice invoice.NewInvoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoices (comp_code, amt, add_date)
		VALUES ($1, $2, $3)
		RETURNING ` + invoiceColumns

	return scanInvoice(q.QueryRow(ctx, query, newInvoice.CompCode, newInvoice.Amount, newInvoice.AddDate))
}

// Update implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) Update(ctx context.Context, id int64, change invoice.Change) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET amt = $1,
			paid = $2,
			paid_date = $3
		WHERE id = $4
		RETURNING ` + invoiceColumns

	inv, err := scanInvoice(q.QueryRow(ctx, query, change.Amount, change.Paid, change.PaidDate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, err
	}
	return inv, nil
}

// Delete implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}
	return nil
}
