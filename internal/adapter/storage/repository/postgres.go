package repository

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/restocinta/orderdesk/internal/adapter/storage"
	"github.com/restocinta/orderdesk/internal/core/domain"
)

const orderColumns = "id, external_id, items, total, status, invoice_url, table_number, created_at"

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	statement := r.db.QueryBuilder.Insert("orders").
		Columns("items", "total", "status", "table_number").
		Values(items, order.Total, order.Status, order.TableNumber).
		Suffix("RETURNING id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanOrder(r.db.QueryRow(ctx, sql, args...))
}

// LinkOrder ties the order to its payment-gateway transaction by setting
// external_id = id. The predicate keeps the write idempotent: a relink of
// an already linked order matches the row again without changing it.
func (r *Repository) LinkOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Update("orders").
		Set("external_id", sq.Expr("id")).
		Where(sq.Eq{"id": id}).
		Where("(external_id IS NULL OR external_id = id)")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	res, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return r.ReadOrder(ctx, id)
}

// AttachInvoice stores the payment URL only while the column is still null.
// A zero-row outcome against an existing order means the URL was already
// set; the stored value wins and is returned untouched.
func (r *Repository) AttachInvoice(ctx context.Context, id uuid.UUID, invoiceURL string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Update("orders").
		Set("invoice_url", invoiceURL).
		Where(sq.Eq{"id": id}).
		Where("invoice_url IS NULL")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	res, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		order, err := r.ReadOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		if order.InvoiceURL == nil {
			return nil, domain.ErrNoUpdatedData
		}
		return order, nil
	}

	return r.ReadOrder(ctx, id)
}

// SettleOrderPayment is the single conditional update behind webhook
// reconciliation: predicate and write are one statement at the store, so
// concurrent duplicate deliveries race for the same row and exactly one
// of them reports true.
func (r *Repository) SettleOrderPayment(ctx context.Context, externalID uuid.UUID) (bool, error) {
	statement := r.db.QueryBuilder.Update("orders").
		Set("status", domain.OrderStatusPaid).
		Where(sq.Eq{"external_id": externalID}).
		Where(sq.Eq{"status": domain.OrderStatusPending})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() == 1, nil
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, current, next domain.OrderStatus) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Update("orders").
		Set("status", next).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": current})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	res, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		if _, err := r.ReadOrder(ctx, id); err != nil {
			return nil, err
		}
		// Row exists but the status moved underneath us.
		return nil, domain.ErrNoUpdatedData
	}

	return r.ReadOrder(ctx, id)
}

func (r *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ClaimReceiptPrint(ctx context.Context, orderID uuid.UUID) (bool, error) {
	statement := r.db.QueryBuilder.Insert("receipt_prints").
		Columns("order_id").
		Values(orderID).
		Suffix("ON CONFLICT (order_id) DO NOTHING")

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() == 1, nil
}

func (r *Repository) ListUnprintedPaid(ctx context.Context) ([]uuid.UUID, error) {
	statement := r.db.QueryBuilder.
		Select("o.id").
		From("orders o").
		LeftJoin("receipt_prints p ON p.order_id = o.id").
		Where(sq.Eq{"o.status": domain.OrderStatusPaid}).
		Where("p.order_id IS NULL")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *Repository) ListMenu(ctx context.Context) ([]*domain.MenuItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "price", "image_url").
		From("menu").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.MenuItem, 0)
	for rows.Next() {
		item := domain.MenuItem{}
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Price,
			&item.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) CreateStaff(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	statement := r.db.QueryBuilder.
		Insert("staff").
		Columns("login", "password").
		Values(staff.Login, staff.Password).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&staff.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return staff, nil
}

func (r *Repository) GetStaffByLogin(ctx context.Context, login string) (*domain.Staff, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "password").
		From("staff").
		Where(sq.Eq{"login": login})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	staff := domain.Staff{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&staff.ID,
		&staff.Login,
		&staff.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &staff, nil
}

func (r *Repository) scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var items []byte

	err := row.Scan(
		&order.ID,
		&order.ExternalID,
		&items,
		&order.Total,
		&order.Status,
		&order.InvoiceURL,
		&order.TableNumber,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, err
	}

	return &order, nil
}
