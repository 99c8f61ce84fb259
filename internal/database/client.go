// Package database is the relational store adapter. Every operation runs on
// a dedicated connection that is released before the call returns; writes
// run inside a transaction committed after the statement succeeds.
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"storefront-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(ctx context.Context, connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// NewDatabaseClientFromDB wraps an already opened handle.
func NewDatabaseClientFromDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

func (d *DatabaseClient) DB() *sql.DB {
	return d.db
}

func (d *DatabaseClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

func (d *DatabaseClient) withConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := d.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

func (d *DatabaseClient) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	return d.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	})
}

func (d *DatabaseClient) CreateOrder(ctx context.Context, order *models.Order) (models.ID, error) {
	items := order.Items
	if items == nil {
		items = []models.OrderItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return 0, fmt.Errorf("failed to encode order items: %w", err)
	}

	var id models.ID
	err = d.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			INSERT INTO orders (name, phone, email, telegram, address, items, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, order.Name, order.Phone, nullString(order.Email), nullString(order.Telegram),
			order.Address, itemsJSON, order.Total).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	return id, nil
}

func (d *DatabaseClient) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (models.ID, error) {
	var id models.ID
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			INSERT INTO contact_messages (name, email, message)
			VALUES ($1, $2, $3)
			RETURNING id
		`, msg.Name, msg.Email, msg.Message).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create contact message: %w", err)
	}

	return id, nil
}

func (d *DatabaseClient) DeleteOrder(ctx context.Context, id models.ID) error {
	if err := d.exec(ctx, "DELETE FROM orders WHERE id = $1", id.Int64()); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (d *DatabaseClient) DeleteContactMessage(ctx context.Context, id models.ID) error {
	if err := d.exec(ctx, "DELETE FROM contact_messages WHERE id = $1", id.Int64()); err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return nil
}

// UpdateOrderStatus does not check that the order exists; zero affected rows
// is not an error.
func (d *DatabaseClient) UpdateOrderStatus(ctx context.Context, id models.ID, status string) error {
	if err := d.exec(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status, id.Int64()); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

// UpdateProduct writes only the fields set in patch and always refreshes
// updated_at.
func (d *DatabaseClient) UpdateProduct(ctx context.Context, id models.ID, patch models.ProductPatch) error {
	query, args := buildProductUpdate(id, patch)
	if err := d.exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (d *DatabaseClient) exec(ctx context.Context, query string, args ...any) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
}

// GetProduct returns nil without an error when no product has the id.
func (d *DatabaseClient) GetProduct(ctx context.Context, id models.ID) (*models.Product, error) {
	var product *models.Product
	err := d.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, `
			SELECT id, name, price, image, images, category, description, sizes, in_stock, updated_at
			FROM products
			WHERE id = $1
		`, id)

		p, err := scanProduct(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get product %d: %w", id, err)
		}
		product = p
		return nil
	})
	return product, err
}

// ListAll reads orders, messages and products on a single connection.
func (d *DatabaseClient) ListAll(ctx context.Context) (*models.ListingResponse, error) {
	listing := &models.ListingResponse{}
	err := d.withConn(ctx, func(conn *sql.Conn) error {
		var err error
		if listing.Orders, err = listOrders(ctx, conn); err != nil {
			return err
		}
		if listing.Messages, err = listContactMessages(ctx, conn); err != nil {
			return err
		}
		listing.Products, err = listProducts(ctx, conn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func listOrders(ctx context.Context, conn *sql.Conn) ([]models.Order, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT id, name, phone, email, telegram, address, items, total, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var (
			order           models.Order
			email, telegram sql.NullString
			items           []byte
			createdAt       sql.NullTime
		)
		if err := rows.Scan(
			&order.ID, &order.Name, &order.Phone, &email, &telegram, &order.Address,
			&items, &order.Total, &order.Status, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		order.Email = email.String
		order.Telegram = telegram.String
		order.CreatedAt = timePtr(createdAt)
		order.Items = []models.OrderItem{}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &order.Items); err != nil {
				return nil, fmt.Errorf("failed to decode items of order %d: %w", order.ID, err)
			}
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func listContactMessages(ctx context.Context, conn *sql.Conn) ([]models.ContactMessage, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var (
			msg       models.ContactMessage
			createdAt sql.NullTime
		)
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		msg.CreatedAt = timePtr(createdAt)
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

func listProducts(ctx context.Context, conn *sql.Conn) ([]models.Product, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT id, name, price, image, images, category, description, sizes, in_stock, updated_at
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p                            models.Product
		image, category, description sql.NullString
		images, sizes                pq.StringArray
		updatedAt                    sql.NullTime
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Price, &image, &images, &category, &description,
		&sizes, &p.InStock, &updatedAt,
	); err != nil {
		return nil, err
	}

	p.Image = image.String
	p.Category = category.String
	p.Description = description.String
	p.Images = nonNil(images)
	p.Sizes = nonNil(sizes)
	p.UpdatedAt = timePtr(updatedAt)
	return &p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func nonNil(a pq.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}
