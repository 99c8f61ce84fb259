package database

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storefront-backend/internal/models"
)

func newMock(t *testing.T) (*DatabaseClient, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDatabaseClientFromDB(db), mock
}

func TestCreateOrder(t *testing.T) {
	client, mock := newMock(t)

	order := &models.Order{
		Name:    "Ann",
		Phone:   "+7 900 000 00 00",
		Address: "Moscow",
		Items:   []models.OrderItem{{Name: "Hoodie", Quantity: 2, Price: 1500}},
		Total:   3000,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders (name, phone, email, telegram, address, items, total)")).
		WithArgs("Ann", "+7 900 000 00 00", nil, nil, "Moscow",
			[]byte(`[{"name":"Hoodie","quantity":2,"price":1500}]`), 3000.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	id, err := client.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, models.ID(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_RollsBackOnFailure(t *testing.T) {
	client, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := client.CreateOrder(context.Background(), &models.Order{Name: "Ann"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create order")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContactMessage(t *testing.T) {
	client, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_messages (name, email, message)")).
		WithArgs("Bob", "bob@example.com", "Hello").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	id, err := client.CreateContactMessage(context.Background(), &models.ContactMessage{
		Name: "Bob", Email: "bob@example.com", Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ID(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	client, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contact_messages WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, client.DeleteOrder(context.Background(), 3))
	require.NoError(t, client.DeleteContactMessage(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus_NoRowsIsSuccess(t *testing.T) {
	client, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1 WHERE id = $2")).
		WithArgs("completed", int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, client.UpdateOrderStatus(context.Background(), 999, "completed"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProduct_OnlyStockFlag(t *testing.T) {
	client, mock := newMock(t)
	inStock := false

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET in_stock = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(false, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, client.UpdateProduct(context.Background(), 5, models.ProductPatch{InStock: &inStock}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAll(t *testing.T) {
	client, mock := newMock(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, name, phone, email, telegram, address, items, total, status, created_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "telegram", "address", "items", "total", "status", "created_at"}).
			AddRow(1, "Ann", "123", nil, "ann", "Moscow", []byte(`[{"id":"7","name":"Hoodie","image":"/img/h.jpg","size":"M","quantity":2,"price":1500}]`), 3000.0, "new", created))
	mock.ExpectQuery("SELECT id, name, email, message, created_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "message", "created_at"}))
	mock.ExpectQuery("SELECT id, name, price, image, images, category, description, sizes, in_stock, updated_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image", "images", "category", "description", "sizes", "in_stock", "updated_at"}).
			AddRow(9, "Cap", 900.0, nil, nil, "hats", "warm", "{S,M}", true, created))

	listing, err := client.ListAll(context.Background())
	require.NoError(t, err)

	require.Len(t, listing.Orders, 1)
	order := listing.Orders[0]
	assert.Equal(t, models.ID(1), order.ID)
	assert.Empty(t, order.Email)
	assert.Equal(t, "ann", order.Telegram)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Hoodie", order.Items[0].Name)
	assert.Equal(t, "M", order.Items[0].Size)
	items, err := json.Marshal(order.Items)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"7","name":"Hoodie","image":"/img/h.jpg","size":"M","quantity":2,"price":1500}]`, string(items))
	require.NotNil(t, order.CreatedAt)
	assert.True(t, created.Equal(*order.CreatedAt))

	assert.NotNil(t, listing.Messages)
	assert.Empty(t, listing.Messages)

	require.Len(t, listing.Products, 1)
	assert.Equal(t, []string{}, listing.Products[0].Images)
	assert.Equal(t, []string{"S", "M"}, listing.Products[0].Sizes)
	assert.True(t, listing.Products[0].InStock)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAll_PropagatesStoreFailure(t *testing.T) {
	client, mock := newMock(t)

	mock.ExpectQuery("SELECT id, name, phone").WillReturnError(errors.New("connection reset"))

	_, err := client.ListAll(context.Background())
	assert.ErrorContains(t, err, "failed to list orders")
}

func TestGetProduct(t *testing.T) {
	client, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image", "images", "category", "description", "sizes", "in_stock", "updated_at"}).
			AddRow(9, "Cap", 900.0, "https://cdn/cap.png", "{https://cdn/a.png}", nil, nil, nil, true, nil))

	product, err := client.GetProduct(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "https://cdn/cap.png", product.Image)
	assert.Equal(t, []string{"https://cdn/a.png"}, product.Images)
	assert.Equal(t, []string{}, product.Sizes)
	assert.Nil(t, product.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_Missing(t *testing.T) {
	client, mock := newMock(t)

	mock.ExpectQuery("WHERE id = \\$1").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image", "images", "category", "description", "sizes", "in_stock", "updated_at"}))

	product, err := client.GetProduct(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}
