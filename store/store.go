// Package store holds the persistent record store behind the API. Handlers
// talk to the Store interface; the gorm implementation lives in gorm.go.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/salespulse/backend/models"
)

var (
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already registered")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)

// Summary aggregates every persisted sales record.
type Summary struct {
	TotalSales        float64
	TotalTransactions int64
	AverageOrderValue float64
}

// TopCustomer is one group in the revenue ranking.
type TopCustomer struct {
	CustomerName     string  `json:"customer_name"`
	TotalSales       float64 `json:"total_sales"`
	TransactionCount int64   `json:"transaction_count"`
}

type Store interface {
	// CreateUser stores a new user with an already-derived password hash.
	CreateUser(ctx context.Context, username, passwordHash, role string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// InsertSalesRecords persists the batch inside one transaction. Either
	// every record is committed or none are.
	InsertSalesRecords(ctx context.Context, records []models.SalesRecord) (int, error)

	SalesSummary(ctx context.Context) (Summary, error)
	// TopCustomers ranks customers by total revenue, descending. Ties are
	// broken by customer name ascending so the order is stable.
	TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error)
	// SalesByDateRange returns records with from <= date < to+1day,
	// newest first. Both bounds are calendar dates.
	SalesByDateRange(ctx context.Context, from, to time.Time) ([]models.SalesRecord, error)
}
