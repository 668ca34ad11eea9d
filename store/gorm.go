package store

import (
	"context"
	"errors"
	"time"

	"github.com/salespulse/backend/models"
	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(ctx context.Context, username, passwordHash, role string) (models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return models.User{}, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *GormStore) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *GormStore) InsertSalesRecords(ctx context.Context, records []models.SalesRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *GormStore) SalesSummary(ctx context.Context) (Summary, error) {
	var summary Summary
	err := s.db.WithContext(ctx).Model(&models.SalesRecord{}).
		Select("COALESCE(SUM(amount), 0) AS total_sales, COUNT(id) AS total_transactions, COALESCE(AVG(amount), 0) AS average_order_value").
		Scan(&summary).Error
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}

func (s *GormStore) TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error) {
	var customers []TopCustomer
	err := s.db.WithContext(ctx).Model(&models.SalesRecord{}).
		Select("customer_name, SUM(amount) AS total_sales, COUNT(id) AS transaction_count").
		Group("customer_name").
		Order("total_sales DESC, customer_name ASC").
		Limit(limit).
		Scan(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *GormStore) SalesByDateRange(ctx context.Context, from, to time.Time) ([]models.SalesRecord, error) {
	// The end date is inclusive: compare against the start of the next day.
	var records []models.SalesRecord
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to.AddDate(0, 0, 1)).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
