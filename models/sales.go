package models

import (
	"time"
)

// SalesRecord is a single uploaded transaction. Date is the transaction
// date from the CSV, CreatedAt the ingestion time.
type SalesRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"not null" json:"customer_name"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	UploadedBy   uint      `json:"uploaded_by"`
	Uploader     *User     `gorm:"foreignKey:UploadedBy" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (SalesRecord) TableName() string {
	return "sales_records"
}
