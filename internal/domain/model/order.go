package model

import (
	"github.com/shopspring/decimal"
)

// Order.TotalPrice is whatever the storefront sent, it is not recomputed from items.
type Order struct {
	ID         string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StoreID    string          `gorm:"not null;type:varchar(36);index" json:"storeId"`
	Phone      string          `gorm:"not null;type:varchar(64);index" json:"phone"`
	Address    string          `gorm:"not null;type:text" json:"address"`
	TotalPrice decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"totalPrice"`
	IsPaid     bool            `gorm:"not null;default:false" json:"isPaid"`
	OrderItems []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	BaseModel
}

// OrderItem has no quantity, a product listed twice is two rows.
type OrderItem struct {
	ID        string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderID   string   `gorm:"not null;type:varchar(36);index" json:"orderId"`
	ProductID string   `gorm:"not null;type:varchar(36);index" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	BaseModel
}

// CheckoutRequest is the storefront cart as submitted.
type CheckoutRequest struct {
	ProductIDs []string
	Phone      string
	Address    string
	TotalPrice decimal.Decimal
}

// PaymentLineItem follows the payment processor checkout-session line item shape.
type PaymentLineItem struct {
	Currency    string `json:"currency"`
	UnitAmount  int64  `json:"unitAmount"`
	ProductName string `json:"productName"`
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
}
