package model

import (
	"github.com/shopspring/decimal"
)

// Product 達到 WholesaleAmount 件數時改用 WholesalePrice 計價
type Product struct {
	ID              string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StoreID         string          `gorm:"not null;type:varchar(36);index" json:"storeId"`
	CategoryID      string          `gorm:"not null;type:varchar(36);index" json:"categoryId"`
	ColorID         string          `gorm:"not null;type:varchar(36);index" json:"colorId"`
	SizeID          string          `gorm:"not null;type:varchar(36);index" json:"sizeId"`
	Name            string          `gorm:"not null;type:varchar(255)" json:"name"`
	Price           decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	WholesalePrice  decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0" json:"wholesalePrice"`
	WholesaleAmount int             `gorm:"not null;default:0" json:"amountWholesalePrice"`
	Amount          int             `gorm:"not null;default:0" json:"amount"`
	IsFeatured      bool            `gorm:"not null;default:false" json:"isFeatured"`
	IsArchived      bool            `gorm:"not null;default:false" json:"isArchived"`
	Images          []Image         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	BaseModel
}

type Image struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProductID string `gorm:"not null;type:varchar(36);index" json:"productId"`
	URL       string `gorm:"not null;type:text" json:"url"`
	Position  int    `gorm:"not null;default:0" json:"position"`
	BaseModel
}
