package dto

import (
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"github.com/shopspring/decimal"
)

// CheckoutDTO storefront 送來的購物車
// totalPrice 可以是數字或字串
type CheckoutDTO struct {
	ProductIDs []string         `json:"productIds"`
	Phone      string           `json:"phone"`
	Address    string           `json:"address"`
	TotalPrice *decimal.Decimal `json:"totalPrice"`
}

func (d *CheckoutDTO) ToModel() model.CheckoutRequest {
	req := model.CheckoutRequest{
		ProductIDs: d.ProductIDs,
		Phone:      d.Phone,
		Address:    d.Address,
	}
	if d.TotalPrice != nil {
		req.TotalPrice = *d.TotalPrice
	}
	return req
}

type CheckoutSessionResponse struct {
	Order     *model.Order            `json:"order"`
	LineItems []model.PaymentLineItem `json:"lineItems"`
}

type OrderLookupDTO struct {
	Phone string `json:"phone"`
}
