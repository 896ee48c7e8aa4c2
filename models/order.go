package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderPending = "pending"
	OrderPaid    = "paid"
)

type OrderItem struct {
	Id       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type Order struct {
	OrderId   string          `json:"orderId"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Buyer     string          `json:"buyer"`
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
}

type CheckoutRequest struct {
	Items []OrderItem `json:"items"`
}

type CheckoutResponse struct {
	Order     Order  `json:"order"`
	UpiUrl    string `json:"upi_url"`
	QrCodeUrl string `json:"qr_code_url"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}
