package models

import "time"

// OrderStatus classifies an order's lifecycle stage. Orders are append-only
// in this demo, so the only status ever written is confirmed.
type OrderStatus string

const OrderStatusConfirmed OrderStatus = "confirmed"

// OrderItem is a snapshot of a cart line at checkout time. It copies the
// display fields so later cart mutations cannot reach into the order.
type OrderItem struct {
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Specs    string `json:"specs"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

// Order is an immutable record of a checkout. Amounts are numeric, not
// display strings: Subtotal and Total are derived from the item prices at
// the moment the order was placed.
type Order struct {
	ID       string      `json:"id"`
	UserID   int64       `json:"userId"`
	Date     time.Time   `json:"date"`
	Items    []OrderItem `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Discount float64     `json:"discount"`
	Total    float64     `json:"total"`
	Status   OrderStatus `json:"status"`
}
