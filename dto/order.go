package dto

import "time"

// OrderStatus mirrors acme.orders.v1.OrderStatus without the absent values.
type OrderStatus string

const (
	OrderStatusPlaced  OrderStatus = "PLACED"
	OrderStatusShipped OrderStatus = "SHIPPED"
)

// Priority has no wire counterpart for PriorityRush.
type Priority int

const (
	PriorityNormal Priority = iota + 1
	PriorityRush
)

// Address is a postal address.
type Address struct {
	Street string
	City   string
}

// Line is one order line.
type Line struct {
	SKU   string `accessor:"sku"`
	Count uint32
}

// Order is the plain form of acme.orders.v1.Order.
type Order struct {
	OrderID         string
	Quantity        int32
	Status          OrderStatus
	ShippingAddress *Address
	Tags            []string
	Lines           []Line
	Counters        map[string]int64
	LineStatus      map[string]OrderStatus `json:"lineStatus"`
	History         []OrderStatus
	Note            *string
	Created         time.Time `accessor:"createdAt"`
	Payload         []byte
	CardToken       string
	VoucherCod      string
	Rating          float64
	AuditTrail      []string `accessor:"-"`

	revision int
}

// Revision returns the optimistic-locking revision.
func (o *Order) Revision() int {
	return o.revision
}
