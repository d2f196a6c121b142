package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

// Order records a checkout. ProductID is an opaque reference; the checkout
// surface does not verify it points at an existing product.
type Order struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID   string             `json:"product_id" bson:"product_id"`
	Email       string             `json:"email" bson:"email"`
	Amount      float64            `json:"amount" bson:"amount"`
	Status      string             `json:"status" bson:"status"`
	DownloadURL string             `json:"download_url,omitempty" bson:"download_url,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Stamp sets both timestamps to the same instant. Orders are immutable after
// insertion.
func (o *Order) Stamp(now time.Time) {
	o.CreatedAt = now
	o.UpdatedAt = now
}
