// internal/models/order.go
package models

import "github.com/google/uuid"

type Order struct {
	BaseModel
	UserID          uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	TotalAmount     float64       `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'Created';index"`
	StripeSessionID string        `json:"stripe_session_id" gorm:"size:255"`

	User  *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is a point-in-time snapshot of the purchased product. Name,
// category label, price and image are denormalized on purpose so the order
// stays displayable after the product is edited or deleted; ProductID is a
// weak reference, not an enforced foreign key.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Category  string    `json:"category" gorm:"size:100"`
	Qty       int       `json:"qty" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Image     string    `json:"image" gorm:"size:512"`
}
