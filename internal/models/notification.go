// internal/models/notification.go
package models

import "github.com/google/uuid"

type Notification struct {
	BaseModel
	Type    NotificationType `json:"type" gorm:"type:varchar(20);default:'order';not null;index"`
	Title   string           `json:"title" gorm:"size:255;not null"`
	Message string           `json:"message" gorm:"type:text;not null"`
	OrderID *uuid.UUID       `json:"order_id" gorm:"type:uuid"`
	UserID  *uuid.UUID       `json:"user_id" gorm:"type:uuid"`
	IsRead  bool             `json:"is_read" gorm:"default:false;index"`

	Order *Order `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type AuditLog struct {
	BaseModel
	UserID       *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	Action       string     `json:"action" gorm:"size:255;not null"`
	ResourceType string     `json:"resource_type" gorm:"size:100;index"`
	ResourceID   *uuid.UUID `json:"resource_id" gorm:"type:uuid"`
	IPAddress    string     `json:"ip_address" gorm:"size:45"`
	UserAgent    string     `json:"user_agent" gorm:"size:512"`
	NewValues    JSONB      `json:"new_values,omitempty" gorm:"type:jsonb"`
}
