package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	NotificationTypeShipperAlert  = "shipper_alert"
	NotificationTypeNewRecruit    = "new_recruit"
	NotificationTypeStatusChange  = "status_change"
	NotificationTypeAdminRequest  = "admin_request"
	NotificationTypeRequestResult = "request_result"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Type    string `gorm:"not null"` // "shipper_alert", "new_recruit", "status_change"
	Title   string `gorm:"not null"`
	Message string
	Link    string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"recruit_id": "...", "ship_date": "..."}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}
