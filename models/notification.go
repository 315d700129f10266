package models

import "time"

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	StatusSent   = "sent"
	StatusFailed = "failed"

	TypeOrderConfirmed = "order_confirmed"
	TypeOTPSMS         = "otp_sms"
)

type NotificationLog struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID string    `json:"session_id" gorm:"index"`
	Recipient string    `json:"recipient"`
	Type      string    `json:"type"`
	Channel   string    `json:"channel"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type NotificationFilter struct {
	SessionID string
	Status    string
	Channel   string
	Page      int
	PageSize  int
}
