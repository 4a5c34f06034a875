package dto

import "time"

type SendRequestRequest struct {
	LawyerID string `json:"lawyerId" binding:"required"`
}

// NotificationIDRequest identifies the request record to accept or
// decline. The field name is part of the wire contract.
type NotificationIDRequest struct {
	NotificationID string `json:"notificationId" binding:"required"`
}

type RequestResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	LawyerID     string    `json:"lawyerId"`
	AcceptStatus bool      `json:"acceptStatus"`
	CreatedAt    time.Time `json:"created_at"`
}

// PendingRequest pairs a request record with the resolved profile of the
// user who sent it.
type PendingRequest struct {
	User         *UserResponse    `json:"user"`
	Notification *RequestResponse `json:"notification"`
}
