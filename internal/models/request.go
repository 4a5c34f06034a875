package models

// Request is the match request a user sends to a lawyer. An accepted
// request IS the match: there is no separate match entity. UserID and
// LawyerID are plain references without FK constraints; either side may
// be deleted independently, leaving the request orphaned.
type Request struct {
	BaseModel
	UserID       string `gorm:"not null;index"`
	LawyerID     string `gorm:"not null;index"`
	AcceptStatus bool   `gorm:"default:false"`
}
