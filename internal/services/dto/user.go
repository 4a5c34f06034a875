package dto

import "time"

type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"emailAddress"`
	PhoneNo   string    `json:"phoneNo"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
