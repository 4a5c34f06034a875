package dto

import "time"

type LawyerResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"emailAddress"`
	AccountType    string    `json:"accountType"`
	PhoneNo        string    `json:"phoneNo"`
	Bio            string    `json:"bio,omitempty"`
	Achievements   []string  `json:"achievements,omitempty"`
	Qualifications []string  `json:"qualifications,omitempty"`
	CaseDomain     string    `json:"caseDomain"`
	Location       string    `json:"location"`
	YearOfJoining  int       `json:"yearOfJoining"`
	CreatedAt      time.Time `json:"created_at"`
}

type SearchByCaseDomainRequest struct {
	CaseDomain string `json:"caseDomain" binding:"required"`
}

type SearchByLocationRequest struct {
	Location string `json:"location" binding:"required"`
}
