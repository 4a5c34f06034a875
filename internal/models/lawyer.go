package models

import "gorm.io/datatypes"

type Lawyer struct {
	BaseModel
	FirstName      string `gorm:"not null"`
	LastName       string `gorm:"not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	AccountType    string `gorm:"not null"`
	PhoneNo        string `gorm:"not null"`
	Bio            string
	Achievements   datatypes.JSON `gorm:"type:jsonb"` // ["..."]
	Qualifications datatypes.JSON `gorm:"type:jsonb"` // ["..."]
	CaseDomain     string         `gorm:"not null;index"`
	Location       string         `gorm:"not null;index"`
	YearOfJoining  int            `gorm:"not null"`
}
