package dto

type RegisterUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"emailAddress" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	PhoneNo   string `json:"phoneNo" binding:"required"`
	Location  string `json:"location"`
}

type RegisterLawyerRequest struct {
	FirstName      string   `json:"firstName" binding:"required"`
	LastName       string   `json:"lastName" binding:"required"`
	Email          string   `json:"emailAddress" binding:"required,email"`
	Password       string   `json:"password" binding:"required,min=8"`
	AccountType    string   `json:"accountType" binding:"required"`
	PhoneNo        string   `json:"phoneNo" binding:"required"`
	Bio            string   `json:"bio"`
	Achievements   []string `json:"achievements"`
	Qualifications []string `json:"qualifications"`
	CaseDomain     string   `json:"caseDomain" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	YearOfJoining  int      `json:"yearOfJoining" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"emailAddress" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginUserResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type LoginLawyerResponse struct {
	AccessToken string          `json:"access_token"`
	Lawyer      *LawyerResponse `json:"lawyer"`
}
