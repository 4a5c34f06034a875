package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	SearchService  SearchService
	RequestService RequestService
}
