package handlers

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	SearchHandler  *SearchHandler
	RequestHandler *RequestHandler
}
