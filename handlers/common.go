// Package handlers implements the JSON API used to administer the site.
package handlers

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined responses
	OKResponse       = Response{}
	NopeResponse     = Response{"nope"}
	NotFoundResponse = Response{"not found"}
	ExistsResponse   = Response{"already exists"}
	DBErrorResponse  = Response{"DB error"}
)
