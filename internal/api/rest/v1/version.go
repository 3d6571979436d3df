// Package v1 contains the version 1 REST API handlers, DTOs and routes
// for the booking service.
package v1

// BasePath is the URL prefix for all version 1 API routes.
const BasePath = "/api/v1/fyyur"
