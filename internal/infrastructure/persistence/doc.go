// Package persistence provides the GORM-backed repository implementations
// and database connection management for the booking service.
package persistence
