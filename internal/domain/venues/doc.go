// Package venues defines the venue domain entities, query types and the
// service and repository contracts for venue-related operations.
package venues
