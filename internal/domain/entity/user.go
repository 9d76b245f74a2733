// Package entity contains the core business objects of the project,
// each representing a display-oriented projection of a backend record.
package entity

import "time"

// User is the display-shaped account record held by the session.
// Identifiers are strings on this side of the mapping layer; the backend
// uses numeric ids on the wire.
type User struct {
	ID         string    // Stringified backend id.
	Email      string    // Login identifier.
	Name       string    // Full display name.
	Role       Role      // Display role; clamped to owner/manager by the mapper.
	SupplierID string    // Stringified id of the linked supplier, empty when none.
	CreatedAt  time.Time // Timestamp of account creation, backend-authoritative.
}
