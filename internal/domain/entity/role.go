// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have on the platform.
type Role string

const (
	// RoleOwner indicates the supplier account owner.
	RoleOwner Role = "owner"
	// RoleManager indicates a supplier staff manager.
	RoleManager Role = "manager"
	// RoleSalesRep indicates a supplier sales representative.
	RoleSalesRep Role = "sales_representative"
	// RoleConsumer indicates a consumer-side account.
	RoleConsumer Role = "consumer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleSalesRep, RoleConsumer:
		return true
	default:
		return false
	}
}
