package identity

// Roles assigned to users.
const (
	RoleManager = "Manager"
	RoleOwner   = "Owner"
	RoleLessee  = "Lessee"
)
