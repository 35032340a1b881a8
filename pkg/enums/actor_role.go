package enums

// ActorRole distinguishes shopper and admin principals in tokens and logs.
type ActorRole string

const (
	ActorRoleShopper ActorRole = "shopper"
	ActorRoleAdmin   ActorRole = "admin"
)

// String implements fmt.Stringer.
func (r ActorRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ActorRole.
func (r ActorRole) IsValid() bool {
	return r == ActorRoleShopper || r == ActorRoleAdmin
}
