package domain

// Grant classifies a principal relative to a target record's owner.
type Grant int

const (
	GrantNone Grant = iota
	GrantOwner
	GrantAdmin
)

// Access answers whether a principal may act on a record owned by ownerID.
//
// Precedence: admins are granted on every record regardless of ownership;
// otherwise the principal must be the owner. Create has no target record and
// never consults this; listing applies the same rule as a store-level filter
// instead of a per-record check.
func Access(p Principal, ownerID string) Grant {
	switch p.Role {
	case RoleAdmin:
		return GrantAdmin
	case RoleUser:
		if p.ID != "" && p.ID == ownerID {
			return GrantOwner
		}
	}
	return GrantNone
}

// Allowed reports whether the grant permits the operation at all.
func (g Grant) Allowed() bool {
	return g != GrantNone
}
