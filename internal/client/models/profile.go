package models

// ProfilePatch carries a partial profile update. Nil fields keep their current
// value. The identifier is deliberately absent: it never changes.
type ProfilePatch struct {
	Name   *string
	Email  *string
	Avatar *string
}

// Apply returns a copy of u with the set fields of p merged over it.
func (p ProfilePatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	return u
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Avatar == nil
}
