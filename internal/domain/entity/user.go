package entity

// Role is the account role carried in the session.
type Role string

const (
	RoleUser   Role = "USER"
	RoleVendor Role = "VENDOR"
	RoleAdmin  Role = "ADMIN"
)

// User is the signed-in account as returned by the login call.
type User struct {
	ID          ID     `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
	VendorID    ID     `json:"vendorId,omitempty"`

	PhoneNumber    string `json:"phoneNumber,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// ProfileUpdate changes the editable profile fields. Nil fields are left as
// they are.
type ProfileUpdate struct {
	DisplayName    *string `json:"displayName,omitempty"`
	PhoneNumber    *string `json:"phoneNumber,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.PhoneNumber == nil && u.ProfilePicture == nil
}

// Apply returns a copy of user with the update applied.
func (u ProfileUpdate) Apply(user User) User {
	if u.DisplayName != nil {
		user.DisplayName = *u.DisplayName
	}
	if u.PhoneNumber != nil {
		user.PhoneNumber = *u.PhoneNumber
	}
	if u.ProfilePicture != nil {
		user.ProfilePicture = *u.ProfilePicture
	}

	return user
}

// Session is the locally persisted sign-in record.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// IsZero reports whether no one is signed in.
func (s Session) IsZero() bool {
	return s.Token == ""
}
