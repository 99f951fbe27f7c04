package models

// UserType classifies a user prototype.
type UserType string

const (
	UserTypeAdmin  UserType = "admin"
	UserTypeReader UserType = "reader"
	UserTypeWriter UserType = "writer"
)

// ValidUserTypes is the set of all valid user types.
var ValidUserTypes = []UserType{
	UserTypeAdmin,
	UserTypeReader,
	UserTypeWriter,
}

// IsValid returns true if the user type is recognized.
func (ut UserType) IsValid() bool {
	for _, v := range ValidUserTypes {
		if ut == v {
			return true
		}
	}
	return false
}

// User is an account template. The type is fixed at construction.
type User struct {
	ID          int64    `json:"id" yaml:"id"`
	Username    string   `json:"username" yaml:"username"`
	Email       string   `json:"email" yaml:"email"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
	Age         int      `json:"age" yaml:"age"`
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	UserType    UserType `json:"type" yaml:"type"`
}

// NewUser creates a user of the given type.
func NewUser(id int64, username, email, displayName string, age int, ut UserType) *User {
	return &User{
		ID:          id,
		Username:    username,
		Email:       email,
		DisplayName: displayName,
		Age:         age,
		UserType:    ut,
	}
}

// Type returns the user's discriminator.
func (u *User) Type() UserType { return u.UserType }

// Clone returns an independent copy of u.
func (u *User) Clone() *User {
	c := *u
	// Deep-copy mutable fields so the clone shares no storage with the prototype.
	if u.Permissions != nil {
		c.Permissions = make([]string, len(u.Permissions))
		copy(c.Permissions, u.Permissions)
	}
	return &c
}
