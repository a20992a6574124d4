package user

// User is an account profile. Email is immutable after registration.
type User struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"displayName"`
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Interests   []string `json:"interests"`
}

// FullName returns "First Last" when both names are set, falling back to
// the display name otherwise.
func (u User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.DisplayName
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account creation payload.
type Registration struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	DisplayName string   `json:"displayName"`
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Interests   []string `json:"interests,omitempty"`
}

// Update is the partial profile update payload for PATCH /users/me.
// Nil fields are omitted and left untouched by the server.
type Update struct {
	DisplayName *string   `json:"displayName,omitempty"`
	FirstName   *string   `json:"firstName,omitempty"`
	LastName    *string   `json:"lastName,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Interests   *[]string `json:"interests,omitempty"`
}

// AuthResponse is returned by both login and registration.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"userId"`
	User        *User  `json:"user,omitempty"`
}
