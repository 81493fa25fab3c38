package model

type User struct {
	UserID             int64  `json:"user_id"`
	Email              string `json:"email"`
	GivenName          string `json:"given_name"`
	Surname            string `json:"surname"`
	City               string `json:"city"`
	PhoneNumber        string `json:"phone_number"`
	ProfileDescription string `json:"profile_description"`
	Password           string `json:"password"`
}

// UserOption is the minimal row offered in foreign-key select inputs.
type UserOption struct {
	UserID    int64  `json:"user_id"`
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}
