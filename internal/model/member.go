package model

// Member is a care recipient. Members are referenced by appointments and
// jobs but have no mutation routes of their own; rows are provisioned
// outside the admin surface.
type Member struct {
	MemberUserID int64  `json:"member_user_id"`
	HouseRules   string `json:"house_rules"`
}

// MemberOption is the minimal row offered in foreign-key select inputs.
type MemberOption struct {
	MemberUserID int64  `json:"member_user_id"`
	GivenName    string `json:"given_name"`
	Surname      string `json:"surname"`
}
