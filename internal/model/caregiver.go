package model

type Caregiver struct {
	CaregiverUserID int64   `json:"caregiver_user_id"`
	Photo           string  `json:"photo"`
	Gender          string  `json:"gender"`
	CaregivingType  string  `json:"caregiving_type"`
	HourlyRate      float64 `json:"hourly_rate"`
}

// CaregiverRow is a caregiver joined with its user record for list views.
type CaregiverRow struct {
	Caregiver
	GivenName   string `json:"given_name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}
