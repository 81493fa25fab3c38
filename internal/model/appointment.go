package model

type Appointment struct {
	AppointmentID   int64   `json:"appointment_id"`
	CaregiverUserID int64   `json:"caregiver_user_id"`
	MemberUserID    int64   `json:"member_user_id"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	WorkHours       float64 `json:"work_hours"`
	Status          string  `json:"status"`
}

// AppointmentRow is an appointment joined with the caregiver's and member's
// user records for list views.
type AppointmentRow struct {
	Appointment
	CaregiverName string `json:"caregiver_name"`
	MemberName    string `json:"member_name"`
}
