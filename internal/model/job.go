package model

type Job struct {
	JobID                  int64  `json:"job_id"`
	MemberUserID           int64  `json:"member_user_id"`
	RequiredCaregivingType string `json:"required_caregiving_type"`
	OtherRequirements      string `json:"other_requirements"`
	DatePosted             string `json:"date_posted"`
}

// JobRow is a job joined with the posting member's user record.
type JobRow struct {
	Job
	MemberName string `json:"member_name"`
}
