package store

import (
	"database/sql"
	"fmt"

	"carebase/internal/model"
)

type JobStore struct {
	db *sql.DB
}

func NewJobStore(db *sql.DB) *JobStore {
	return &JobStore{db: db}
}

func (s *JobStore) Create(memberUserID int64, requiredCaregivingType, otherRequirements, datePosted string) (*model.Job, error) {
	result, err := s.db.Exec(
		`INSERT INTO JOB (member_user_id, required_caregiving_type, other_requirements, date_posted)
		 VALUES (?, ?, ?, ?)`,
		memberUserID, requiredCaregivingType, otherRequirements, datePosted,
	)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// List returns every job joined with the posting member's display name,
// newest posting first.
func (s *JobStore) List() ([]model.JobRow, error) {
	rows, err := s.db.Query(
		`SELECT j.job_id, j.member_user_id, j.required_caregiving_type, j.other_requirements, j.date_posted,
		        u.given_name || ' ' || u.surname AS member_name
		 FROM JOB j
		 JOIN MEMBER m ON j.member_user_id = m.member_user_id
		 JOIN "USER" u ON m.member_user_id = u.user_id
		 ORDER BY j.date_posted DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.JobRow
	for rows.Next() {
		var j model.JobRow
		err := rows.Scan(
			&j.JobID, &j.MemberUserID, &j.RequiredCaregivingType,
			&j.OtherRequirements, &j.DatePosted, &j.MemberName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *JobStore) GetByID(id int64) (*model.Job, error) {
	var j model.Job
	err := s.db.QueryRow(
		`SELECT job_id, member_user_id, required_caregiving_type, other_requirements, date_posted
		 FROM JOB WHERE job_id = ?`,
		id,
	).Scan(&j.JobID, &j.MemberUserID, &j.RequiredCaregivingType, &j.OtherRequirements, &j.DatePosted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

func (s *JobStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM JOB WHERE job_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
