package store

import (
	"database/sql"
	"fmt"

	"carebase/internal/model"
)

type CaregiverStore struct {
	db *sql.DB
}

func NewCaregiverStore(db *sql.DB) *CaregiverStore {
	return &CaregiverStore{db: db}
}

func (s *CaregiverStore) Create(userID int64, photo, gender, caregivingType string, hourlyRate float64) (*model.Caregiver, error) {
	_, err := s.db.Exec(
		`INSERT INTO CAREGIVER (caregiver_user_id, photo, gender, caregiving_type, hourly_rate)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, photo, gender, caregivingType, hourlyRate,
	)
	if err != nil {
		return nil, fmt.Errorf("insert caregiver: %w", err)
	}
	return s.GetByID(userID)
}

// List returns every caregiver joined with its user record, ordered by
// primary key.
func (s *CaregiverStore) List() ([]model.CaregiverRow, error) {
	rows, err := s.db.Query(
		`SELECT c.caregiver_user_id, c.photo, c.gender, c.caregiving_type, c.hourly_rate,
		        u.given_name, u.surname, u.email, u.phone_number
		 FROM CAREGIVER c
		 JOIN "USER" u ON c.caregiver_user_id = u.user_id
		 ORDER BY c.caregiver_user_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list caregivers: %w", err)
	}
	defer rows.Close()

	var caregivers []model.CaregiverRow
	for rows.Next() {
		var c model.CaregiverRow
		err := rows.Scan(
			&c.CaregiverUserID, &c.Photo, &c.Gender, &c.CaregivingType, &c.HourlyRate,
			&c.GivenName, &c.Surname, &c.Email, &c.PhoneNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("scan caregiver: %w", err)
		}
		caregivers = append(caregivers, c)
	}
	return caregivers, rows.Err()
}

func (s *CaregiverStore) GetByID(userID int64) (*model.Caregiver, error) {
	var c model.Caregiver
	err := s.db.QueryRow(
		`SELECT caregiver_user_id, photo, gender, caregiving_type, hourly_rate
		 FROM CAREGIVER WHERE caregiver_user_id = ?`,
		userID,
	).Scan(&c.CaregiverUserID, &c.Photo, &c.Gender, &c.CaregivingType, &c.HourlyRate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get caregiver: %w", err)
	}
	return &c, nil
}

// Update overwrites the caregiver's profile fields. The user linkage is the
// primary key and never changes.
func (s *CaregiverStore) Update(userID int64, photo, gender, caregivingType string, hourlyRate float64) (*model.Caregiver, error) {
	_, err := s.db.Exec(
		`UPDATE CAREGIVER SET photo = ?, gender = ?, caregiving_type = ?, hourly_rate = ?
		 WHERE caregiver_user_id = ?`,
		photo, gender, caregivingType, hourlyRate, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("update caregiver: %w", err)
	}
	return s.GetByID(userID)
}

func (s *CaregiverStore) Delete(userID int64) error {
	_, err := s.db.Exec(`DELETE FROM CAREGIVER WHERE caregiver_user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete caregiver: %w", err)
	}
	return nil
}

// AvailableUsers returns users not yet registered as caregivers, ordered by
// given name. The creation form only ever offers these.
func (s *CaregiverStore) AvailableUsers() ([]model.UserOption, error) {
	rows, err := s.db.Query(
		`SELECT user_id, given_name, surname FROM "USER"
		 WHERE user_id NOT IN (SELECT caregiver_user_id FROM CAREGIVER)
		 ORDER BY given_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list available users: %w", err)
	}
	defer rows.Close()

	var users []model.UserOption
	for rows.Next() {
		var u model.UserOption
		if err := rows.Scan(&u.UserID, &u.GivenName, &u.Surname); err != nil {
			return nil, fmt.Errorf("scan user option: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Options returns every caregiver with a display name, ordered by given
// name, for appointment form selects.
func (s *CaregiverStore) Options() ([]model.UserOption, error) {
	rows, err := s.db.Query(
		`SELECT c.caregiver_user_id, u.given_name, u.surname
		 FROM CAREGIVER c JOIN "USER" u ON c.caregiver_user_id = u.user_id
		 ORDER BY u.given_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list caregiver options: %w", err)
	}
	defer rows.Close()

	var opts []model.UserOption
	for rows.Next() {
		var o model.UserOption
		if err := rows.Scan(&o.UserID, &o.GivenName, &o.Surname); err != nil {
			return nil, fmt.Errorf("scan caregiver option: %w", err)
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}
