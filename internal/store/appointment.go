package store

import (
	"database/sql"
	"fmt"

	"carebase/internal/model"
)

type AppointmentStore struct {
	db *sql.DB
}

func NewAppointmentStore(db *sql.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

const appointmentCols = `appointment_id, caregiver_user_id, member_user_id, appointment_date, appointment_time, work_hours, status`

func scanAppointment(scanner interface{ Scan(...any) error }) (*model.Appointment, error) {
	var a model.Appointment
	err := scanner.Scan(
		&a.AppointmentID, &a.CaregiverUserID, &a.MemberUserID,
		&a.AppointmentDate, &a.AppointmentTime, &a.WorkHours, &a.Status,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AppointmentStore) Create(caregiverUserID, memberUserID int64, date, timeOfDay string, workHours float64, status string) (*model.Appointment, error) {
	result, err := s.db.Exec(
		`INSERT INTO APPOINTMENT (caregiver_user_id, member_user_id, appointment_date, appointment_time, work_hours, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		caregiverUserID, memberUserID, date, timeOfDay, workHours, status,
	)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// List returns every appointment joined with caregiver and member display
// names, newest appointment date first.
func (s *AppointmentStore) List() ([]model.AppointmentRow, error) {
	rows, err := s.db.Query(
		`SELECT a.appointment_id, a.caregiver_user_id, a.member_user_id,
		        a.appointment_date, a.appointment_time, a.work_hours, a.status,
		        uc.given_name || ' ' || uc.surname AS caregiver_name,
		        um.given_name || ' ' || um.surname AS member_name
		 FROM APPOINTMENT a
		 JOIN CAREGIVER c ON a.caregiver_user_id = c.caregiver_user_id
		 JOIN "USER" uc ON c.caregiver_user_id = uc.user_id
		 JOIN MEMBER m ON a.member_user_id = m.member_user_id
		 JOIN "USER" um ON m.member_user_id = um.user_id
		 ORDER BY a.appointment_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []model.AppointmentRow
	for rows.Next() {
		var a model.AppointmentRow
		err := rows.Scan(
			&a.AppointmentID, &a.CaregiverUserID, &a.MemberUserID,
			&a.AppointmentDate, &a.AppointmentTime, &a.WorkHours, &a.Status,
			&a.CaregiverName, &a.MemberName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (s *AppointmentStore) GetByID(id int64) (*model.Appointment, error) {
	row := s.db.QueryRow(`SELECT `+appointmentCols+` FROM APPOINTMENT WHERE appointment_id = ?`, id)
	a, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

// Update changes date, time, hours, and status. The caregiver/member
// linkage is immutable after creation. Updating a missing id affects zero
// rows and is not an error.
func (s *AppointmentStore) Update(id int64, date, timeOfDay string, workHours float64, status string) (*model.Appointment, error) {
	_, err := s.db.Exec(
		`UPDATE APPOINTMENT
		 SET appointment_date = ?, appointment_time = ?, work_hours = ?, status = ?
		 WHERE appointment_id = ?`,
		date, timeOfDay, workHours, status, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return s.GetByID(id)
}

func (s *AppointmentStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM APPOINTMENT WHERE appointment_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
