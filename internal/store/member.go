package store

import (
	"database/sql"
	"fmt"

	"carebase/internal/model"
)

// MemberStore reads member rows for form population. Members have no
// mutation routes; Create exists for provisioning and tests.
type MemberStore struct {
	db *sql.DB
}

func NewMemberStore(db *sql.DB) *MemberStore {
	return &MemberStore{db: db}
}

func (s *MemberStore) Create(userID int64, houseRules string) (*model.Member, error) {
	_, err := s.db.Exec(
		`INSERT INTO MEMBER (member_user_id, house_rules) VALUES (?, ?)`,
		userID, houseRules,
	)
	if err != nil {
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return s.GetByID(userID)
}

func (s *MemberStore) GetByID(userID int64) (*model.Member, error) {
	var m model.Member
	err := s.db.QueryRow(
		`SELECT member_user_id, house_rules FROM MEMBER WHERE member_user_id = ?`,
		userID,
	).Scan(&m.MemberUserID, &m.HouseRules)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// Options returns every member with a display name, ordered by given name,
// for appointment and job form selects.
func (s *MemberStore) Options() ([]model.MemberOption, error) {
	rows, err := s.db.Query(
		`SELECT m.member_user_id, u.given_name, u.surname
		 FROM MEMBER m JOIN "USER" u ON m.member_user_id = u.user_id
		 ORDER BY u.given_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list member options: %w", err)
	}
	defer rows.Close()

	var opts []model.MemberOption
	for rows.Next() {
		var o model.MemberOption
		if err := rows.Scan(&o.MemberUserID, &o.GivenName, &o.Surname); err != nil {
			return nil, fmt.Errorf("scan member option: %w", err)
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}
