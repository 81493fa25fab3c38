package store

import (
	"database/sql"
	"fmt"

	"carebase/internal/model"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userCols = `user_id, email, given_name, surname, city, phone_number, profile_description, password`

func scanUser(scanner interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := scanner.Scan(
		&u.UserID, &u.Email, &u.GivenName, &u.Surname,
		&u.City, &u.PhoneNumber, &u.ProfileDescription, &u.Password,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) Create(email, givenName, surname, city, phoneNumber, profileDescription, password string) (*model.User, error) {
	result, err := s.db.Exec(
		`INSERT INTO "USER" (email, given_name, surname, city, phone_number, profile_description, password)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		email, givenName, surname, city, phoneNumber, profileDescription, password,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// List returns every user ordered by primary key.
func (s *UserStore) List() ([]model.User, error) {
	rows, err := s.db.Query(`SELECT ` + userCols + ` FROM "USER" ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *UserStore) GetByID(id int64) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM "USER" WHERE user_id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Update overwrites every mutable field of the user. Updating a missing id
// affects zero rows and is not an error.
func (s *UserStore) Update(id int64, email, givenName, surname, city, phoneNumber, profileDescription, password string) (*model.User, error) {
	_, err := s.db.Exec(
		`UPDATE "USER"
		 SET email = ?, given_name = ?, surname = ?, city = ?, phone_number = ?, profile_description = ?, password = ?
		 WHERE user_id = ?`,
		email, givenName, surname, city, phoneNumber, profileDescription, password, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes the user row. Deleting a missing id is not an error;
// deleting a user still referenced by other tables surfaces the engine's
// foreign-key error.
func (s *UserStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM "USER" WHERE user_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
