package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/Dylan1021/WeScholarly/internal/model"
)

// ErrDuplicateAccount is returned when an insert collides with the UNIQUE
// constraint on fakeid.
var ErrDuplicateAccount = errors.New("account already exists")

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) List() ([]model.Account, error) {
	rows, err := r.db.Query(`
		SELECT id, name, fakeid, added_at
		FROM accounts
		ORDER BY added_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.FakeID, &a.AddedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *AccountRepository) Add(name, fakeid string) (*model.Account, error) {
	res, err := r.db.Exec(`
		INSERT INTO accounts(name, fakeid) VALUES(?, ?)
	`, name, fakeid)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Account{ID: id, Name: name, FakeID: fakeid}, nil
}

// Remove deletes by numeric id. Removing an id that does not exist is not an
// error.
func (r *AccountRepository) Remove(id int64) error {
	_, err := r.db.Exec(`DELETE FROM accounts WHERE id = ?`, id)
	return err
}

func (r *AccountRepository) FindByFakeID(fakeid string) (*model.Account, error) {
	var a model.Account
	err := r.db.QueryRow(`
		SELECT id, name, fakeid, added_at FROM accounts WHERE fakeid = ?
	`, fakeid).Scan(&a.ID, &a.Name, &a.FakeID, &a.AddedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}
