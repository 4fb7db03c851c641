package repo

import (
	"context"
	"database/sql"
	"errors"
	"placelists/gen/placelists_dev/public/model"

	"github.com/go-jet/jet/v2/qrm"

	. "github.com/go-jet/jet/v2/postgres"
	. "placelists/gen/placelists_dev/public/table"
)

type Repository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (model.Users, error)
	GetUserByUsername(ctx context.Context, username string) (model.Users, error)
	UserExists(ctx context.Context, username, email string) (bool, error)

	FilterLists(ctx context.Context, userID int64) ([]model.Lists, error)
	GetListById(ctx context.Context, userID, id int64) (model.Lists, error)
	CreateList(ctx context.Context, userID int64, name string) (model.Lists, error)
	UpdateListById(ctx context.Context, userID, id int64, name string) (model.Lists, error)
	DeleteListById(ctx context.Context, userID, id int64) error
}

func New(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

type repository struct {
	db *sql.DB
}

func (r *repository) CreateUser(ctx context.Context, username, email, passwordHash string) (model.Users, error) {
	var result model.Users

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return result, err
	}
	defer tx.Rollback()

	stmt := Users.INSERT(Users.Username, Users.Email, Users.PasswordHash).
		VALUES(username, email, passwordHash).
		RETURNING(Users.AllColumns)

	if err := stmt.QueryContext(ctx, tx, &result); err != nil {
		return result, err
	}

	if err = tx.Commit(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.Users, error) {
	stmt := Users.SELECT(Users.AllColumns).
		WHERE(Users.Username.EQ(String(username))).
		LIMIT(1)

	var result model.Users
	if err := stmt.QueryContext(ctx, r.db, &result); err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return result, sql.ErrNoRows
		}
		return result, err
	}

	return result, nil
}

func (r *repository) UserExists(ctx context.Context, username, email string) (bool, error) {
	stmt := Users.SELECT(Users.UserID).
		WHERE(Users.Username.EQ(String(username)).OR(Users.Email.EQ(String(email)))).
		LIMIT(1)

	var result model.Users
	if err := stmt.QueryContext(ctx, r.db, &result); err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *repository) FilterLists(ctx context.Context, userID int64) ([]model.Lists, error) {
	stmt := Lists.SELECT(Lists.AllColumns).
		WHERE(Lists.UserID.EQ(Int(userID))).
		ORDER_BY(Lists.Name.ASC())

	var results []model.Lists
	if err := stmt.QueryContext(ctx, r.db, &results); err != nil {
		return nil, err
	}

	if results == nil {
		results = make([]model.Lists, 0)
	}

	return results, nil
}

func (r *repository) GetListById(ctx context.Context, userID, id int64) (model.Lists, error) {
	stmt := Lists.SELECT(Lists.AllColumns).
		WHERE(Lists.ID.EQ(Int(id)).AND(Lists.UserID.EQ(Int(userID)))).
		LIMIT(1)

	var result model.Lists
	if err := stmt.QueryContext(ctx, r.db, &result); err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return result, sql.ErrNoRows
		}
		return result, err
	}

	return result, nil
}

func (r *repository) CreateList(ctx context.Context, userID int64, name string) (model.Lists, error) {
	var result model.Lists

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return result, err
	}
	defer tx.Rollback()

	stmt := Lists.INSERT(Lists.UserID, Lists.Name).
		VALUES(userID, name).
		RETURNING(Lists.AllColumns)

	if err := stmt.QueryContext(ctx, tx, &result); err != nil {
		return result, err
	}

	if err = tx.Commit(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *repository) UpdateListById(ctx context.Context, userID, id int64, name string) (model.Lists, error) {
	var result model.Lists

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return result, err
	}
	defer tx.Rollback()

	stmt := Lists.UPDATE(Lists.Name).
		SET(name).
		WHERE(Lists.ID.EQ(Int(id)).AND(Lists.UserID.EQ(Int(userID)))).
		RETURNING(Lists.AllColumns)

	if err = stmt.QueryContext(ctx, tx, &result); err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return result, sql.ErrNoRows
		}
		return result, err
	}

	if err = tx.Commit(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *repository) DeleteListById(ctx context.Context, userID, id int64) error {
	stmt := Lists.DELETE().
		WHERE(Lists.ID.EQ(Int(id)).AND(Lists.UserID.EQ(Int(userID))))

	result, err := stmt.ExecContext(ctx, r.db)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
