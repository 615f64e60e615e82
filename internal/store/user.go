package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/database"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/model"
)

const userColumns = `id, name, firstname, lastname, email, phone, password_hash, status, created_at, updated_at`

// searchFilter 比對 firstname/lastname/email/phone 的不分大小寫子字串，
// $1 為空字串時不過濾
const searchFilter = `($1 = ''
	OR firstname ILIKE '%' || $1 || '%'
	OR lastname  ILIKE '%' || $1 || '%'
	OR email     ILIKE '%' || $1 || '%'
	OR phone     ILIKE '%' || $1 || '%')`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Firstname,
		&u.Lastname,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// ListUsers 依建立時間新到舊回傳一頁使用者，search 為空時不過濾
func ListUsers(ctx context.Context, db database.DB, search string, limit, offset int) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE `+searchFilter+`
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		search, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

// CountUsers 回傳符合 search 條件的總筆數，分頁 metadata 用
func CountUsers(ctx context.Context, db database.DB, search string) (int, error) {
	var total int
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE `+searchFilter,
		search,
	)
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return total, nil
}

// EmailTaken 檢查 email 是否已被其他使用者使用，
// excludeID 讓更新時可以沿用自己目前的 email，建立時傳 0
func EmailTaken(ctx context.Context, db database.DB, email string, excludeID int) (bool, error) {
	var taken bool
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, excludeID,
	)
	if err := row.Scan(&taken); err != nil {
		return false, fmt.Errorf("EmailTaken: %w", err)
	}
	return taken, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, firstname, lastname, email, phone, password_hash, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		u.Name,
		u.Firstname,
		u.Lastname,
		u.Email,
		u.Phone,
		u.PasswordHash,
		u.Status,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	tag, err := db.Exec(ctx,
		`UPDATE users
		 SET name = $1, firstname = $2, lastname = $3, email = $4, phone = $5, status = $6, updated_at = now()
		 WHERE id = $7`,
		u.Name,
		u.Firstname,
		u.Lastname,
		u.Email,
		u.Phone,
		u.Status,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateUser: %w", pgx.ErrNoRows)
	}
	return nil
}

func UpdateUserPassword(ctx context.Context, db database.DB, userID int, passwordHash string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, updated_at = now()
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateUserPassword: %w", pgx.ErrNoRows)
	}
	return nil
}

func DeleteUser(ctx context.Context, db database.DB, userID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", pgx.ErrNoRows)
	}
	return nil
}

// IsUniqueViolation 判斷是否撞到資料庫唯一約束，
// 兩個相同 email 的並發建立由這個約束仲裁
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsNotFound 判斷是否為查無資料
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
