// Session persistence.
//
// One row, fixed key. Login upserts it, logout deletes it, process start
// reads it back. Any storage failure on read is reported to the caller,
// which treats it as logged out: the client fails closed, never open.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/duckshop/go-storefront/internal/domain"
)

// sessionKey is the fixed primary key of the single persisted session row.
const sessionKey = "current"

// SessionRecord is the durable form of domain.Session.
type SessionRecord struct {
	Key       string    `gorm:"primaryKey;type:varchar(32)"`
	UserID    int       `gorm:"not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Token     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName returns the database table name for SessionRecord.
func (SessionRecord) TableName() string { return "session" }

// SaveSession upserts the current session row.
func SaveSession(ctx context.Context, db *gorm.DB, sess domain.Session) error {
	if sess.User == nil || sess.Token == "" {
		return errors.New("refusing to persist an incomplete session")
	}
	rec := SessionRecord{
		Key:    sessionKey,
		UserID: sess.User.UserID,
		Name:   sess.User.Name,
		Email:  sess.User.Email,
		Token:  sess.Token,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&rec).Error
}

// LoadSession reads the persisted session. A missing row yields a zero
// session and no error; a storage failure yields an error so the caller can
// fail closed.
func LoadSession(ctx context.Context, db *gorm.DB) (domain.Session, error) {
	var rec SessionRecord
	err := db.WithContext(ctx).First(&rec, "key = ?", sessionKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		User: &domain.User{
			UserID: rec.UserID,
			Name:   rec.Name,
			Email:  rec.Email,
		},
		Token: rec.Token,
	}, nil
}

// ClearSession removes the persisted session row. Clearing an absent row is
// not an error.
func ClearSession(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Delete(&SessionRecord{}, "key = ?", sessionKey).Error
}
