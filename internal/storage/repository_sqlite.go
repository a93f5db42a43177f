package storage

import (
	"errors"
	"time"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps an open gorm DB in the Repository interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(s *game.Session) error {
	var count int64
	if err := r.db.Model(&game.Session{}).Where("session_id = ?", s.SessionID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSessionExists
	}
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSession(sessionID string) (*game.Session, error) {
	var s game.Session
	err := r.db.Preload("MoveHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("round ASC")
	}).Where("session_id = ?", sessionID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) UpdateSession(s *game.Session) error {
	// Save with FullSaveAssociations so freshly appended move records are
	// persisted alongside the session row.
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error
}

func (r *sqliteRepository) DeleteSession(sessionID string) error {
	s, err := r.GetSession(sessionID)
	if err != nil {
		return err
	}
	// Hard-delete so the session ID can be reused for a fresh game; a
	// soft-deleted row would keep holding the unique index.
	if err := r.db.Unscoped().Where("session_ref = ?", s.ID).Delete(&game.MoveRecord{}).Error; err != nil {
		return err
	}
	return r.db.Unscoped().Delete(s).Error
}

func (r *sqliteRepository) ListSessionIDs() ([]string, error) {
	var ids []string
	if err := r.db.Model(&game.Session{}).Order("created_at ASC").Pluck("session_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *sqliteRepository) CountSessions() (int64, error) {
	var count int64
	err := r.db.Model(&game.Session{}).Count(&count).Error
	return count, err
}

func (r *sqliteRepository) FindIdleSessions(cutoff time.Time) ([]game.Session, error) {
	var sessions []game.Session
	err := r.db.Where("last_played_at <= ?", cutoff).Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
