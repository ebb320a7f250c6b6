package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ibroximov13/FindCourse/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using GORM.
// One row per (user, ip); the device blob is stored serialized.
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// DBSession represents the database model for Session
type DBSession struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index:idx_sessions_user_ip"`
	UserIP    string `gorm:"index:idx_sessions_user_ip;size:64"`
	Data      string `gorm:"type:text"`
	CreatedAt time.Time
}

func (DBSession) TableName() string {
	return "sessions"
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session.Device)
	if err != nil {
		return err
	}
	dbSession := &DBSession{
		UserID: session.UserID,
		UserIP: session.UserIP,
		Data:   string(data),
	}
	if err := r.db.WithContext(ctx).Create(dbSession).Error; err != nil {
		return err
	}
	session.ID = dbSession.ID
	session.CreatedAt = dbSession.CreatedAt
	return nil
}

// FindByID implements domain.SessionRepository
func (r *SessionRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Session, error) {
	var dbSession DBSession
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbSession).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return dbSessionToDomain(&dbSession), nil
}

// FindByUserAndIP implements domain.SessionRepository
func (r *SessionRepositoryImpl) FindByUserAndIP(ctx context.Context, userID uint, userIP string) (*domain.Session, error) {
	var dbSession DBSession
	err := r.db.WithContext(ctx).Where("user_id = ? AND user_ip = ?", userID, userIP).First(&dbSession).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return dbSessionToDomain(&dbSession), nil
}

// ListByUser implements domain.SessionRepository
func (r *SessionRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]*domain.Session, error) {
	var dbSessions []DBSession
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&dbSessions).Error; err != nil {
		return nil, err
	}
	return dbSessionsToDomain(dbSessions), nil
}

// ListAll implements domain.SessionRepository
func (r *SessionRepositoryImpl) ListAll(ctx context.Context) ([]*domain.Session, error) {
	var dbSessions []DBSession
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&dbSessions).Error; err != nil {
		return nil, err
	}
	return dbSessionsToDomain(dbSessions), nil
}

// Delete implements domain.SessionRepository
func (r *SessionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBSession{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func dbSessionToDomain(dbSession *DBSession) *domain.Session {
	session := &domain.Session{
		ID:        dbSession.ID,
		UserID:    dbSession.UserID,
		UserIP:    dbSession.UserIP,
		CreatedAt: dbSession.CreatedAt,
	}
	// Stale or hand-edited rows may hold malformed blobs; an empty device
	// record is preferable to failing the listing.
	_ = json.Unmarshal([]byte(dbSession.Data), &session.Device)
	return session
}

func dbSessionsToDomain(dbSessions []DBSession) []*domain.Session {
	sessions := make([]*domain.Session, 0, len(dbSessions))
	for i := range dbSessions {
		sessions = append(sessions, dbSessionToDomain(&dbSessions[i]))
	}
	return sessions
}
