package store

import (
	"errors"

	"github.com/Dr-Min/TalKR-Add-DB/models"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already registered")
)

// UserStore is the credential store. Lookups are case-sensitive exact matches.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create registers a new user with a bcrypt-hashed password. The email check
// runs before the username check, so a request violating both constraints
// always reports the email conflict.
func (s *UserStore) Create(username, email, password string) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{Username: username, Email: email}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AddUsageTime adds seconds to the user's cumulative counter in a single SQL
// increment. The value is applied verbatim; the client is trusted.
func (s *UserStore) AddUsageTime(userID uint, seconds int) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("total_usage_time", gorm.Expr("total_usage_time + ?", seconds)).Error
}
