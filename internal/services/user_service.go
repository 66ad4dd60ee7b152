package services

import (
	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ListByRole returns every user with the given role, each flattened with its
// profile. Profiles are fetched in one batch; users without a profile are
// kept with empty-string profile fields. When a user somehow has several
// profiles the first one wins.
func (s *UserService) ListByRole(role int) ([]dto.MergedUser, error) {
	var users []models.User
	if err := s.db.Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	var profiles []models.Profile
	if len(userIDs) > 0 {
		if err := s.db.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
			return nil, err
		}
	}

	byUser := make(map[uuid.UUID]models.Profile, len(profiles))
	for _, p := range profiles {
		if _, ok := byUser[p.UserID]; !ok {
			byUser[p.UserID] = p
		}
	}

	result := make([]dto.MergedUser, len(users))
	for i, u := range users {
		p := byUser[u.ID] // zero value fills with empty strings
		result[i] = dto.MergedUser{
			ID:             u.ID,
			UserName:       u.UserName,
			Email:          u.Email,
			Role:           u.Role,
			FirstName:      p.FirstName,
			MiddleName:     p.MiddleName,
			PhoneNumber:    p.PhoneNumber,
			Address:        p.Address,
			ProfilePicture: p.ProfilePicture,
		}
	}
	return result, nil
}

// Total counts all marketplace users.
func (s *UserService) Total() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
