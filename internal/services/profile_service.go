package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/models"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("Profile not found")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// PendingWithUsers returns profiles awaiting verification merged with their
// user record. The profile is the primary side here: a dangling profile is
// still listed, with its user fields defaulted ("" role included, per the
// legacy contract).
func (s *ProfileService) PendingWithUsers() ([]dto.PendingProfile, error) {
	var profiles []models.Profile
	if err := s.db.Where("verification = ?", models.VerificationPending).Find(&profiles).Error; err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, len(profiles))
	for i, p := range profiles {
		userIDs[i] = p.UserID
	}

	var users []models.User
	if len(userIDs) > 0 {
		if err := s.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return nil, err
		}
	}

	byID := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	result := make([]dto.PendingProfile, len(profiles))
	for i, p := range profiles {
		verification := p.Verification
		if verification == "" {
			verification = models.VerificationPending
		}
		out := dto.PendingProfile{
			ID:           p.UserID,
			Role:         "",
			FirstName:    p.FirstName,
			MiddleName:   p.MiddleName,
			LastName:     p.LastName,
			PhoneNumber:  p.PhoneNumber,
			Address:      p.Address,
			IDImage:      p.IDImage,
			Verification: verification,
		}
		if u, ok := byID[p.UserID]; ok {
			out.ID = u.ID
			out.UserName = u.UserName
			out.Email = u.Email
			out.Role = u.Role
		}
		result[i] = out
	}
	return result, nil
}

// SetVerificationByUser transitions the profile belonging to the given user.
// Profiles are addressed by owning user id, not profile id; the dashboard
// only ever knows the user.
func (s *ProfileService) SetVerificationByUser(userID uuid.UUID, state string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&profile).Update("verification", state).Error; err != nil {
		return nil, err
	}
	profile.Verification = state
	return &profile, nil
}

// PendingList returns the raw pending profiles for the notification poller.
func (s *ProfileService) PendingList() ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.db.Where("verification = ?", models.VerificationPending).Find(&profiles).Error
	return profiles, err
}

// PendingCount feeds the dashboard badge poller.
func (s *ProfileService) PendingCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Profile{}).Where("verification = ?", models.VerificationPending).Count(&count).Error
	return count, err
}
