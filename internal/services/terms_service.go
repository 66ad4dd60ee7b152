package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/models"
	"gorm.io/gorm"
)

var ErrTermsNotFound = errors.New("Terms not found")

type TermsService struct {
	db *gorm.DB
}

func NewTermsService(db *gorm.DB) *TermsService {
	return &TermsService{db: db}
}

func (s *TermsService) Create(content, version string) (*models.Terms, error) {
	terms := &models.Terms{Content: content, Version: version}
	if err := s.db.Create(terms).Error; err != nil {
		return nil, err
	}
	return terms, nil
}

func (s *TermsService) List() ([]models.Terms, error) {
	var terms []models.Terms
	err := s.db.Find(&terms).Error
	return terms, err
}

func (s *TermsService) Get(id uuid.UUID) (*models.Terms, error) {
	var terms models.Terms
	if err := s.db.First(&terms, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermsNotFound
		}
		return nil, err
	}
	return &terms, nil
}

func (s *TermsService) Update(id uuid.UUID, content, version string) (*models.Terms, error) {
	terms, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(terms).Updates(map[string]interface{}{
		"content": content,
		"version": version,
	}).Error; err != nil {
		return nil, err
	}
	terms.Content = content
	terms.Version = version
	return terms, nil
}

func (s *TermsService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Terms{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTermsNotFound
	}
	return nil
}
