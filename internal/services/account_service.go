package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/models"
	"gorm.io/gorm"
)

var ErrAccountNotFound = errors.New("Account not found")

type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// BalanceByUser looks up the wallet balance by owning user.
func (s *AccountService) BalanceByUser(userID uuid.UUID) (float64, error) {
	var account models.Account
	if err := s.db.Where("user_id = ?", userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}
	return account.Balance, nil
}

// BalanceByAccountNo looks up the wallet balance by account number.
func (s *AccountService) BalanceByAccountNo(accountNo string) (float64, error) {
	var account models.Account
	if err := s.db.Where("account_no = ?", accountNo).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}
	return account.Balance, nil
}
