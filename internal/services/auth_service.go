package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rentpal/admin-backend/internal/config"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both unknown-user and wrong-password so
	// callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid username/email or password")
	ErrAdminNotFound      = errors.New("Admin not found")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// SignIn verifies operator credentials and issues a signed token. Lookup is
// by username OR email, whichever the client supplied.
func (s *AuthService) SignIn(req *dto.SignInRequest) (*dto.SignInResponse, error) {
	var user models.User
	if err := s.db.Where("user_name = ? OR email = ?", req.UserName, req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"_id": user.ID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.SignInResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.SignInUser{
			ID:   user.ID.String(),
			Role: user.Role,
		},
	}, nil
}

// AdminProfile returns the display info of the first admin account. The
// profile picture falls back to a generated avatar URL when no picture is on
// file.
func (s *AuthService) AdminProfile() (*dto.AdminProfileResponse, error) {
	var user models.User
	if err := s.db.Where("role = ?", models.RoleAdmin).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	roleName := "Admin"
	if user.Role != models.RoleAdmin {
		roleName = "SubAdmin"
	}

	pic := ""
	var profile models.Profile
	if err := s.db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		pic = profile.ProfilePicture
	}
	if pic == "" {
		pic = "https://ui-avatars.com/api/?name=" + user.UserName + "&background=random"
	}

	return &dto.AdminProfileResponse{
		Username:   user.UserName,
		Role:       roleName,
		ProfilePic: pic,
	}, nil
}
