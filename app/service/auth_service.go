package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/repository"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Password-reset codes live for 5 minutes and are single use.
const otpTTL = 5 * time.Minute

// RegisterInput is what a student submits at self-registration. The
// registration number doubles as the username and encodes department and
// year of study.
type RegisterInput struct {
	RegisterNumber string
	Password       string
	FullName       string
	Email          string
	MobileNumber   string
}

// AuthService handles registration, login and password reset.
type AuthService interface {
	RegisterStudent(input RegisterInput) (*model.UserProfile, error)
	Login(username, password string) (*model.UserProfile, error)
	GetProfile(userID uuid.UUID) (*model.UserProfile, error)
	// RequestPasswordReset issues a 6-digit code after the given phone
	// matches the one on record. Delivery is out of band; the code is
	// returned to the caller's gateway integration.
	RequestPasswordReset(ctx context.Context, username, phone string) (string, error)
	ResetPassword(ctx context.Context, username, code, newPassword string) error
}

type authService struct {
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, otpRepo repository.OTPRepository) AuthService {
	return &authService{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		now:      time.Now,
	}
}

func (s *authService) RegisterStudent(input RegisterInput) (*model.UserProfile, error) {
	info, err := utils.ParseRegistrationNumber(strings.TrimSpace(input.RegisterNumber), s.now())
	if err != nil {
		return nil, err
	}
	if len(input.Password) < 6 {
		return nil, utils.NewValidationError("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	year := info.YearOfStudy
	user := &model.UserProfile{
		Username:       info.RegisterNumber,
		PasswordHash:   string(hash),
		FullName:       input.FullName,
		Role:           model.RoleStudent,
		RegisterNumber: &info.RegisterNumber,
		Department:     info.Department,
		YearOfStudy:    &year,
		Email:          input.Email,
		MobileNumber:   input.MobileNumber,
		IsActive:       true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(username, password string) (*model.UserProfile, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, utils.NewValidationError("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewValidationError("invalid username or password")
	}
	if !user.IsActive {
		return nil, utils.NewPermissionDenied("account is deactivated")
	}
	return user, nil
}

func (s *authService) GetProfile(userID uuid.UUID) (*model.UserProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	return user, nil
}

// lastTenDigits strips everything but digits and keeps the last ten, so
// "+91 98765-43210" and "9876543210" compare equal.
func lastTenDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, username, phone string) (string, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", notFoundOr(err, "user not found")
	}
	if user.MobileNumber == "" {
		return "", utils.NewValidationError("no phone number registered for this account, contact admin")
	}
	if lastTenDigits(user.MobileNumber) != lastTenDigits(phone) {
		return "", utils.NewValidationError("phone number does not match the one on record")
	}

	code, err := generateOTP()
	if err != nil {
		return "", err
	}
	// Issue overwrites any earlier code, which invalidates it.
	if err := s.otpRepo.Issue(ctx, user.ID, code, otpTTL); err != nil {
		return "", err
	}
	return code, nil
}

func (s *authService) ResetPassword(ctx context.Context, username, code, newPassword string) error {
	if len(code) != 6 {
		return utils.NewValidationError("enter the 6-digit code")
	}
	if len(newPassword) < 6 {
		return utils.NewValidationError("password must be at least 6 characters")
	}

	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return notFoundOr(err, "user not found")
	}

	ok, err := s.otpRepo.Consume(ctx, user.ID, code)
	if err != nil {
		return err
	}
	if !ok {
		return utils.NewValidationError("invalid or expired code")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePasswordHash(user.ID, string(hash))
}
