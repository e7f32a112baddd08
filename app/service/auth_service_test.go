package service

import (
	"context"
	"testing"
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// clock is a movable time source shared between the service under test
// and the fake OTP store.
type clock struct {
	t time.Time
}

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newAuthFixture(t *testing.T) (*authService, *fakeUserRepo, *fakeOTPRepo, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)}
	userRepo := newFakeUserRepo()
	otpRepo := newFakeOTPRepo(c.now)
	svc := &authService{userRepo: userRepo, otpRepo: otpRepo, now: c.now}
	return svc, userRepo, otpRepo, c
}

func seedStudent(t *testing.T, userRepo *fakeUserRepo, username, password, mobile string) *model.UserProfile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return userRepo.add(&model.UserProfile{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Rakesh S",
		Role:         model.RoleStudent,
		Department:   "CSE",
		MobileNumber: mobile,
		IsActive:     true,
	})
}

func TestRegisterStudentDerivesProfileFromRegNo(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	user, err := svc.RegisterStudent(RegisterInput{
		RegisterNumber: "82302535102", // batch 2025, dept 35 (BCA)
		Password:       "secret123",
		FullName:       "Priya M",
		Email:          "priya@example.com",
		MobileNumber:   "9876543210",
	})
	require.NoError(t, err)

	assert.Equal(t, "82302535102", user.Username)
	assert.Equal(t, "BCA", user.Department)
	require.NotNil(t, user.YearOfStudy)
	assert.Equal(t, 2, *user.YearOfStudy) // 2026 - 2025 + 1
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestRegisterStudentRejectsBadInput(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.RegisterStudent(RegisterInput{RegisterNumber: "12345678901", Password: "secret123"})
	assert.True(t, utils.IsCode(err, utils.CodeValidation))

	_, err = svc.RegisterStudent(RegisterInput{RegisterNumber: "82302630101", Password: "short"})
	assert.True(t, utils.IsCode(err, utils.CodeValidation))
}

func TestLogin(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture(t)
	seedStudent(t, userRepo, "82302630101", "secret123", "9876543210")

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login("82302630101", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "82302630101", user.Username)
	})

	t.Run("wrong password gives generic error", func(t *testing.T) {
		_, err := svc.Login("82302630101", "wrong")
		assert.EqualError(t, err, "invalid username or password")
	})

	t.Run("unknown user gives the same generic error", func(t *testing.T) {
		_, err := svc.Login("nobody", "secret123")
		assert.EqualError(t, err, "invalid username or password")
	})

	t.Run("inactive account denied", func(t *testing.T) {
		u := seedStudent(t, userRepo, "82302630102", "secret123", "9876543210")
		u.IsActive = false
		_, err := svc.Login("82302630102", "secret123")
		assert.True(t, utils.IsCode(err, utils.CodePermissionDenied))
	})
}

func TestPasswordResetFlow(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _, c := newAuthFixture(t)
	user := seedStudent(t, userRepo, "82302630101", "oldpassword", "+91 98765-43210")

	t.Run("phone mismatch rejected", func(t *testing.T) {
		_, err := svc.RequestPasswordReset(ctx, user.Username, "9000000000")
		assert.True(t, utils.IsCode(err, utils.CodeValidation))
	})

	t.Run("phone formats normalize before comparing", func(t *testing.T) {
		code, err := svc.RequestPasswordReset(ctx, user.Username, "9876543210")
		require.NoError(t, err)
		assert.Len(t, code, 6)
	})

	t.Run("valid code resets the password once", func(t *testing.T) {
		code, err := svc.RequestPasswordReset(ctx, user.Username, "9876543210")
		require.NoError(t, err)

		require.NoError(t, svc.ResetPassword(ctx, user.Username, code, "newpassword"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpassword")))

		// Single use: the same code no longer works.
		err = svc.ResetPassword(ctx, user.Username, code, "anotherpass")
		assert.True(t, utils.IsCode(err, utils.CodeValidation))
	})

	t.Run("code expires after five minutes", func(t *testing.T) {
		code, err := svc.RequestPasswordReset(ctx, user.Username, "9876543210")
		require.NoError(t, err)

		c.advance(5*time.Minute + time.Second)
		err = svc.ResetPassword(ctx, user.Username, code, "newpassword2")
		assert.True(t, utils.IsCode(err, utils.CodeValidation))
	})

	t.Run("a new code invalidates the old one", func(t *testing.T) {
		first, err := svc.RequestPasswordReset(ctx, user.Username, "9876543210")
		require.NoError(t, err)
		second, err := svc.RequestPasswordReset(ctx, user.Username, "9876543210")
		require.NoError(t, err)

		if first != second {
			err = svc.ResetPassword(ctx, user.Username, first, "newpassword3")
			assert.True(t, utils.IsCode(err, utils.CodeValidation))
		}
		require.NoError(t, svc.ResetPassword(ctx, user.Username, second, "newpassword3"))
	})
}
