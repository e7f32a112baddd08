package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// OTPRepository stores one-time password-reset codes. A user holds at most
// one live code; issuing a new one replaces it, and a successful verify
// consumes it.
type OTPRepository interface {
	Issue(ctx context.Context, userID uuid.UUID, code string, ttl time.Duration) error
	// Consume reports whether the code matched, deleting it on success.
	Consume(ctx context.Context, userID uuid.UUID, code string) (bool, error)
}

type otpRepository struct {
	rdb *redis.Client
}

func NewOTPRepository(rdb *redis.Client) OTPRepository {
	return &otpRepository{rdb: rdb}
}

func otpKey(userID uuid.UUID) string {
	return "password_reset_otp:" + userID.String()
}

func hashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// Issue overwrites any previous code for the user. Redis TTL enforces the
// expiry window.
func (r *otpRepository) Issue(ctx context.Context, userID uuid.UUID, code string, ttl time.Duration) error {
	return r.rdb.Set(ctx, otpKey(userID), hashOTP(code), ttl).Err()
}

func (r *otpRepository) Consume(ctx context.Context, userID uuid.UUID, code string) (bool, error) {
	stored, err := r.rdb.Get(ctx, otpKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != hashOTP(code) {
		return false, nil
	}
	if err := r.rdb.Del(ctx, otpKey(userID)).Err(); err != nil {
		return false, err
	}
	return true, nil
}
