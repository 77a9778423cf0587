package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const otpTTL = 10 * time.Minute

// generateNumericOTP generates a secure random numeric OTP of the given length.
func generateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// InitiateEmailOTP generates an OTP and stores it in Redis keyed by email.
// The caller is responsible for delivering the code to the user.
func InitiateEmailOTP(email string) (string, error) {
	otp, err := generateNumericOTP(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	ctx := context.Background()
	client := GetOTPCacheClient()
	if err := client.Set(ctx, "otp:"+email, otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return "", fmt.Errorf("failed to initiate OTP")
	}

	GetLogger().Sugar().Infof("Issued OTP for %s (expires in %v)", email, otpTTL)
	return otp, nil
}

// VerifyEmailOTP retrieves the stored OTP and compares it to the provided one.
// On a match the OTP is deleted so it cannot be replayed.
func VerifyEmailOTP(email, providedOTP string) error {
	ctx := context.Background()
	client := GetOTPCacheClient()

	storedOTP, err := client.Get(ctx, "otp:"+email).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	if err := client.Del(ctx, "otp:"+email).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
