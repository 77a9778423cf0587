package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"drivehub/models"

	"github.com/go-redis/redis/v8"
)

const (
	regSessionPrefix = "regSession:"
	regSessionTTL    = 30 * time.Minute
)

// registrationSession holds pending sign-up data between OTP issuance and
// verification. It lives only in Redis.
type registrationSession struct {
	Request   models.RegistrationRequest `json:"request"`
	CreatedAt time.Time                  `json:"createdAt"`
}

func regSessionKey(email, role string) string {
	return regSessionPrefix + email + ":" + role
}

func saveRegistrationSession(client *redis.Client, email, role string, session registrationSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal registration session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, regSessionKey(email, role), data, regSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save registration session: %w", err)
	}
	return nil
}

func getRegistrationSession(client *redis.Client, email, role string) (*registrationSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, regSessionKey(email, role)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to retrieve registration session: %w", err)
	}
	var session registrationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal registration session: %w", err)
	}
	return &session, nil
}

func deleteRegistrationSession(client *redis.Client, email, role string) {
	_ = client.Del(context.Background(), regSessionKey(email, role)).Err()
}
