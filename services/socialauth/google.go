package socialauth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const googleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

var (
	googleKeys        map[string]*rsa.PublicKey
	googleKeysMutex   sync.RWMutex
	googleKeysExpires time.Time
)

// GoogleUser holds the identity extracted from a verified Google ID token.
type GoogleUser struct {
	Email string
	Name  string
}

type googleJWK struct {
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// fetchGoogleKeys fetches and caches Google's token-signing keys. Google
// rotates them frequently, so the cache lives one hour.
func fetchGoogleKeys() (map[string]*rsa.PublicKey, error) {
	googleKeysMutex.RLock()
	if time.Now().Before(googleKeysExpires) && googleKeys != nil {
		defer googleKeysMutex.RUnlock()
		return googleKeys, nil
	}
	googleKeysMutex.RUnlock()

	resp, err := http.Get(googleCertsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google certs: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Keys []googleJWK `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode Google keys: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey)
	for _, key := range payload.Keys {
		pubKey, err := jwkToPublicKey(key.N, key.E)
		if err != nil {
			return nil, err
		}
		keys[key.Kid] = pubKey
	}

	googleKeysMutex.Lock()
	googleKeys = keys
	googleKeysExpires = time.Now().Add(time.Hour)
	googleKeysMutex.Unlock()

	return keys, nil
}

func jwkToPublicKey(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	var exp int
	for _, b := range eb {
		exp = exp<<8 + int(b)
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: exp}, nil
}

// VerifyGoogleCredential validates a Google ID token against the given OAuth
// client ID and returns the user's identity.
func VerifyGoogleCredential(credential, audience string) (*GoogleUser, error) {
	keys, err := fetchGoogleKeys()
	if err != nil {
		return nil, err
	}

	// Parse unverified first to pick the signing key by kid.
	parser := new(jwt.Parser)
	unverified, _, err := parser.ParseUnverified(credential, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse credential: %w", err)
	}
	kid, ok := unverified.Header["kid"].(string)
	if !ok {
		return nil, errors.New("credential missing kid header")
	}
	pubKey, exists := keys[kid]
	if !exists {
		return nil, errors.New("no matching Google public key found")
	}

	token, err := jwt.Parse(credential, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return pubKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify credential: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid Google ID token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse claims")
	}
	if aud, ok := claims["aud"].(string); !ok || aud != audience {
		return nil, errors.New("invalid audience in Google ID token")
	}
	if iss, ok := claims["iss"].(string); !ok || (iss != "accounts.google.com" && iss != "https://accounts.google.com") {
		return nil, errors.New("invalid issuer in Google ID token")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return nil, errors.New("google ID token expired")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, errors.New("email claim not found in Google ID token")
	}
	name, _ := claims["name"].(string)

	return &GoogleUser{Email: strings.ToLower(email), Name: name}, nil
}
