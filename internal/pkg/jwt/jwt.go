package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies the engine's two token kinds: device tokens
// carrying the biometric_verified assertion of a fingerprint terminal, and
// admin tokens for the reporting surface.
type Service interface {
	GenerateDeviceToken(deviceID string, biometricVerified bool) (token string, expiresAt int64, err error)
	GenerateAdminToken(subject string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenExpirationTime string
	tokenAuth           *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, tokenExpirationTime string) Service {
	return &JWTService{
		tokenExpirationTime: tokenExpirationTime,
		tokenAuth:           jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) encode(claims map[string]interface{}) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.tokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims["exp"] = expiresAt
	claims["iat"] = time.Now().Unix()

	_, token, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return token, expiresAt, nil
}

// GenerateDeviceToken implements Service. The terminal performs the
// fingerprint match; biometricVerified records its assertion, nothing more.
func (j *JWTService) GenerateDeviceToken(deviceID string, biometricVerified bool) (string, int64, error) {
	return j.encode(map[string]interface{}{
		"sub":                deviceID,
		"type":               "device",
		"biometric_verified": biometricVerified,
	})
}

// GenerateAdminToken implements Service.
func (j *JWTService) GenerateAdminToken(subject string) (string, int64, error) {
	return j.encode(map[string]interface{}{
		"sub":                subject,
		"type":               "admin",
		"is_admin":           true,
		"biometric_verified": false,
	})
}
