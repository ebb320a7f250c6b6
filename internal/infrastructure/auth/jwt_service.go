package auth

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ibroximov13/FindCourse/domain"
)

// JWTServiceImpl implements domain.TokenService. Access and refresh tokens
// are signed with separate secrets.
type JWTServiceImpl struct {
	accessSecret    []byte
	refreshSecret   []byte
	issuer          string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		accessSecret:    []byte(accessSecret),
		refreshSecret:   []byte(refreshSecret),
		issuer:          issuer,
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

// GenerateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAccessToken(userID uint, role domain.Role, userIP string, device domain.DeviceInfo) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":     userID,
		"role":   role.String(),
		"userIp": userIP,
		"data":   device,
		"iss":    j.issuer,
		"iat":    now.Unix(),
		"exp":    now.Add(j.accessTokenTTL).Unix(),
		"jti":    uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.accessSecret)
}

// GenerateRefreshToken implements domain.TokenService. Refresh tokens carry
// no role claim: the current role is read from storage at refresh time.
func (j *JWTServiceImpl) GenerateRefreshToken(userID uint, userIP string, device domain.DeviceInfo) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":     userID,
		"userIp": userIP,
		"data":   device,
		"iss":    j.issuer,
		"iat":    now.Unix(),
		"exp":    now.Add(j.refreshTokenTTL).Unix(),
		"jti":    uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.refreshSecret)
}

// ValidateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateAccessToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validateToken(tokenString, j.accessSecret)
}

// ValidateRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateRefreshToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validateToken(tokenString, j.refreshSecret)
}

// AccessTTL implements domain.TokenService
func (j *JWTServiceImpl) AccessTTL() time.Duration { return j.accessTokenTTL }

// RefreshTTL implements domain.TokenService
func (j *JWTServiceImpl) RefreshTTL() time.Duration { return j.refreshTokenTTL }

// validateToken validates a JWT token and returns claims
func (j *JWTServiceImpl) validateToken(tokenString string, secret []byte) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := claims["id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	tokenClaims := &domain.TokenClaims{
		UserID:    uint(userID),
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}

	if role, ok := claims["role"].(string); ok {
		tokenClaims.Role = domain.Role(role)
	}
	if ip, ok := claims["userIp"].(string); ok {
		tokenClaims.UserIP = ip
	}
	if data, ok := claims["data"]; ok {
		tokenClaims.Device = decodeDevice(data)
	}

	return tokenClaims, nil
}

// decodeDevice converts the raw claim value back into a DeviceInfo. The JWT
// library decodes nested objects as map[string]interface{}, so a JSON
// round-trip is the simplest faithful conversion.
func decodeDevice(raw interface{}) domain.DeviceInfo {
	var device domain.DeviceInfo
	bytes, err := json.Marshal(raw)
	if err != nil {
		return device
	}
	_ = json.Unmarshal(bytes, &device)
	return device
}
