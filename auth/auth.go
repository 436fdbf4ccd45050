package auth

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio-site/backend/config"
)

// AdminID is the fixed id of the single configured administrator.
const AdminID = 1

// RoleAdmin is the only role the system knows about.
const RoleAdmin = "admin"

// DefaultSessionTTL bounds how long a login stays valid.
const DefaultSessionTTL = 24 * time.Hour

// ErrInvalidCredentials is returned for any failed login. It never says
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Admin is the one statically-configured principal. It is built once at
// startup and never mutated.
type Admin struct {
	ID           int
	Username     string
	PasswordHash string
	Role         string
}

// Identity is the resolved principal attached to an authenticated request.
type Identity struct {
	ID       int
	Username string
	Role     string
}

// Claims is the session token payload.
type Claims struct {
	UserID int    `json:"uid"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

// Gate authenticates the configured admin and resolves session tokens.
type Gate struct {
	admin  Admin
	secret []byte
	ttl    time.Duration
}

func NewGate(admin Admin, secret []byte) *Gate {
	return &Gate{admin: admin, secret: secret, ttl: DefaultSessionTTL}
}

// FromConfig builds the gate from ADMIN_USERNAME, ADMIN_PASSWORD_HASH and
// SESSION_SECRET. All three are required.
func FromConfig(c map[string]string) (*Gate, error) {
	username, err := config.RequireString(c, "ADMIN_USERNAME")
	if err != nil {
		return nil, err
	}
	passwordHash, err := config.RequireString(c, "ADMIN_PASSWORD_HASH")
	if err != nil {
		return nil, err
	}
	secret, err := config.RequireString(c, "SESSION_SECRET")
	if err != nil {
		return nil, err
	}

	admin := Admin{
		ID:           AdminID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         RoleAdmin,
	}
	return NewGate(admin, []byte(secret)), nil
}

// Login checks the submitted credentials against the configured admin and
// returns a signed session token on success.
func (g *Gate) Login(username, password string) (string, error) {
	// Compare against the stored hash even on a username miss, so both
	// failure paths take comparable time.
	hashErr := bcrypt.CompareHashAndPassword([]byte(g.admin.PasswordHash), []byte(password))
	if username != g.admin.Username || hashErr != nil {
		return "", ErrInvalidCredentials
	}
	return g.sign(g.admin.ID, g.admin.Role)
}

func (g *Gate) sign(userID int, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(g.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Resolve maps a session token to the admin identity. Any unusable token
// (missing, expired, tampered, unknown uid) resolves to no identity rather
// than an error; the caller decides what absence means.
func (g *Gate) Resolve(tokenStr string) *Identity {
	if tokenStr == "" {
		return nil
	}

	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil
	}
	if claims.UserID != g.admin.ID {
		return nil
	}

	return &Identity{
		ID:       g.admin.ID,
		Username: g.admin.Username,
		Role:     claims.Role,
	}
}
