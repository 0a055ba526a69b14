// internal/benchserver/admin.go
//
// A single administrative account guarding DELETE /runs/{id}: bcrypt
// password hashing, HS256 JWT with a sub/exp/iat claim set, bearer-or-cookie
// extraction. There is exactly one admin account (no signup flow) since
// the dashboard has one operator, not a user base.

package benchserver

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const cookieName = "benchserver_admin"

// ensureAdminSchema creates the admin_accounts table if missing. Called
// once at startup, scoped to this one table since the dashboard has no
// other schema of its own.
func ensureAdminSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS admin_accounts (
			username      TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("benchserver: create admin_accounts: %w", err)
	}
	return nil
}

// SetAdminPassword creates or overwrites the single admin account's
// password, for use by an operator-facing setup command.
func SetAdminPassword(db *sql.DB, username, password string) error {
	if err := ensureAdminSchema(db); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("benchserver: hash password: %w", err)
	}
	_, err = db.Exec(`
		INSERT INTO admin_accounts (username, password_hash) VALUES (?, ?)
		ON CONFLICT(username) DO UPDATE SET password_hash = excluded.password_hash`,
		username, string(hash))
	if err != nil {
		return fmt.Errorf("benchserver: set admin password: %w", err)
	}
	return nil
}

func checkAdminPassword(db *sql.DB, username, password string) error {
	var hash string
	err := db.QueryRow(`SELECT password_hash FROM admin_accounts WHERE username = ?`, username).Scan(&hash)
	if err != nil {
		return fmt.Errorf("benchserver: invalid username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return fmt.Errorf("benchserver: invalid username or password")
	}
	return nil
}

func jwtSecret() []byte {
	secret := os.Getenv("BENCHSERVER_JWT_SECRET")
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	return []byte(secret)
}

func signAdminJWT(username string) (string, time.Time, error) {
	exp := time.Now().Add(12 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	ss, err := token.SignedString(jwtSecret())
	return ss, exp, err
}

func setAdminCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("NODE_ENV") == "production",
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// requireAdmin enforces a valid admin JWT, accepted as either a bearer
// header or a cookie.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerOrCookie(r)
		if tok == "" {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
