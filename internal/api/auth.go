package api

import (
	"net/http" // HTTP status codes
	"time"     // Revocation TTL arithmetic

	"medtrack/internal/domain"     // Importing domain models
	"medtrack/internal/middleware" // Session cookie name and identity lookup
	"medtrack/internal/session"    // Session token helpers
	"medtrack/internal/store"      // Persistence contracts

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Form structs
type RegisterForm struct {
	Email          string `form:"email" binding:"required,email"`               // Account email, the primary key
	Username       string `form:"username" binding:"required"`                  // Display name
	Password       string `form:"password" binding:"required"`                  // Plaintext from the transport, hashed below
	Role           string `form:"role" binding:"required,oneof=patient doctor"` // Role is fixed at registration
	Disease        string `form:"disease"`                                      // Optional, collected regardless of role
	Specialization string `form:"specialization"`                               // Optional, collected regardless of role
}

// Form struct for login
type LoginForm struct {
	Email    string `form:"email" binding:"required"`    // Account email
	Password string `form:"password" binding:"required"` // Plaintext password
}

// Form struct for the profile password change
type ProfileForm struct {
	CurrentPassword string `form:"current_password" binding:"required"` // Must match the stored hash
	NewPassword     string `form:"new_password" binding:"required"`     // Replacement password
}

// RegisterPageHandler renders the registration form
func RegisterPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{})
	}
}

// RegisterHandler creates a new user account
func RegisterHandler(users store.CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f RegisterForm // Bind form request to struct
		if err := c.ShouldBind(&f); err != nil {
			// If binding fails, re-render the form with an error
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": "Invalid request"})
			return
		}
		// Duplicate check is a point lookup before the write. Not atomic with
		// the insert: two concurrent registrations for one email can both pass
		// and the second write wins silently. Accepted at this scale.
		existing, err := users.Get(c.Request.Context(), f.Email)
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		if existing != nil {
			// Duplicate email is the one conflict surfaced on the form
			c.HTML(http.StatusOK, "register.html", gin.H{"Error": "Email already registered"})
			return
		}
		// Hash the password before storage; the plaintext is never persisted
		hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		user := domain.User{
			Email:          f.Email,          // Primary key
			Username:       f.Username,       // Display name
			PasswordHash:   string(hash),     // One-way hash only
			Role:           f.Role,           // Immutable after this point
			Disease:        f.Disease,        // Collected but not validated against role
			Specialization: f.Specialization, // Collected but not validated against role
		}
		// Write the user record
		if err := users.Put(c.Request.Context(), &user); err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		c.Redirect(http.StatusFound, "/login") // On success, continue to login
	}
}

// LoginPageHandler renders the login form
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{})
	}
}

// LoginHandler authenticates a user and establishes the session cookie
func LoginHandler(users store.CredentialStore, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f LoginForm // Bind form request to struct
		if err := c.ShouldBind(&f); err != nil {
			// Same generic message as a credential mismatch
			c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Invalid credentials"})
			return
		}
		user, err := users.Get(c.Request.Context(), f.Email) // Point lookup by email
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		// Unknown email and wrong password yield one identical message, so the
		// response never confirms whether an account exists
		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(f.Password)) != nil {
			c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Invalid credentials"})
			return
		}
		// Issue the session token carrying email, username and role
		token, err := session.Issue(user.Email, user.Username, user.Role, jwtSecret)
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		// Session travels as an HTTP-only cookie for the token lifetime
		c.SetCookie(middleware.CookieName, token, int(session.Lifetime.Seconds()), "/", "", false, true)
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// LogoutHandler clears the session and revokes its token
func LogoutHandler(jwtSecret string, revoked *session.Revocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, err := c.Cookie(middleware.CookieName); err == nil && tokenStr != "" {
			// Revoke for the remaining token lifetime; an unparseable cookie
			// carries no session, so there is nothing to revoke
			if claims, err := session.Parse(tokenStr, jwtSecret); err == nil {
				_ = revoked.Revoke(c.Request.Context(), claims.ID, time.Until(claims.ExpiresAt.Time))
			}
		}
		c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true) // Drop the cookie
		c.Redirect(http.StatusFound, "/")
	}
}

// ProfilePageHandler renders the profile page with the appointment count
func ProfilePageHandler(users store.CredentialStore, appts store.AppointmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderProfile(c, users, appts, "")
	}
}

// ProfileHandler changes the account password after verifying the current one
func ProfileHandler(users store.CredentialStore, appts store.AppointmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.Identity(c) // Session claims
		var f ProfileForm                  // Bind form request to struct
		if err := c.ShouldBind(&f); err != nil {
			renderProfile(c, users, appts, "Incorrect current password.")
			return
		}
		user, err := users.Get(c.Request.Context(), identity.Email) // Fetch current record
		if err != nil || user == nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		// Verify the current password before accepting the new one
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(f.CurrentPassword)) != nil {
			renderProfile(c, users, appts, "Incorrect current password.")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(f.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		// Point field update keyed by email
		if err := users.UpdateField(c.Request.Context(), identity.Email, "password_hash", string(hash)); err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		renderProfile(c, users, appts, "Password updated successfully!")
	}
}

// renderProfile loads the profile view data and renders it with a message
func renderProfile(c *gin.Context, users store.CredentialStore, appts store.AppointmentStore, message string) {
	identity := middleware.Identity(c)                          // Session claims
	user, err := users.Get(c.Request.Context(), identity.Email) // Fetch current record
	if err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	if user == nil {
		// Account deleted underneath the session, treat as logged out
		c.Redirect(http.StatusFound, "/login")
		return
	}
	// Count the patient's appointments via the scan contract
	mine, err := appts.Scan(c.Request.Context(), func(a domain.Appointment) bool {
		return a.Username == identity.Username
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Username":       user.Username,       // Display name
		"Role":           user.Role,           // Role shown, never editable
		"Disease":        user.Disease,        // Patient free text
		"Specialization": user.Specialization, // Doctor free text
		"ApptCount":      len(mine),           // Appointment count
		"Message":        message,             // Outcome of a password change, if any
	})
}
