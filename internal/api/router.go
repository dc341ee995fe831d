package api

import (
	"medtrack/internal/middleware" // Session and role gates
	"medtrack/internal/notify"     // Booking notifications
	"medtrack/internal/session"    // Session revocation list
	"medtrack/internal/store"      // Persistence contracts

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps carries everything the routes need
type Deps struct {
	Users        store.CredentialStore  // User records keyed by email
	Appointments store.AppointmentStore // Appointment records keyed by id
	Notifier     notify.Notifier        // Best-effort booking notifications
	Revocations  *session.Revocations   // Logged-out session tokens
	JWTSecret    string                 // Session signing secret
	Templates    string                 // Glob for the HTML templates
}

// NewRouter builds the full route table
func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()          // Gin router instance
	r.LoadHTMLGlob(d.Templates) // Load page templates

	// Public routes
	r.GET("/", IndexHandler())                                  // Landing page
	r.GET("/aboutus", AboutHandler())                           // Static about page
	r.GET("/register", RegisterPageHandler())                   // Registration form
	r.POST("/register", RegisterHandler(d.Users))               // Registration endpoint
	r.GET("/login", LoginPageHandler())                         // Login form
	r.POST("/login", LoginHandler(d.Users, d.JWTSecret))        // Login endpoint
	r.GET("/logout", LogoutHandler(d.JWTSecret, d.Revocations)) // Logout endpoint

	// Session routes (any authenticated user)
	authed := r.Group("")
	authed.Use(middleware.SessionMiddleware(d.JWTSecret, d.Revocations))
	authed.GET("/dashboard", DashboardHandler(d.Appointments))          // Role-scoped listing
	authed.GET("/profile", ProfilePageHandler(d.Users, d.Appointments)) // Profile page
	authed.POST("/profile", ProfileHandler(d.Users, d.Appointments))    // Password change
	authed.GET("/book", BookPageHandler())                              // Booking form
	authed.POST("/book", BookHandler(d.Appointments, d.Notifier))       // Booking endpoint
	authed.GET("/edit/:id", EditPageHandler(d.Appointments))            // Edit form
	authed.POST("/edit/:id", EditHandler(d.Appointments))               // Edit endpoint
	authed.GET("/delete/:id", DeleteHandler(d.Appointments))            // Delete endpoint, no ownership check

	// Doctor routes (session plus doctor role)
	doctor := authed.Group("")
	doctor.Use(middleware.DoctorOnlyMiddleware())
	doctor.GET("/prescribe/:id", PrescribePageHandler(d.Appointments)) // Prescription form
	doctor.POST("/prescribe/:id", PrescribeHandler(d.Appointments))    // Prescription endpoint

	return r
}
