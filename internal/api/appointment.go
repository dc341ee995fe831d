package api

import (
	"net/http" // HTTP status codes
	"time"     // Current date for booking forms

	"medtrack/internal/domain"     // Importing domain models
	"medtrack/internal/middleware" // Session identity lookup
	"medtrack/internal/notify"     // Best-effort booking notifications
	"medtrack/internal/store"      // Persistence contracts

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Appointment id generation
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Form struct for booking and editing appointments
type AppointmentForm struct {
	Doctor string `form:"doctor" binding:"required"` // Treating doctor's name, free text
	Date   string `form:"date" binding:"required"`   // Free-text date
	Time   string `form:"time" binding:"required"`   // Free-text time
	Reason string `form:"reason" binding:"required"` // Visit reason
}

// Form struct for recording a diagnosis and prescription
type PrescribeForm struct {
	Diagnosis    string `form:"diagnosis" binding:"required"`    // Diagnosis text
	Prescription string `form:"prescription" binding:"required"` // Prescription text
}

// DashboardHandler lists appointments scoped by the session role. Doctors see
// records naming them as the doctor, patients see records they booked. Both
// sides run the same full predicate scan.
func DashboardHandler(appts store.AppointmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.Identity(c) // Session claims
		if identity.Role == domain.RoleDoctor {
			list, err := appts.Scan(c.Request.Context(), func(a domain.Appointment) bool {
				return a.Doctor == identity.Username // Appointments naming this doctor
			})
			if err != nil {
				c.String(http.StatusInternalServerError, "Something went wrong")
				return
			}
			c.HTML(http.StatusOK, "doctor_dashboard.html", gin.H{
				"Username":     identity.Username, // Display name
				"Appointments": list,              // Filtered list
			})
			return
		}
		list, err := appts.Scan(c.Request.Context(), func(a domain.Appointment) bool {
			return a.Username == identity.Username // Appointments this patient booked
		})
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"Username":     identity.Username, // Display name
			"Appointments": list,              // Filtered list
		})
	}
}

// BookPageHandler renders the booking form
func BookPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "book.html", gin.H{
			"CurrentDate": time.Now().Format("2006-01-02"), // Prefill for the date field
		})
	}
}

// BookHandler creates an appointment and fires the booking notification
func BookHandler(appts store.AppointmentStore, notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.Identity(c) // Session claims
		var f AppointmentForm              // Bind form request to struct
		if err := c.ShouldBind(&f); err != nil {
			// If binding fails, re-render the form with an error
			c.HTML(http.StatusBadRequest, "book.html", gin.H{
				"Error":       "Invalid request",
				"CurrentDate": time.Now().Format("2006-01-02"),
			})
			return
		}
		appt := domain.Appointment{
			ID:       uuid.NewString(),  // Fresh globally-unique id
			Username: identity.Username, // Booked under the session's display name
			Doctor:   f.Doctor,          // Free text, no referential check
			Date:     f.Date,            // Free-text date
			Time:     f.Time,            // Free-text time
			Reason:   f.Reason,          // Visit reason
		}
		// Exactly one record created per booking
		if err := appts.Put(c.Request.Context(), &appt); err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		// Fire-and-forget notification: one attempt, failure logged and
		// swallowed, never surfaced to the user
		text := identity.Username + " booked with Dr. " + f.Doctor + " on " + f.Date + " at " + f.Time
		if err := notifier.Publish(c.Request.Context(), "New Appointment", text); err != nil {
			logrus.WithError(err).Warn("booking notification failed")
		}
		c.HTML(http.StatusOK, "confirmation.html", gin.H{
			"Doctor": f.Doctor, // Booked doctor
			"Date":   f.Date,   // Booked date
			"Time":   f.Time,   // Booked time
		})
	}
}

// EditPageHandler renders the edit form for an appointment id
func EditPageHandler(appts store.AppointmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		appt, err := appts.Get(c.Request.Context(), id) // Point lookup for display
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		if appt == nil {
			appt = &domain.Appointment{ID: id} // Unknown id renders an empty form
		}
		c.HTML(http.StatusOK, "edit.html", gin.H{
			"Appt":        appt,                            // Current field values
			"CurrentDate": time.Now().Format("2006-01-02"), // Prefill for the date field
		})
	}
}

// EditHandler overwrites the schedulable fields of an appointment. The update
// is keyed by id with no existence or ownership check; a missing id is a
// store-level no-op.
func EditHandler(appts store.AppointmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")   // Appointment id from the path
		var f AppointmentForm // Bind form request to struct
		if err := c.ShouldBind(&f); err != nil {
			c.HTML(http.StatusBadRequest, "edit.html", gin.H{
				"Error":       "Invalid request",
				"Appt":        &domain.Appointment{ID: id},
				"CurrentDate": time.Now().Format("2006-01-02"),
			})
			return
		}
		// Unconditional field overwrite keyed by id
		err := appts.UpdateFields(c.Request.Context(), id, map[string]any{
			"doctor": f.Doctor, // New doctor name
			"date":   f.Date,   // New date
			"time":   f.Time,   // New time
			"reason": f.Reason, // New reason
		})
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard") // Redirect regardless of match count
	}
}

// PrescribePageHandler renders the prescription form with the current record
func PrescribePageHandler(appts store.AppointmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		appt, err := appts.Get(c.Request.Context(), id) // Point lookup for display
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		if appt == nil {
			appt = &domain.Appointment{ID: id} // Unknown id renders an empty form
		}
		c.HTML(http.StatusOK, "prescribe.html", gin.H{
			"ApptID": id,   // Posted back in the form action
			"Appt":   appt, // Current field values
		})
	}
}

// PrescribeHandler records a diagnosis and prescription on an appointment.
// Any doctor may prescribe on any appointment; nothing ties the caller to the
// doctor named on the record.
func PrescribeHandler(appts store.AppointmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Appointment id from the path
		var f PrescribeForm // Bind form request to struct
		if err := c.ShouldBind(&f); err != nil {
			c.HTML(http.StatusBadRequest, "prescribe.html", gin.H{
				"Error":  "Invalid request",
				"ApptID": id,
				"Appt":   &domain.Appointment{ID: id},
			})
			return
		}
		// Field update keyed by id, no-op on a missing record
		err := appts.UpdateFields(c.Request.Context(), id, map[string]any{
			"diagnosis":    f.Diagnosis,    // Diagnosis text
			"prescription": f.Prescription, // Prescription text
		})
		if err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// DeleteHandler removes an appointment by id. Any authenticated user may
// delete any id; a missing id is a silent no-op. Deletion is terminal, there
// is no soft delete.
func DeleteHandler(appts store.AppointmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Appointment id from the path
		if err := appts.Delete(c.Request.Context(), id); err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard")
	}
}
