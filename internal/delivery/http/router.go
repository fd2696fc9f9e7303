package http

import (
	"net/http"

	"hospital-appointment-api/internal/delivery/http/handler"
	"hospital-appointment-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	appointmentHandler   *handler.AppointmentHandler
	scheduleHandler      *handler.ScheduleHandler
	doctorHandler        *handler.DoctorHandler
	patientHandler       *handler.PatientHandler
	hospitalAdminHandler *handler.HospitalAdminHandler
	superAdminHandler    *handler.SuperAdminHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	staticDir            string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	scheduleHandler *handler.ScheduleHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	hospitalAdminHandler *handler.HospitalAdminHandler,
	superAdminHandler *handler.SuperAdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	staticDir string,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		appointmentHandler:   appointmentHandler,
		scheduleHandler:      scheduleHandler,
		doctorHandler:        doctorHandler,
		patientHandler:       patientHandler,
		hospitalAdminHandler: hospitalAdminHandler,
		superAdminHandler:    superAdminHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		staticDir:            staticDir,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/register/hospital-admin", r.authHandler.RegisterHospitalAdmin).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Patient routes
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/profile", r.patientHandler.GetProfile).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.patientHandler.UpdateProfile).Methods(http.MethodPut)
	patient.HandleFunc("/dashboard", r.patientHandler.GetDashboard).Methods(http.MethodGet)
	patient.HandleFunc("/doctors", r.patientHandler.ListDoctors).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.ListMine).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelByPatient).Methods(http.MethodPatch)
	patient.HandleFunc("/appointments/{id}/rate", r.appointmentHandler.SubmitRating).Methods(http.MethodPost)

	// Doctor routes
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/profile", r.doctorHandler.GetProfile).Methods(http.MethodGet)
	doctor.HandleFunc("/profile", r.doctorHandler.UpdateProfile).Methods(http.MethodPut)
	doctor.HandleFunc("/schedule", r.scheduleHandler.GetSchedule).Methods(http.MethodGet)
	doctor.HandleFunc("/availability", r.scheduleHandler.UpdateAvailability).Methods(http.MethodPatch)
	doctor.HandleFunc("/rating-stats", r.doctorHandler.GetRatingStats).Methods(http.MethodGet)
	doctor.HandleFunc("/leave-requests", r.doctorHandler.RequestLeave).Methods(http.MethodPost)
	doctor.HandleFunc("/leave-requests", r.doctorHandler.ListLeaveRequests).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/approve", r.appointmentHandler.Approve).Methods(http.MethodPatch)
	doctor.HandleFunc("/appointments/{id}/start", r.appointmentHandler.Start).Methods(http.MethodPatch)
	doctor.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelByDoctor).Methods(http.MethodPatch)
	doctor.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPatch)

	// Medical record read is shared by the appointment's patient and doctor
	records := api.PathPrefix("/appointments").Subrouter()
	records.Use(r.authMiddleware.Authenticate)
	records.Use(middleware.RequirePatientOrDoctor)
	records.HandleFunc("/{id}/medical-records", r.appointmentHandler.GetMedicalRecord).Methods(http.MethodGet)

	// Hospital admin routes
	hospitalAdmin := api.PathPrefix("/hospital-admin").Subrouter()
	hospitalAdmin.Use(r.authMiddleware.Authenticate)
	hospitalAdmin.Use(middleware.RequireHospitalAdmin)
	hospitalAdmin.HandleFunc("/dashboard", r.hospitalAdminHandler.GetDashboard).Methods(http.MethodGet)
	hospitalAdmin.HandleFunc("/doctors/pending", r.hospitalAdminHandler.ListPendingDoctors).Methods(http.MethodGet)
	hospitalAdmin.HandleFunc("/doctors", r.hospitalAdminHandler.ListApprovedDoctors).Methods(http.MethodGet)
	hospitalAdmin.HandleFunc("/doctors/{id}/approve", r.hospitalAdminHandler.ApproveDoctor).Methods(http.MethodPatch)
	hospitalAdmin.HandleFunc("/doctors/{id}/reject", r.hospitalAdminHandler.RejectDoctor).Methods(http.MethodDelete)
	hospitalAdmin.HandleFunc("/doctors/{id}", r.hospitalAdminHandler.UpdateDoctor).Methods(http.MethodPut)
	hospitalAdmin.HandleFunc("/leave-requests", r.hospitalAdminHandler.ListLeaveRequests).Methods(http.MethodGet)
	hospitalAdmin.HandleFunc("/leave-requests/{id}/review", r.hospitalAdminHandler.ReviewLeaveRequest).Methods(http.MethodPatch)

	// Super admin routes
	superAdmin := api.PathPrefix("/super-admin").Subrouter()
	superAdmin.Use(r.authMiddleware.Authenticate)
	superAdmin.Use(middleware.RequireSuperAdmin)
	superAdmin.HandleFunc("/hospital-admins/pending", r.superAdminHandler.ListPendingAdmins).Methods(http.MethodGet)
	superAdmin.HandleFunc("/hospital-admins/{id}/approve", r.superAdminHandler.ApproveAdmin).Methods(http.MethodPatch)
	superAdmin.HandleFunc("/hospital-admins/{id}/reject", r.superAdminHandler.RejectAdmin).Methods(http.MethodDelete)
	superAdmin.HandleFunc("/hospitals", r.superAdminHandler.CreateHospital).Methods(http.MethodPost)
	superAdmin.HandleFunc("/hospitals", r.superAdminHandler.ListHospitals).Methods(http.MethodGet)
	superAdmin.HandleFunc("/analytics", r.superAdminHandler.GetAnalytics).Methods(http.MethodGet)
	superAdmin.HandleFunc("/audit-logs", r.superAdminHandler.ListAuditLogs).Methods(http.MethodGet)

	// Static frontend
	r.router.PathPrefix("/").Handler(http.FileServer(http.Dir(r.staticDir)))

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
