package http

import (
	"net/http"

	"fisiogestao/internal/delivery/http/handler"
	"fisiogestao/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	assessmentHandler  *handler.AssessmentHandler
	noteHandler        *handler.ProgressNoteHandler
	procedureHandler   *handler.ProcedureHandler
	appointmentHandler *handler.AppointmentHandler
	complianceHandler  *handler.ComplianceHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	assessmentHandler *handler.AssessmentHandler,
	noteHandler *handler.ProgressNoteHandler,
	procedureHandler *handler.ProcedureHandler,
	appointmentHandler *handler.AppointmentHandler,
	complianceHandler *handler.ComplianceHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		assessmentHandler:  assessmentHandler,
		noteHandler:        noteHandler,
		procedureHandler:   procedureHandler,
		appointmentHandler: appointmentHandler,
		complianceHandler:  complianceHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/cadastrar", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/perfil", r.authHandler.Profile).Methods(http.MethodGet)
	authProtected.HandleFunc("/alterar-senha", r.authHandler.ChangePassword).Methods(http.MethodPut)

	// Auth routes (admin only)
	authAdmin := api.PathPrefix("/auth").Subrouter()
	authAdmin.Use(r.authMiddleware.Authenticate)
	authAdmin.Use(middleware.RequireAdmin)
	authAdmin.HandleFunc("/desbloquear-conta/{id}", r.authHandler.UnlockAccount).Methods(http.MethodPut)

	// Patient registry
	pacientes := api.PathPrefix("/pacientes").Subrouter()
	pacientes.Use(r.authMiddleware.Authenticate)
	pacientes.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	pacientes.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)
	pacientes.HandleFunc("/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	pacientes.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	pacientes.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)
	pacientes.HandleFunc("/{id}/arquivar", r.patientHandler.Archive).Methods(http.MethodPut)
	pacientes.HandleFunc("/{id}/prontuario", r.patientHandler.MedicalRecord).Methods(http.MethodGet)

	// CIF assessments and attachments
	avaliacoes := api.PathPrefix("/avaliacoes").Subrouter()
	avaliacoes.Use(r.authMiddleware.Authenticate)
	avaliacoes.HandleFunc("", r.assessmentHandler.Create).Methods(http.MethodPost)
	avaliacoes.HandleFunc("", r.assessmentHandler.List).Methods(http.MethodGet)
	avaliacoes.HandleFunc("/{id}", r.assessmentHandler.Get).Methods(http.MethodGet)
	avaliacoes.HandleFunc("/{id}", r.assessmentHandler.Update).Methods(http.MethodPut)
	avaliacoes.HandleFunc("/{id}", r.assessmentHandler.Delete).Methods(http.MethodDelete)
	avaliacoes.HandleFunc("/{id}/anexos", r.assessmentHandler.AddAttachment).Methods(http.MethodPost)
	avaliacoes.HandleFunc("/{id}/anexos/{anexoId}", r.assessmentHandler.RemoveAttachment).Methods(http.MethodDelete)

	// Progress notes
	evolucoes := api.PathPrefix("/evolucoes").Subrouter()
	evolucoes.Use(r.authMiddleware.Authenticate)
	evolucoes.HandleFunc("", r.noteHandler.Create).Methods(http.MethodPost)
	evolucoes.HandleFunc("", r.noteHandler.List).Methods(http.MethodGet)
	evolucoes.HandleFunc("/{id}", r.noteHandler.Get).Methods(http.MethodGet)
	evolucoes.HandleFunc("/{id}", r.noteHandler.Update).Methods(http.MethodPut)
	evolucoes.HandleFunc("/{id}", r.noteHandler.Delete).Methods(http.MethodDelete)

	// Procedure catalog
	procedimentos := api.PathPrefix("/procedimentos").Subrouter()
	procedimentos.Use(r.authMiddleware.Authenticate)
	procedimentos.HandleFunc("", r.procedureHandler.Create).Methods(http.MethodPost)
	procedimentos.HandleFunc("", r.procedureHandler.List).Methods(http.MethodGet)
	procedimentos.HandleFunc("/{id}", r.procedureHandler.Get).Methods(http.MethodGet)
	procedimentos.HandleFunc("/{id}", r.procedureHandler.Update).Methods(http.MethodPut)
	procedimentos.HandleFunc("/{id}", r.procedureHandler.Deactivate).Methods(http.MethodDelete)

	// Appointments
	agendamentos := api.PathPrefix("/agendamentos").Subrouter()
	agendamentos.Use(r.authMiddleware.Authenticate)
	agendamentos.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	agendamentos.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	agendamentos.HandleFunc("/calendario", r.appointmentHandler.Calendar).Methods(http.MethodGet)
	agendamentos.HandleFunc("/lembretes", r.appointmentHandler.DispatchReminders).Methods(http.MethodPost)
	agendamentos.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	agendamentos.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	agendamentos.HandleFunc("/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	// LGPD compliance
	lgpd := api.PathPrefix("/lgpd").Subrouter()
	lgpd.Use(r.authMiddleware.Authenticate)
	lgpd.HandleFunc("/consentimento/{pacienteId}", r.complianceHandler.UpdateConsent).Methods(http.MethodPost)
	lgpd.HandleFunc("/portabilidade/{pacienteId}", r.complianceHandler.ExportData).Methods(http.MethodGet)
	lgpd.HandleFunc("/esquecimento/{pacienteId}", r.complianceHandler.EraseData).Methods(http.MethodDelete)
	lgpd.HandleFunc("/retificacao/{pacienteId}", r.complianceHandler.RectifyData).Methods(http.MethodPut)
	lgpd.HandleFunc("/relatorio-tratamento/{pacienteId}", r.complianceHandler.TreatmentReport).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/logs-auditoria", r.auditLogHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/logs-auditoria/{id}", r.auditLogHandler.Get).Methods(http.MethodGet)

	// Request metadata feeds the audit ledger; CORS wraps everything.
	r.router.Use(middleware.RequestMeta)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
