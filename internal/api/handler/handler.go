package handler

import "kriah-trainer/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Session    *SessionHandler
	Plan       *PlanHandler
	Preference *PreferenceHandler
	Reference  *ReferenceHandler
	Export     *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Session:    NewSessionHandler(svc.Session),
		Plan:       NewPlanHandler(svc.Plan),
		Preference: NewPreferenceHandler(svc.Preference),
		Reference:  NewReferenceHandler(),
		Export:     NewExportHandler(svc.Export),
	}
}
