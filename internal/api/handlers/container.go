package handlers

import "github.com/formforge/formforge/internal/application"

type Handlers struct {
	Form       *FormHandler
	Submission *SubmissionHandler
	Stats      *StatsHandler
	User       *UserHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Form:       NewFormHandler(svc.Form),
		Submission: NewSubmissionHandler(svc.Submission),
		Stats:      NewStatsHandler(svc.Stats),
		User:       NewUserHandler(svc.User),
	}
}
