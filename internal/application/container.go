package application

import "github.com/formforge/formforge/internal/repository"

type Services struct {
	Form       *FormService
	Submission *SubmissionService
	Stats      *StatsService
	User       *UserService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Form:       NewFormService(repos),
		Submission: NewSubmissionService(repos),
		Stats:      NewStatsService(repos),
		User:       NewUserService(repos),
	}
}
