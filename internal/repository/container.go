package repository

import "github.com/formforge/formforge/internal/config/db"

type Repos struct {
	Form       FormRepo
	Submission SubmissionRepo
	User       UserRepo
}

func New() *Repos {
	return &Repos{
		Form:       NewFormRepo(db.DB),
		Submission: NewSubmissionRepo(db.DB),
		User:       NewUserRepo(db.DB),
	}
}
