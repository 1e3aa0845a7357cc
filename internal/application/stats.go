package application

import (
	"strconv"

	"github.com/formforge/formforge/internal/domain/form"
	"github.com/formforge/formforge/internal/domain/submission"
	"github.com/formforge/formforge/internal/repository"
)

// Stats is the dashboard aggregate. CompletionRate is a percentage with
// one decimal place, "0" when there are no submissions.
type Stats struct {
	TotalForms       int64  `json:"totalForms"`
	TotalSubmissions int64  `json:"totalSubmissions"`
	ActiveForms      int64  `json:"activeForms"`
	CompletionRate   string `json:"completionRate"`
}

type StatsService struct {
	Repos *repository.Repos
}

func NewStatsService(repos *repository.Repos) *StatsService {
	return &StatsService{Repos: repos}
}

func (s *StatsService) GetStats() (*Stats, error) {
	totalForms, err := s.Repos.Form.CountAll()
	if err != nil {
		return nil, err
	}
	activeForms, err := s.Repos.Form.CountByStatus(form.FormStatusActive)
	if err != nil {
		return nil, err
	}
	totalSubs, err := s.Repos.Submission.CountAll()
	if err != nil {
		return nil, err
	}
	completedSubs, err := s.Repos.Submission.CountByStatus(submission.StatusCompleted)
	if err != nil {
		return nil, err
	}

	rate := "0"
	if totalSubs > 0 {
		rate = strconv.FormatFloat(float64(completedSubs)/float64(totalSubs)*100, 'f', 1, 64)
	}

	return &Stats{
		TotalForms:       totalForms,
		TotalSubmissions: totalSubs,
		ActiveForms:      activeForms,
		CompletionRate:   rate,
	}, nil
}
