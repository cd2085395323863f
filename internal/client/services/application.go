package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/creditscore/internal/client/models"
	"github.com/dmitrijs2005/creditscore/internal/logging"
	"github.com/dmitrijs2005/creditscore/internal/validation"
	"github.com/google/uuid"
)

// Fixed evaluation outcome. There is no scoring model behind it.
const (
	EvaluatedCreditScore         = 750
	EvaluatedRiskLevel           = "Low"
	EvaluatedApprovalProbability = 85

	DefaultEvaluationDelay = 2 * time.Second
)

type ApplicationService interface {
	Evaluate(ctx context.Context, form models.ApplicationForm) (*models.Evaluation, error)
}

type applicationService struct {
	delay  time.Duration
	logger logging.Logger

	now   func() time.Time
	newID func() string
}

func NewApplicationService(delay time.Duration, logger logging.Logger) ApplicationService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &applicationService{
		delay:  delay,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Evaluate validates the application and, after the configured delay,
// returns the evaluation. Cancelling ctx aborts the wait.
func (s *applicationService) Evaluate(ctx context.Context, form models.ApplicationForm) (*models.Evaluation, error) {
	if err := validation.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	ev := &models.Evaluation{
		ID:                  s.newID(),
		Applicant:           form.Applicant(),
		CreditScore:         EvaluatedCreditScore,
		RiskLevel:           EvaluatedRiskLevel,
		ApprovalProbability: EvaluatedApprovalProbability,
		EvaluatedAt:         s.now().UTC(),
	}

	s.logger.Info(ctx, "application evaluated",
		"evaluation_id", ev.ID,
		"loan_purpose", form.LoanPurpose,
		"risk_level", ev.RiskLevel,
	)
	return ev, nil
}
