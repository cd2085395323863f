package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/creditscore/internal/client/dashboard"
	"github.com/dmitrijs2005/creditscore/internal/client/models"
	"github.com/dmitrijs2005/creditscore/internal/client/services"
	"github.com/dmitrijs2005/creditscore/internal/common"
)

// Dashboard renders the portfolio overview greeting the signed-in user.
func (a *App) Dashboard(ctx context.Context) error {
	identity := common.DisplayIdentity(a.authService.Identity(ctx))
	return dashboard.Render(a.out, dashboard.Demo(), identity)
}

// Apply collects a loan application field by field and prints its evaluation.
func (a *App) Apply(ctx context.Context) error {
	form, err := a.readApplication()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Evaluating application...")
	ev, err := a.applicationService.Evaluate(ctx, form)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Applicant:            %s\n", ev.Applicant)
	fmt.Fprintf(a.out, "Credit score:         %d\n", ev.CreditScore)
	fmt.Fprintf(a.out, "Risk level:           %s\n", ev.RiskLevel)
	fmt.Fprintf(a.out, "Approval probability: %d%%\n", ev.ApprovalProbability)
	fmt.Fprintf(a.out, "Reference:            %s\n", ev.ID)
	return nil
}

func (a *App) readApplication() (models.ApplicationForm, error) {
	var (
		f   models.ApplicationForm
		err error
	)

	text := func(prompt string, dst *string) {
		if err == nil {
			*dst, err = getSimpleText(a.reader, prompt, a.out)
		}
	}
	number := func(prompt, label string, parse func(string) error) {
		var s string
		text(prompt, &s)
		if err == nil {
			if perr := parse(s); perr != nil {
				err = fmt.Errorf("%w: %s must be a number", services.ErrInvalidForm, label)
			}
		}
	}

	text("First name", &f.FirstName)
	text("Last name", &f.LastName)
	number("Age", "age", func(s string) (e error) { f.Age, e = strconv.Atoi(s); return })
	number("Monthly income", "monthly income", func(s string) (e error) { f.MonthlyIncome, e = strconv.ParseFloat(s, 64); return })
	if err == nil {
		f.Employment, err = GetChoice(a.reader, "Employment status", models.Employments, a.out)
	}
	number("Loan amount", "loan amount", func(s string) (e error) { f.LoanAmount, e = strconv.ParseFloat(s, 64); return })
	if err == nil {
		f.LoanPurpose, err = GetChoice(a.reader, "Loan purpose", models.LoanPurposes, a.out)
	}
	text("Location", &f.Location)
	if err == nil {
		f.PhoneUsage, err = GetChoice(a.reader, "Phone usage", models.PhoneUsages, a.out)
	}
	if err == nil {
		f.UtilityPayments, err = GetChoice(a.reader, "Utility payment history", models.UtilityPaymentHistories, a.out)
	}

	return f, err
}

// Status prints the view state, service reachability and service URL.
func (a *App) Status(ctx context.Context) error {
	mode := a.mode()
	if mode == "" {
		mode = "unknown"
	}
	fmt.Fprintf(a.out, "Session:      %s\n", a.authService.State())
	fmt.Fprintf(a.out, "Auth service: %s (%s)\n", a.config.AuthServiceURL, mode)
	return nil
}
