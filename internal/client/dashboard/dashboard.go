// Package dashboard renders the portfolio overview shown to signed-in users.
// The figures are fixed demo data.
package dashboard

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/creditscore/internal/common"
)

type Summary struct {
	TotalClients     int
	AverageScore     int
	HighRiskClients  int
	ActiveAccounts   int
	InactiveAccounts int
	PortfolioRisk    string
}

type ClientRow struct {
	Name        string
	CreditScore int
	RiskLevel   string
	Status      string
}

type Snapshot struct {
	Summary Summary
	Clients []ClientRow
}

// Demo returns a fresh copy of the demo portfolio.
func Demo() Snapshot {
	return Snapshot{
		Summary: Summary{
			TotalClients:     120,
			AverageScore:     680,
			HighRiskClients:  14,
			ActiveAccounts:   95,
			InactiveAccounts: 25,
			PortfolioRisk:    "Medium",
		},
		Clients: []ClientRow{
			{Name: "John Doe", CreditScore: 720, RiskLevel: "Low", Status: "Active"},
			{Name: "Jane Smith", CreditScore: 610, RiskLevel: "Medium", Status: "Inactive"},
			{Name: "Alice Johnson", CreditScore: 540, RiskLevel: "High", Status: "Active"},
		},
	}
}

// Render writes the greeting, the summary figures and the client table.
// An empty identity is greeted with the placeholder name.
func Render(w io.Writer, s Snapshot, identity string) error {
	if identity == "" {
		identity = common.PlaceholderIdentity
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Welcome, %s\n\n", identity)
	fmt.Fprintf(tw, "Total clients:\t%d\n", s.Summary.TotalClients)
	fmt.Fprintf(tw, "Average credit score:\t%d\n", s.Summary.AverageScore)
	fmt.Fprintf(tw, "High-risk clients:\t%d\n", s.Summary.HighRiskClients)
	fmt.Fprintf(tw, "Accounts:\t%d active / %d inactive\n", s.Summary.ActiveAccounts, s.Summary.InactiveAccounts)
	fmt.Fprintf(tw, "Portfolio risk:\t%s\n\n", s.Summary.PortfolioRisk)

	fmt.Fprintln(tw, "NAME\tSCORE\tRISK\tSTATUS")
	for _, c := range s.Clients {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", c.Name, c.CreditScore, c.RiskLevel, c.Status)
	}

	return tw.Flush()
}
