package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/domain"
	"finora/internal/logger"
	"finora/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// EmailService sends performance reports to clients. Returns are
// computed by ReturnsService; this service only renders and sends.
type EmailService interface {
	// SendPerformanceReports emails every active client of the advisor
	// that has an email address and at least one trade.
	SendPerformanceReports(ctx context.Context, userAccountID uuid.UUID) (*SendReportsResult, error)

	// GeneratePerformanceEmail returns the subject and HTML body for one
	// client. It can be called on its own to preview a report.
	GeneratePerformanceEmail(
		ctx context.Context,
		advisor model.UserAccount,
		client model.Client,
		report domain.ReturnsReport,
	) (string, string, error)

	// UpdateReportPreference turns performance reports on or off for a
	// client. frequency is MONTHLY or OFF.
	UpdateReportPreference(ctx context.Context, userAccountID, clientID uuid.UUID, frequency string) (*model.EmailPreference, error)
}

type ReportOutcomeStatus string

const (
	ReportOutcome_Sent    ReportOutcomeStatus = "SENT"
	ReportOutcome_Skipped ReportOutcomeStatus = "SKIPPED"
	ReportOutcome_Failed  ReportOutcomeStatus = "FAILED"
)

type ReportOutcome struct {
	ClientID uuid.UUID           `json:"clientId"`
	Email    string              `json:"email"`
	Status   ReportOutcomeStatus `json:"status"`
	Reason   *string             `json:"reason,omitempty"`
}

type SendReportsResult struct {
	Sent     int             `json:"sent"`
	Skipped  int             `json:"skipped"`
	Failed   int             `json:"failed"`
	Outcomes []ReportOutcome `json:"outcomes"`
}

type emailServiceHandler struct {
	EmailRepository           repository.EmailRepository
	GptRepository             repository.GptRepository
	ClientRepository          repository.ClientRepository
	UserAccountRepository     repository.UserAccountRepository
	EmailPreferenceRepository repository.EmailPreferenceRepository
	ReturnsService            ReturnsService
	markdown                  goldmark.Markdown
}

// NewEmailService wires the report sender. gptRepository may be nil, in
// which case reports carry no commentary. With a nil
// emailPreferenceRepository every client is treated as opted in.
func NewEmailService(
	emailRepository repository.EmailRepository,
	gptRepository repository.GptRepository,
	clientRepository repository.ClientRepository,
	userAccountRepository repository.UserAccountRepository,
	emailPreferenceRepository repository.EmailPreferenceRepository,
	returnsService ReturnsService,
) EmailService {
	return &emailServiceHandler{
		EmailRepository:           emailRepository,
		GptRepository:             gptRepository,
		ClientRepository:          clientRepository,
		UserAccountRepository:     userAccountRepository,
		EmailPreferenceRepository: emailPreferenceRepository,
		ReturnsService:            returnsService,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

func (h *emailServiceHandler) SendPerformanceReports(ctx context.Context, userAccountID uuid.UUID) (*SendReportsResult, error) {
	log := logger.FromContext(ctx)

	advisor, err := h.UserAccountRepository.Get(userAccountID)
	if err != nil {
		return nil, notFoundOr(err, "advisor "+userAccountID.String())
	}

	status := model.ClientStatus_Active
	clients, err := h.ClientRepository.List(repository.ClientListFilter{
		UserAccountID: userAccountID,
		Status:        &status,
		HasEmail:      true,
	})
	if err != nil {
		return nil, err
	}

	optedOut, err := h.optedOutClients(userAccountID)
	if err != nil {
		return nil, err
	}

	result := &SendReportsResult{
		Outcomes: []ReportOutcome{},
	}
	record := func(c model.Client, s ReportOutcomeStatus, reason *string) {
		email := ""
		if c.Email != nil {
			email = *c.Email
		}
		result.Outcomes = append(result.Outcomes, ReportOutcome{
			ClientID: c.ClientID,
			Email:    email,
			Status:   s,
			Reason:   reason,
		})
		switch s {
		case ReportOutcome_Sent:
			result.Sent++
		case ReportOutcome_Skipped:
			result.Skipped++
		case ReportOutcome_Failed:
			result.Failed++
		}
	}

	for _, c := range clients {
		if c.Email == nil || *c.Email == "" {
			reason := "no email address"
			record(c, ReportOutcome_Skipped, &reason)
			continue
		}
		if optedOut[c.ClientID] {
			reason := "opted out"
			record(c, ReportOutcome_Skipped, &reason)
			continue
		}

		report, err := h.ReturnsService.GetClientReturns(ctx, userAccountID, c.ClientID)
		if err != nil {
			reason := err.Error()
			log.Errorf("failed to compute returns for client %s: %v", c.ClientID.String(), err)
			record(c, ReportOutcome_Failed, &reason)
			continue
		}
		if report.Summary.NumTrades == 0 {
			reason := "no trades"
			record(c, ReportOutcome_Skipped, &reason)
			continue
		}

		subject, body, err := h.GeneratePerformanceEmail(ctx, *advisor, c, *report)
		if err != nil {
			reason := err.Error()
			record(c, ReportOutcome_Failed, &reason)
			continue
		}

		if err := h.EmailRepository.SendEmail(ctx, *c.Email, subject, body); err != nil {
			reason := err.Error()
			log.Errorf("failed to send report to client %s: %v", c.ClientID.String(), err)
			record(c, ReportOutcome_Failed, &reason)
			continue
		}
		record(c, ReportOutcome_Sent, nil)
	}

	log.Infof("performance reports: %d sent, %d skipped, %d failed", result.Sent, result.Skipped, result.Failed)
	return result, nil
}

func (h *emailServiceHandler) optedOutClients(userAccountID uuid.UUID) (map[uuid.UUID]bool, error) {
	out := map[uuid.UUID]bool{}
	if h.EmailPreferenceRepository == nil {
		return out, nil
	}
	prefs, err := h.EmailPreferenceRepository.ListOptedOut(userAccountID, model.EmailType_PerformanceReport)
	if err != nil {
		return nil, err
	}
	for _, p := range prefs {
		out[p.ClientID] = true
	}
	return out, nil
}

func (h *emailServiceHandler) UpdateReportPreference(ctx context.Context, userAccountID, clientID uuid.UUID, frequency string) (*model.EmailPreference, error) {
	if h.EmailPreferenceRepository == nil {
		return nil, fmt.Errorf("email preferences are not configured")
	}

	var parsed *model.EmailFrequency
	for _, v := range model.EmailFrequencyAllValues {
		if strings.EqualFold(strings.TrimSpace(frequency), v.String()) {
			parsed = &v
			break
		}
	}
	if parsed == nil {
		return nil, invalidInput("unknown email frequency %q", frequency)
	}

	if _, err := h.ClientRepository.Get(userAccountID, clientID); err != nil {
		return nil, notFoundOr(err, "client "+clientID.String())
	}

	pref, err := h.EmailPreferenceRepository.Upsert(nil, model.EmailPreference{
		ClientID:  clientID,
		EmailType: model.EmailType_PerformanceReport,
		Frequency: *parsed,
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infof("client %s performance reports set to %s", clientID.String(), pref.Frequency)
	return pref, nil
}

func (h *emailServiceHandler) GeneratePerformanceEmail(
	ctx context.Context,
	advisor model.UserAccount,
	client model.Client,
	report domain.ReturnsReport,
) (string, string, error) {
	summary := renderPerformanceMarkdown(client, report)

	commentary := ""
	if h.GptRepository != nil {
		c, err := h.GptRepository.SummarizePerformance(ctx, summary)
		if err != nil {
			logger.FromContext(ctx).Warnf("skipping report commentary: %v", err)
		} else {
			commentary = c
		}
	}

	md := strings.Builder{}
	md.WriteString(fmt.Sprintf("# Performance update for %s\n\n", client.FullName))
	if commentary != "" {
		md.WriteString(commentary + "\n\n")
	}
	md.WriteString(summary)
	md.WriteString(fmt.Sprintf("\n_Sent by %s_\n", advisorName(advisor)))

	buf := bytes.Buffer{}
	if err := h.markdown.Convert([]byte(md.String()), &buf); err != nil {
		return "", "", fmt.Errorf("failed to render report for client %s: %w", client.ClientID.String(), err)
	}

	subject := fmt.Sprintf("Your trade performance as of %s", report.ComputedAt.Format("Jan 2, 2006"))
	return subject, buf.String(), nil
}

// recentTradesInReport caps the trade table in the email.
const recentTradesInReport = 10

func renderPerformanceMarkdown(client model.Client, report domain.ReturnsReport) string {
	s := report.Summary
	out := strings.Builder{}

	out.WriteString("## Summary\n\n")
	out.WriteString("| Metric | Value |\n|---|---|\n")
	out.WriteString(fmt.Sprintf("| Portfolio value (base 100) | %s |\n", s.TotalValue.StringFixed(2)))
	out.WriteString(fmt.Sprintf("| Growth | %s%% |\n", s.GrowthPercent.StringFixed(2)))
	out.WriteString(fmt.Sprintf("| Annualized (approx.) | %s%% |\n", s.XIRR.StringFixed(2)))
	out.WriteString(fmt.Sprintf("| Last 10 trades | %s (%s%%) |\n", signed(s.Last10Return), s.Last10Percent.StringFixed(2)))
	out.WriteString(fmt.Sprintf("| Year to date | %s (%s%%) |\n", signed(s.YTDReturn), s.YTDPercent.StringFixed(2)))
	out.WriteString(fmt.Sprintf("| Win rate | %.1f%% |\n", s.WinRate*100))
	out.WriteString(fmt.Sprintf("| Trades | %d (%d exited, %d active) |\n", s.NumTrades, s.NumExited, s.NumActive))

	if len(report.TradeReturns) > 0 {
		out.WriteString("\n## Recent recommendations\n\n")
		out.WriteString("| Date | Symbol | Direction | Return |\n|---|---|---|---|\n")
		for i := len(report.TradeReturns) - 1; i >= 0 && i >= len(report.TradeReturns)-recentTradesInReport; i-- {
			tr := report.TradeReturns[i]
			ret := "open"
			if tr.Exited {
				ret = signed(tr.Return)
			}
			out.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				tr.CreatedAt.Format("2006-01-02"), tr.Symbol, tr.Direction, ret))
		}
	}

	return out.String()
}

func signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(2)
	}
	return d.StringFixed(2)
}

func advisorName(a model.UserAccount) string {
	parts := []string{}
	if a.FirstName != nil && *a.FirstName != "" {
		parts = append(parts, *a.FirstName)
	}
	if a.LastName != nil && *a.LastName != "" {
		parts = append(parts, *a.LastName)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if a.Email != nil {
		return *a.Email
	}
	return "your advisor"
}
