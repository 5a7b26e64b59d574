package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/db/models/postgres/public/table"
	"finora/internal/logger"
	"finora/internal/repository"
	"finora/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

type LeadService interface {
	CreateLead(ctx context.Context, userAccountID uuid.UUID, in LeadInput) (*model.Lead, error)
	GetLead(ctx context.Context, userAccountID, leadID uuid.UUID) (*model.Lead, error)
	ListLeads(ctx context.Context, filter repository.LeadListFilter) ([]model.Lead, error)
	UpdateLead(ctx context.Context, userAccountID, leadID uuid.UUID, in LeadInput) (*model.Lead, error)
	DeleteLead(ctx context.Context, userAccountID, leadID uuid.UUID) error
	// ConvertLead creates a client from the lead and marks the lead
	// converted. A lead converts at most once.
	ConvertLead(ctx context.Context, userAccountID, leadID uuid.UUID, riskProfile *string) (*ConvertLeadResult, error)
	// ImportLeads reads a CSV with a fullName,email,phone,source,notes
	// header and inserts every row, or none.
	ImportLeads(ctx context.Context, userAccountID uuid.UUID, r io.Reader) ([]model.Lead, error)
}

type LeadInput struct {
	FullName *string
	Email    *string
	Phone    *string
	Source   *string
	Notes    *string
	Status   *string
}

type ConvertLeadResult struct {
	Lead   model.Lead
	Client model.Client
}

type leadServiceHandler struct {
	Db               *sql.DB
	LeadRepository   repository.LeadRepository
	ClientRepository repository.ClientRepository
}

func NewLeadService(db *sql.DB, leadRepository repository.LeadRepository, clientRepository repository.ClientRepository) LeadService {
	return leadServiceHandler{
		Db:               db,
		LeadRepository:   leadRepository,
		ClientRepository: clientRepository,
	}
}

func (h leadServiceHandler) CreateLead(ctx context.Context, userAccountID uuid.UUID, in LeadInput) (*model.Lead, error) {
	if in.FullName == nil || strings.TrimSpace(*in.FullName) == "" {
		return nil, invalidInput("lead full name is required")
	}

	l := model.Lead{
		UserAccountID: userAccountID,
		Status:        model.LeadStatus_New,
	}
	if _, err := applyLeadInput(&l, in); err != nil {
		return nil, err
	}

	out, err := h.LeadRepository.Add(nil, l)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infof("created lead %s", out.LeadID.String())
	return out, nil
}

func (h leadServiceHandler) GetLead(ctx context.Context, userAccountID, leadID uuid.UUID) (*model.Lead, error) {
	l, err := h.LeadRepository.Get(nil, userAccountID, leadID)
	if err != nil {
		return nil, notFoundOr(err, "lead "+leadID.String())
	}
	return l, nil
}

func (h leadServiceHandler) ListLeads(ctx context.Context, filter repository.LeadListFilter) ([]model.Lead, error) {
	return h.LeadRepository.List(filter)
}

// UpdateLead locks the lead for the duration of the write so a concurrent
// ConvertLead cannot be overwritten.
func (h leadServiceHandler) UpdateLead(ctx context.Context, userAccountID, leadID uuid.UUID, in LeadInput) (*model.Lead, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := h.LeadRepository.Get(tx, userAccountID, leadID)
	if err != nil {
		return nil, notFoundOr(err, "lead "+leadID.String())
	}

	if in.Status != nil && existing.Status == model.LeadStatus_Converted {
		return nil, fmt.Errorf("lead %s is already converted: %w", leadID.String(), ErrConflict)
	}

	columns, err := applyLeadInput(existing, in)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return existing, nil
	}

	out, err := h.LeadRepository.Update(tx, *existing, columns)
	if err != nil {
		return nil, notFoundOr(err, "lead "+leadID.String())
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lead %s update: %w", leadID.String(), err)
	}

	return out, nil
}

func (h leadServiceHandler) DeleteLead(ctx context.Context, userAccountID, leadID uuid.UUID) error {
	if err := h.LeadRepository.Delete(userAccountID, leadID); err != nil {
		return notFoundOr(err, "lead "+leadID.String())
	}
	return nil
}

func (h leadServiceHandler) ConvertLead(ctx context.Context, userAccountID, leadID uuid.UUID, riskProfile *string) (*ConvertLeadResult, error) {
	log := logger.FromContext(ctx)

	rp := model.RiskProfile_Moderate
	if riskProfile != nil && *riskProfile != "" {
		parsed, err := parseRiskProfile(*riskProfile)
		if err != nil {
			return nil, err
		}
		rp = parsed
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	lead, err := h.LeadRepository.Get(tx, userAccountID, leadID)
	if err != nil {
		return nil, notFoundOr(err, "lead "+leadID.String())
	}
	if lead.Status == model.LeadStatus_Converted || lead.ConvertedClientID != nil {
		return nil, fmt.Errorf("lead %s is already converted: %w", leadID.String(), ErrConflict)
	}

	client, err := h.ClientRepository.Add(tx, model.Client{
		UserAccountID: userAccountID,
		FullName:      lead.FullName,
		Email:         lead.Email,
		Phone:         lead.Phone,
		RiskProfile:   rp,
		Status:        model.ClientStatus_Active,
		LeadID:        &lead.LeadID,
		Notes:         lead.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client from lead %s: %w", leadID.String(), err)
	}

	lead.Status = model.LeadStatus_Converted
	lead.ConvertedClientID = &client.ClientID
	updatedLead, err := h.LeadRepository.Update(tx, *lead, postgres.ColumnList{
		table.Lead.Status,
		table.Lead.ConvertedClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark lead %s converted: %w", leadID.String(), err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lead conversion: %w", err)
	}

	log.Infof("converted lead %s to client %s", leadID.String(), client.ClientID.String())
	return &ConvertLeadResult{
		Lead:   *updatedLead,
		Client: *client,
	}, nil
}

type leadCsvRow struct {
	FullName string `csv:"fullName"`
	Email    string `csv:"email"`
	Phone    string `csv:"phone"`
	Source   string `csv:"source"`
	Notes    string `csv:"notes"`
}

func (h leadServiceHandler) ImportLeads(ctx context.Context, userAccountID uuid.UUID, r io.Reader) ([]model.Lead, error) {
	rows := []leadCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, invalidInput("failed to parse lead csv: %s", err.Error())
	}
	if len(rows) == 0 {
		return nil, invalidInput("lead csv has no rows")
	}

	leads := make([]model.Lead, 0, len(rows))
	badLines := []string{}
	for i, row := range rows {
		name := strings.TrimSpace(row.FullName)
		if name == "" {
			// header is line 1
			badLines = append(badLines, fmt.Sprintf("%d", i+2))
			continue
		}
		leads = append(leads, model.Lead{
			UserAccountID: userAccountID,
			FullName:      name,
			Email:         trimmedOrNil(row.Email),
			Phone:         trimmedOrNil(row.Phone),
			Source:        trimmedOrNil(row.Source),
			Notes:         trimmedOrNil(row.Notes),
			Status:        model.LeadStatus_New,
		})
	}
	if len(badLines) > 0 {
		return nil, invalidInput("missing fullName on line(s) %s", strings.Join(badLines, ", "))
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	inserted, err := h.LeadRepository.AddMany(tx, leads)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lead import: %w", err)
	}

	logger.FromContext(ctx).Infof("imported %d leads", len(inserted))
	return inserted, nil
}

func applyLeadInput(l *model.Lead, in LeadInput) (postgres.ColumnList, error) {
	columns := postgres.ColumnList{}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, invalidInput("lead full name cannot be blank")
		}
		l.FullName = name
		columns = append(columns, table.Lead.FullName)
	}
	if in.Email != nil {
		l.Email = util.NilIfEmpty(in.Email)
		columns = append(columns, table.Lead.Email)
	}
	if in.Phone != nil {
		l.Phone = util.NilIfEmpty(in.Phone)
		columns = append(columns, table.Lead.Phone)
	}
	if in.Source != nil {
		l.Source = util.NilIfEmpty(in.Source)
		columns = append(columns, table.Lead.Source)
	}
	if in.Notes != nil {
		l.Notes = util.NilIfEmpty(in.Notes)
		columns = append(columns, table.Lead.Notes)
	}
	if in.Status != nil {
		status, err := parseLeadStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if status == model.LeadStatus_Converted {
			return nil, invalidInput("leads are converted through the convert endpoint")
		}
		l.Status = status
		columns = append(columns, table.Lead.Status)
	}

	return columns, nil
}

func parseLeadStatus(s string) (model.LeadStatus, error) {
	for _, v := range model.LeadStatusAllValues {
		if strings.EqualFold(strings.TrimSpace(s), v.String()) {
			return v, nil
		}
	}
	return "", invalidInput("unknown lead status %q", s)
}

// ParseLeadStatus is used by resolvers to validate list filters.
func ParseLeadStatus(s string) (*model.LeadStatus, error) {
	if s == "" {
		return nil, nil
	}
	status, err := parseLeadStatus(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse status filter: %w", err)
	}
	return &status, nil
}

func trimmedOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
