package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/db/models/postgres/public/table"
	"finora/internal/logger"
	"finora/internal/repository"
	"finora/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type ClientService interface {
	CreateClient(ctx context.Context, userAccountID uuid.UUID, in ClientInput) (*model.Client, error)
	GetClient(ctx context.Context, userAccountID, clientID uuid.UUID) (*model.Client, error)
	ListClients(ctx context.Context, filter repository.ClientListFilter) ([]model.Client, error)
	UpdateClient(ctx context.Context, userAccountID, clientID uuid.UUID, in ClientInput) (*model.Client, error)
	DeleteClient(ctx context.Context, userAccountID, clientID uuid.UUID) error
}

// ClientInput carries user-supplied client fields. Nil fields are left
// unchanged on update.
type ClientInput struct {
	FullName    *string
	Email       *string
	Phone       *string
	RiskProfile *string
	Status      *string
	Notes       *string
}

type clientServiceHandler struct {
	ClientRepository repository.ClientRepository
}

func NewClientService(clientRepository repository.ClientRepository) ClientService {
	return clientServiceHandler{
		ClientRepository: clientRepository,
	}
}

func (h clientServiceHandler) CreateClient(ctx context.Context, userAccountID uuid.UUID, in ClientInput) (*model.Client, error) {
	if in.FullName == nil || strings.TrimSpace(*in.FullName) == "" {
		return nil, invalidInput("client full name is required")
	}

	c := model.Client{
		UserAccountID: userAccountID,
		RiskProfile:   model.RiskProfile_Moderate,
		Status:        model.ClientStatus_Active,
	}
	if _, err := applyClientInput(&c, in); err != nil {
		return nil, err
	}

	out, err := h.ClientRepository.Add(nil, c)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infof("created client %s", out.ClientID.String())
	return out, nil
}

func (h clientServiceHandler) GetClient(ctx context.Context, userAccountID, clientID uuid.UUID) (*model.Client, error) {
	c, err := h.ClientRepository.Get(userAccountID, clientID)
	if err != nil {
		return nil, notFoundOr(err, "client "+clientID.String())
	}
	return c, nil
}

func (h clientServiceHandler) ListClients(ctx context.Context, filter repository.ClientListFilter) ([]model.Client, error) {
	return h.ClientRepository.List(filter)
}

func (h clientServiceHandler) UpdateClient(ctx context.Context, userAccountID, clientID uuid.UUID, in ClientInput) (*model.Client, error) {
	existing, err := h.ClientRepository.Get(userAccountID, clientID)
	if err != nil {
		return nil, notFoundOr(err, "client "+clientID.String())
	}

	columns, err := applyClientInput(existing, in)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return existing, nil
	}

	out, err := h.ClientRepository.Update(nil, *existing, columns)
	if err != nil {
		return nil, notFoundOr(err, "client "+clientID.String())
	}

	return out, nil
}

func (h clientServiceHandler) DeleteClient(ctx context.Context, userAccountID, clientID uuid.UUID) error {
	err := h.ClientRepository.Delete(userAccountID, clientID)
	if errors.Is(err, repository.ErrClientReferenced) {
		return fmt.Errorf("%w: client %s was converted from a lead, set it INACTIVE instead", ErrConflict, clientID.String())
	} else if err != nil {
		return notFoundOr(err, "client "+clientID.String())
	}
	logger.FromContext(ctx).Infof("deleted client %s", clientID.String())
	return nil
}

// applyClientInput copies the set fields onto c and returns the columns
// that changed.
func applyClientInput(c *model.Client, in ClientInput) (postgres.ColumnList, error) {
	columns := postgres.ColumnList{}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, invalidInput("client full name cannot be blank")
		}
		c.FullName = name
		columns = append(columns, table.Client.FullName)
	}
	if in.Email != nil {
		c.Email = util.NilIfEmpty(in.Email)
		columns = append(columns, table.Client.Email)
	}
	if in.Phone != nil {
		c.Phone = util.NilIfEmpty(in.Phone)
		columns = append(columns, table.Client.Phone)
	}
	if in.Notes != nil {
		c.Notes = util.NilIfEmpty(in.Notes)
		columns = append(columns, table.Client.Notes)
	}
	if in.RiskProfile != nil {
		rp, err := parseRiskProfile(*in.RiskProfile)
		if err != nil {
			return nil, err
		}
		c.RiskProfile = rp
		columns = append(columns, table.Client.RiskProfile)
	}
	if in.Status != nil {
		status, err := parseClientStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		c.Status = status
		columns = append(columns, table.Client.Status)
	}

	return columns, nil
}

func parseRiskProfile(s string) (model.RiskProfile, error) {
	for _, v := range model.RiskProfileAllValues {
		if strings.EqualFold(strings.TrimSpace(s), v.String()) {
			return v, nil
		}
	}
	return "", invalidInput("unknown risk profile %q", s)
}

func parseClientStatus(s string) (model.ClientStatus, error) {
	for _, v := range model.ClientStatusAllValues {
		if strings.EqualFold(strings.TrimSpace(s), v.String()) {
			return v, nil
		}
	}
	return "", invalidInput("unknown client status %q", s)
}

// ParseClientStatus is used by resolvers to validate list filters.
func ParseClientStatus(s string) (*model.ClientStatus, error) {
	if s == "" {
		return nil, nil
	}
	status, err := parseClientStatus(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse status filter: %w", err)
	}
	return &status, nil
}
