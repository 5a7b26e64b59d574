package api

import (
	"fmt"
	"strconv"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/repository"
	"finora/internal/service"

	"github.com/gin-gonic/gin"
)

type clientRequest struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	RiskProfile *string `json:"riskProfile"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

func (r clientRequest) toInput() service.ClientInput {
	return service.ClientInput{
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		RiskProfile: r.RiskProfile,
		Status:      r.Status,
		Notes:       r.Notes,
	}
}

type clientResponse struct {
	ClientID    string  `json:"clientId"`
	FullName    string  `json:"fullName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	RiskProfile string  `json:"riskProfile"`
	Status      string  `json:"status"`
	LeadID      *string `json:"leadId"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"createdAt"`
	ModifiedAt  string  `json:"modifiedAt"`
}

func clientToResponse(c model.Client) clientResponse {
	var leadID *string
	if c.LeadID != nil {
		s := c.LeadID.String()
		leadID = &s
	}
	return clientResponse{
		ClientID:    c.ClientID.String(),
		FullName:    c.FullName,
		Email:       c.Email,
		Phone:       c.Phone,
		RiskProfile: c.RiskProfile.String(),
		Status:      c.Status.String(),
		LeadID:      leadID,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		ModifiedAt:  c.ModifiedAt.Format(time.RFC3339),
	}
}

func (m ApiHandler) listClients(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	status, err := service.ParseClientStatus(c.Query("status"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	limit, offset, err := parsePaging(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	filter := repository.ClientListFilter{
		UserAccountID: userAccountID,
		Status:        status,
		Limit:         limit,
		Offset:        offset,
	}
	if q := c.Query("q"); q != "" {
		filter.Search = &q
	}

	clients, err := m.ClientService.ListClients(c.Request.Context(), filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]clientResponse, 0, len(clients))
	for _, cl := range clients {
		out = append(out, clientToResponse(cl))
	}
	c.JSON(200, out)
}

func (m ApiHandler) createClient(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody clientRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	client, err := m.ClientService.CreateClient(c.Request.Context(), userAccountID, requestBody.toInput())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, clientToResponse(*client))
}

func (m ApiHandler) getClient(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	clientID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	client, err := m.ClientService.GetClient(c.Request.Context(), userAccountID, clientID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, clientToResponse(*client))
}

func (m ApiHandler) updateClient(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	clientID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var requestBody clientRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	client, err := m.ClientService.UpdateClient(c.Request.Context(), userAccountID, clientID, requestBody.toInput())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, clientToResponse(*client))
}

func (m ApiHandler) deleteClient(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	clientID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := m.ClientService.DeleteClient(c.Request.Context(), userAccountID, clientID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Status(204)
}

func parsePaging(c *gin.Context) (int64, int64, error) {
	var limit, offset int64
	var err error
	if s := c.Query("limit"); s != "" {
		limit, err = strconv.ParseInt(s, 10, 64)
		if err != nil || limit < 0 {
			return 0, 0, fmt.Errorf("%w: invalid limit %q", service.ErrInvalidInput, s)
		}
	}
	if s := c.Query("offset"); s != "" {
		offset, err = strconv.ParseInt(s, 10, 64)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("%w: invalid offset %q", service.ErrInvalidInput, s)
		}
	}
	return limit, offset, nil
}
