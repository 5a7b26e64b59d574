package api

import (
	"fmt"
	"io"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/repository"
	"finora/internal/service"

	"github.com/gin-gonic/gin"
)

type leadRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Source   *string `json:"source"`
	Notes    *string `json:"notes"`
	Status   *string `json:"status"`
}

type leadResponse struct {
	LeadID            string  `json:"leadId"`
	FullName          string  `json:"fullName"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Source            *string `json:"source"`
	Notes             *string `json:"notes"`
	Status            string  `json:"status"`
	ConvertedClientID *string `json:"convertedClientId"`
	CreatedAt         string  `json:"createdAt"`
	ModifiedAt        string  `json:"modifiedAt"`
}

func leadToResponse(l model.Lead) leadResponse {
	var converted *string
	if l.ConvertedClientID != nil {
		s := l.ConvertedClientID.String()
		converted = &s
	}
	return leadResponse{
		LeadID:            l.LeadID.String(),
		FullName:          l.FullName,
		Email:             l.Email,
		Phone:             l.Phone,
		Source:            l.Source,
		Notes:             l.Notes,
		Status:            l.Status.String(),
		ConvertedClientID: converted,
		CreatedAt:         l.CreatedAt.Format(time.RFC3339),
		ModifiedAt:        l.ModifiedAt.Format(time.RFC3339),
	}
}

func leadsToResponse(leads []model.Lead) []leadResponse {
	out := make([]leadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, leadToResponse(l))
	}
	return out
}

func (r leadRequest) toInput() service.LeadInput {
	return service.LeadInput{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Source:   r.Source,
		Notes:    r.Notes,
		Status:   r.Status,
	}
}

func (m ApiHandler) listLeads(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	status, err := service.ParseLeadStatus(c.Query("status"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	limit, offset, err := parsePaging(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	leads, err := m.LeadService.ListLeads(c.Request.Context(), repository.LeadListFilter{
		UserAccountID: userAccountID,
		Status:        status,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, leadsToResponse(leads))
}

func (m ApiHandler) createLead(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody leadRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	lead, err := m.LeadService.CreateLead(c.Request.Context(), userAccountID, requestBody.toInput())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, leadToResponse(*lead))
}

func (m ApiHandler) getLead(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	leadID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	lead, err := m.LeadService.GetLead(c.Request.Context(), userAccountID, leadID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, leadToResponse(*lead))
}

func (m ApiHandler) updateLead(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	leadID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var requestBody leadRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	lead, err := m.LeadService.UpdateLead(c.Request.Context(), userAccountID, leadID, requestBody.toInput())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, leadToResponse(*lead))
}

func (m ApiHandler) deleteLead(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	leadID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := m.LeadService.DeleteLead(c.Request.Context(), userAccountID, leadID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Status(204)
}

type convertLeadRequest struct {
	RiskProfile *string `json:"riskProfile"`
}

type convertLeadResponse struct {
	Lead   leadResponse   `json:"lead"`
	Client clientResponse `json:"client"`
}

func (m ApiHandler) convertLead(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	leadID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	// body is optional
	var requestBody convertLeadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
	}

	result, err := m.LeadService.ConvertLead(c.Request.Context(), userAccountID, leadID, requestBody.RiskProfile)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, convertLeadResponse{
		Lead:   leadToResponse(result.Lead),
		Client: clientToResponse(result.Client),
	})
}

type importLeadsResponse struct {
	Imported int            `json:"imported"`
	Leads    []leadResponse `json:"leads"`
}

// importLeads accepts the CSV either as a multipart "file" field or as
// the raw request body.
func (m ApiHandler) importLeads(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var csvReader io.Reader = c.Request.Body
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to open uploaded file: %w", err), c, 400)
			return
		}
		defer f.Close()
		csvReader = f
	}

	leads, err := m.LeadService.ImportLeads(c.Request.Context(), userAccountID, csvReader)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, importLeadsResponse{
		Imported: len(leads),
		Leads:    leadsToResponse(leads),
	})
}
