package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) sendPerformanceReports(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	result, err := m.EmailService.SendPerformanceReports(c.Request.Context(), userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}

type updateEmailPreferenceRequest struct {
	Frequency string `json:"frequency"`
}

type emailPreferenceResponse struct {
	ClientID  string `json:"clientId"`
	EmailType string `json:"emailType"`
	Frequency string `json:"frequency"`
}

func (m ApiHandler) updateEmailPreference(c *gin.Context) {
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

	var requestBody updateEmailPreferenceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	pref, err := m.EmailService.UpdateReportPreference(c.Request.Context(), userAccountID, clientID, requestBody.Frequency)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, emailPreferenceResponse{
		ClientID:  pref.ClientID.String(),
		EmailType: pref.EmailType.String(),
		Frequency: pref.Frequency.String(),
	})
}
