package api

import (
	"github.com/gin-gonic/gin"
)

type monitorRecommendationsRequest struct {
	AutoExit bool `json:"autoExit"`
}

func (m ApiHandler) monitorRecommendations(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody monitorRecommendationsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
	}

	result, err := m.RecommendationService.MonitorRecommendations(c.Request.Context(), userAccountID, requestBody.AutoExit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
