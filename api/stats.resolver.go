package api

import (
	"fmt"

	"finora/internal/repository"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getAdvisorStats(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	stats, err := repository.GetAdvisorStats(m.Db, userAccountID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to load stats: %w", err), c)
		return
	}

	c.JSON(200, stats)
}
