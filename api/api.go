package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/logger"
	"finora/internal/repository"
	"finora/internal/service"
	"finora/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db *sql.DB
	// JwtDecodeToken is the auth provider's shared HS256 secret.
	JwtDecodeToken string

	UserAccountRepository     repository.UserAccountRepository
	ApiRequestRepository      repository.ApiRequestRepository
	LatencyTrackingRepository repository.LatencyTrackingRepository
	ClientService             service.ClientService
	LeadService               service.LeadService
	RecommendationService     service.RecommendationService
	ReturnsService            service.ReturnsService
	EmailService              service.EmailService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.ContextWithFallback = true

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsConfig))
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware)
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to finora"})
	})
	router.POST("/returns", m.computeReturns)

	authed := router.Group("/")
	authed.Use(m.authMiddleware)

	authed.GET("/clients", m.listClients)
	authed.POST("/clients", m.createClient)
	authed.GET("/clients/:id", m.getClient)
	authed.PUT("/clients/:id", m.updateClient)
	authed.DELETE("/clients/:id", m.deleteClient)
	authed.GET("/clients/:id/returns", m.getClientReturns)
	authed.PUT("/clients/:id/emailPreference", m.updateEmailPreference)

	authed.GET("/leads", m.listLeads)
	authed.POST("/leads", m.createLead)
	authed.POST("/leads/import", m.importLeads)
	authed.GET("/leads/:id", m.getLead)
	authed.PUT("/leads/:id", m.updateLead)
	authed.DELETE("/leads/:id", m.deleteLead)
	authed.POST("/leads/:id/convert", m.convertLead)

	authed.GET("/trades", m.listTrades)
	authed.POST("/trades", m.createTrade)
	authed.GET("/trades/:id", m.getTrade)
	authed.PUT("/trades/:id", m.updateTrade)
	authed.DELETE("/trades/:id", m.deleteTrade)
	authed.POST("/trades/:id/exit", m.exitTrade)

	authed.GET("/returns", m.getAdvisorReturns)
	authed.GET("/stats", m.getAdvisorStats)
	authed.POST("/monitorRecommendations", m.monitorRecommendations)
	authed.POST("/sendPerformanceReports", m.sendPerformanceReports)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusForError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	lg := logger.FromContext(c)
	if code >= 500 {
		lg.Errorf("request failed: %v", err)
	} else {
		lg.Warnf("request rejected with %d: %v", code, err)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound), errors.Is(err, qrm.ErrNoRows):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// loggerMiddleware attaches a request-scoped logger to the request
// context.
func loggerMiddleware(c *gin.Context) {
	requestID := uuid.New()
	c.Set("requestID", requestID.String())

	lg := zap.S().With(
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), lg))

	start := time.Now()
	c.Next()

	lg.Infow("request completed",
		"status", c.Writer.Status(),
		"latencyMs", time.Since(start).Milliseconds(),
	)
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	if m.ApiRequestRepository == nil {
		ctx.Next()
		return
	}
	lg := logger.FromContext(ctx)

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		lg.Warnf("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	var requestBody *string
	if len(body) > 0 && ctx.ContentType() == gin.MIMEJSON {
		requestBody = util.StringPointer(string(body))
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(model.APIRequest{
		IPAddress:   util.StringPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: requestBody,
		StartTs:     start,
	})
	if err != nil {
		lg.Warnf("failed to log api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		if userAccountID, err := getUserAccountID(ctx); err == nil {
			req.UserAccountID = &userAccountID
		}
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StringPointer(w.body.String())

		err = m.ApiRequestRepository.Update(*req)
		if err != nil {
			lg.Warnf("failed to update api request: %v", err)
		}
	}
}

func getUserAccountID(c *gin.Context) (uuid.UUID, error) {
	ginUserAccountID, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted user account id")
	}

	return uuid.Parse(userAccountIDStr)
}

func getRequestID(c *gin.Context) *uuid.UUID {
	requestIDAny, ok := c.Get("requestID")
	if !ok {
		return nil
	}
	requestIDStr, ok := requestIDAny.(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(requestIDStr)
	if err != nil {
		return nil
	}
	return &id
}

func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q", service.ErrInvalidInput, c.Param("id"))
	}
	return id, nil
}
