package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mmdatafocus/etax_backend/config"
	"github.com/mmdatafocus/etax_backend/models"
	"github.com/mmdatafocus/etax_backend/utils"
)

const defaultPort = "8080"

func documentHandler(kind models.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		qs := models.NewQueryService(config.GetStore())
		doc := qs.GetByKind(kind)
		if doc == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func documentByNoHandler(kind models.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		qs := models.NewQueryService(config.GetStore())
		doc := qs.GetByKindAndNo(kind, c.Param("no"))
		if doc == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

type correctionRequest struct {
	No       string           `json:"no" binding:"required"`
	NewPrice *decimal.Decimal `json:"new_price" binding:"required"`
}

// A null document in the response means the correction was not
// applicable. That is the same contract the original mutations had:
// a mismatched number or wrong direction is a non-event, not an error.
func createCreditNoteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()
		var req correctionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		pc := models.NewPriceCorrector(config.GetStore(), logger)
		note, err := pc.CreateCreditNoteFromReceipt(c.Request.Context(), req.No, *req.NewPrice)
		if err != nil {
			status := correctionErrorStatus(err)
			config.LogError(logger, "server.go", "createCreditNoteHandler", "CreateCreditNoteFromReceipt", req.No, err)
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"credit_note": note})
	}
}

func createDebitNoteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()
		var req correctionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		pc := models.NewPriceCorrector(config.GetStore(), logger)
		note, err := pc.CreateDebitNoteFromReceipt(c.Request.Context(), req.No, *req.NewPrice)
		if err != nil {
			status := correctionErrorStatus(err)
			config.LogError(logger, "server.go", "createDebitNoteHandler", "CreateDebitNoteFromReceipt", req.No, err)
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"debit_note": note})
	}
}

func correctionErrorStatus(err error) int {
	var storageErr *utils.StorageError
	switch {
	case errors.Is(err, utils.ErrorInvalidArgument),
		errors.Is(err, utils.ErrorAmbiguousTaxRate):
		return http.StatusBadRequest
	case errors.Is(err, utils.ErrorRecordNotFound):
		return http.StatusNotFound
	case errors.As(err, &storageErr):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func customNotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
}

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		// Cloud Run standard env var.
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()

	// Cloud Run sends SIGTERM on revision shutdown; handle it for graceful drain.
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	r := gin.New()
	// Correlation IDs: generate once per request and attach to context.
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Request = c.Request.WithContext(utils.SetCorrelationIdInContext(c.Request.Context(), cid))
		c.Next()
	})
	r.Use(func(c *gin.Context) {
		// Always allow the startup probe.
		if c.Request.URL.Path == "/healthz" {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		// Gate document endpoints on the store being loaded.
		if config.GetStore() == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	corsConfig := cors.DefaultConfig()
	// Production-safe CORS:
	// - In production, require explicit allowlist via CORS_ALLOWED_ORIGINS (comma-separated).
	// - In non-production, allow all (developer convenience).
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		if allowedOrigins == "" {
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "x-correlation-id")
	corsConfig.AddExposeHeaders("Content-Length")

	r.Use(cors.New(corsConfig))
	r.Use(customErrorLogger(logger))
	r.Use(gin.Recovery())

	r.GET("/purchase-order", documentHandler(models.DocumentKindPurchaseOrder))
	r.GET("/purchase-order/:no", documentByNoHandler(models.DocumentKindPurchaseOrder))
	r.GET("/credit-note", documentHandler(models.DocumentKindCreditNote))
	r.GET("/debit-note", documentHandler(models.DocumentKindDebitNote))
	r.GET("/delivery-order-tax-invoice", documentHandler(models.DocumentKindDeliveryOrderTaxInvoice))
	r.GET("/delivery-order-tax-invoice/:no", documentByNoHandler(models.DocumentKindDeliveryOrderTaxInvoice))
	r.GET("/receipt-tax-invoice", documentHandler(models.DocumentKindReceiptTaxInvoice))
	r.GET("/receipt-tax-invoice/:no", documentByNoHandler(models.DocumentKindReceiptTaxInvoice))
	r.POST("/credit-note/from-receipt", createCreditNoteHandler())
	r.POST("/debit-note/from-receipt", createDebitNoteHandler())
	r.NoRoute(customNotFoundHandler)

	// Start listening immediately (startup probe is TCP based); requests
	// get 503 until the fixture store is open.
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	if err := config.OpenStore(); err != nil {
		logger.WithFields(logrus.Fields{"field": "documentStore"}).Fatal("cannot start without fixtures: " + err.Error())
	}

	logger.WithFields(logrus.Fields{
		"info": "Store Loaded",
	}).Info("serving e-tax documents on http://localhost:", port, "/")

	// Block until shutdown or server error.
	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	// Drain HTTP requests.
	shutdownTimeout := 30 * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}
}

// customErrorLogger is a custom Gin middleware that logs only errors
func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only log when there are errors
		if len(c.Errors) > 0 {
			logger.Error(c.Errors.String())
		}
	}
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
