package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/insightdelivered/gpay-extractor/internal/extractor"
	"github.com/insightdelivered/gpay-extractor/internal/logging"
	"github.com/insightdelivered/gpay-extractor/internal/metrics"
	"github.com/insightdelivered/gpay-extractor/internal/parser"
	"github.com/insightdelivered/gpay-extractor/internal/verify"
	"github.com/insightdelivered/gpay-extractor/internal/writer"
)

// Options configures the API handlers. Logger and Metrics may be nil; the
// /metrics route is mounted only when a Registry is given.
type Options struct {
	Logger   *zap.Logger
	Metrics  *metrics.Collector
	Registry *prometheus.Registry
}

// Handler holds the HTTP handlers for the extraction API.
type Handler struct {
	log     *zap.Logger
	metrics *metrics.Collector
}

// Register mounts the API routes on the fiber app.
func Register(app *fiber.App, opts Options) {
	h := &Handler{log: opts.Logger, metrics: opts.Metrics}
	if h.log == nil {
		h.log = logging.NewNop()
	}

	app.Get("/health", h.HandleHealth)
	app.Post("/api/extract", h.HandleExtract)
	if opts.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}
}

// HandleHealth reports service liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "gpay-extractor",
	})
}

// extractResponse is the JSON response from POST /api/extract.
type extractResponse struct {
	RequestID    string         `json:"requestId"`
	Result       *writer.Result `json:"result"`
	Verification verification   `json:"verification"`
}

type verification struct {
	Passed   []string `json:"passed"`
	Warnings []string `json:"warnings"`
	Failed   []string `json:"failed"`
	OK       bool     `json:"ok"`
}

// HandleExtract accepts a PDF statement as multipart form field "file",
// runs the extraction pipeline on it, and returns the result document
// together with the verification report.
func (h *Handler) HandleExtract(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	log := h.log.With(zap.String("requestId", requestID))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no file uploaded; use form field 'file'",
		})
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "only PDF files are supported",
		})
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "creating temp file failed",
		})
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "saving uploaded file failed",
		})
	}

	start := time.Now()
	lines, err := extractor.ExtractLines(tmpPath)
	if err != nil {
		log.Warn("extraction failed",
			zap.String("file", fileHeader.Filename), zap.Error(err))
		if h.metrics != nil {
			h.metrics.RecordExtraction("error", 0, time.Since(start))
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("PDF extraction failed: %v", err),
		})
	}

	period, transactions := parser.Parse(lines)
	report := verify.Run(transactions, period)

	if h.metrics != nil {
		h.metrics.RecordExtraction("ok", len(transactions), time.Since(start))
		h.metrics.RecordChecks(len(report.Passed), len(report.Warnings), len(report.Failed))
	}
	log.Info("statement extracted",
		zap.String("file", fileHeader.Filename),
		zap.Int("transactions", len(transactions)),
		zap.Bool("verified", report.OK()))

	return c.JSON(extractResponse{
		RequestID: requestID,
		Result:    writer.NewResult(period, transactions),
		Verification: verification{
			Passed:   nonNil(report.Passed),
			Warnings: nonNil(report.Warnings),
			Failed:   nonNil(report.Failed),
			OK:       report.OK(),
		},
	})
}

// nonNil keeps empty check lists serializing as [] instead of null.
func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
