// Package sbom implements the REST API handlers for SBOM report generation.
package sbom

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chacepro/sbom-to-pdf/config"
	"github.com/chacepro/sbom-to-pdf/internal/pdfgen"
	"github.com/chacepro/sbom-to-pdf/model"
	"github.com/chacepro/sbom-to-pdf/report"
)

// GeneratePDF accepts an uploaded SPDX JSON file, renders it as a PDF
// report and returns it as a download named sbom_document.pdf.
//
// The file must arrive as multipart field "json_file" with a .json name.
// Invalid input is a 400; any failure past JSON parsing is a 500 carrying
// the underlying error.
func GeneratePDF(cfg config.Config, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("json_file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("No file uploaded")
		}
		if !strings.HasSuffix(fileHeader.Filename, ".json") {
			return c.Status(fiber.StatusBadRequest).SendString("Please upload a JSON file")
		}

		f, err := fileHeader.Open()
		if err != nil {
			return processingError(c, logger, err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return processingError(c, logger, err)
		}

		doc, err := model.Parse(data)
		if err != nil {
			if errors.Is(err, model.ErrInvalidJSON) {
				return c.Status(fiber.StatusBadRequest).SendString("Invalid JSON file")
			}
			return processingError(c, logger, err)
		}

		blocks, err := report.Compose(doc)
		if err != nil {
			return processingError(c, logger, err)
		}

		engineCfg := pdfgen.DefaultConfig()
		engineCfg.Title = doc.StringOr("name", "SBOM Document")
		engineCfg.Creator = cfg.PDF.Creator
		engineCfg.Producer = cfg.PDF.Producer
		engineCfg.Compress = cfg.PDF.Compress

		var buf bytes.Buffer
		if err := pdfgen.New(engineCfg).Render(blocks, &buf); err != nil {
			return processingError(c, logger, err)
		}

		logger.Info("rendered SBOM report",
			zap.String("file", fileHeader.Filename),
			zap.Int("pdf_bytes", buf.Len()))

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="sbom_document.pdf"`)
		return c.Send(buf.Bytes())
	}
}

func processingError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	logger.Error("failed to process SBOM upload", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).
		SendString("Error processing file: " + err.Error())
}
