package sbom

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chacepro/sbom-to-pdf/config"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/", Index())
	app.Post("/process", GeneratePDF(config.Default(), zap.NewNop()))
	return app
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("json_file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/process", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func doRequest(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := testApp().Test(req, -1)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestProcessNoFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/process", nil)
	resp, body := doRequest(t, req)
	if resp.StatusCode != http.StatusBadRequest || body != "No file uploaded" {
		t.Fatalf("status=%d body=%q", resp.StatusCode, body)
	}
}

func TestProcessWrongExtensionRejectedBeforeParsing(t *testing.T) {
	// Invalid JSON content: must never reach the parser.
	resp, body := doRequest(t, uploadRequest(t, "sbom.txt", []byte("not json")))
	if resp.StatusCode != http.StatusBadRequest || body != "Please upload a JSON file" {
		t.Fatalf("status=%d body=%q", resp.StatusCode, body)
	}
}

func TestProcessInvalidJSON(t *testing.T) {
	resp, body := doRequest(t, uploadRequest(t, "sbom.json", []byte("{broken")))
	if resp.StatusCode != http.StatusBadRequest || body != "Invalid JSON file" {
		t.Fatalf("status=%d body=%q", resp.StatusCode, body)
	}
}

func TestProcessMalformedShapeIsServerError(t *testing.T) {
	resp, body := doRequest(t, uploadRequest(t, "sbom.json", []byte(`{"packages": 5}`)))
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%q", resp.StatusCode, body)
	}
	if !strings.HasPrefix(body, "Error processing file: ") {
		t.Fatalf("body = %q", body)
	}
}

func TestProcessSuccess(t *testing.T) {
	payload := []byte(`{"name": "Test", "packages": [{"name": "libfoo", "versionInfo": "1.0"}]}`)
	resp, body := doRequest(t, uploadRequest(t, "sbom.json", payload))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%q", resp.StatusCode, body)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, `filename="sbom_document.pdf"`) {
		t.Fatalf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(body, "%PDF-") {
		t.Fatalf("body is not a PDF, starts %q", body[:min(16, len(body))])
	}
}

func TestIndexServesUploadForm(t *testing.T) {
	resp, body := doRequest(t, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, `name="json_file"`) || !strings.Contains(body, `action="/process"`) {
		t.Fatalf("index page missing upload form")
	}
}
