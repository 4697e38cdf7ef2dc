package sbom

import "github.com/gofiber/fiber/v2"

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>SBOM to PDF</title>
  <style>
    body { font-family: Helvetica, Arial, sans-serif; max-width: 40em; margin: 4em auto; color: #2c3e50; }
    form { border: 1px solid #bdc3c7; border-radius: 6px; padding: 2em; }
    button { background: #2c3e50; color: #fff; border: 0; padding: 0.6em 1.4em; border-radius: 4px; cursor: pointer; }
  </style>
</head>
<body>
  <h1>SBOM to PDF</h1>
  <p>Upload an SPDX JSON document and download it as a formatted PDF report.</p>
  <form action="/process" method="post" enctype="multipart/form-data">
    <input type="file" name="json_file" accept=".json" required>
    <button type="submit">Generate PDF</button>
  </form>
</body>
</html>
`

// Index serves the upload form.
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(indexHTML)
	}
}
