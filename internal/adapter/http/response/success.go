package response

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// MIMEApplicationPDF is the content type of exported itineraries.
const MIMEApplicationPDF = "application/pdf"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// PDFAttachment writes a 200 OK response carrying a PDF document that the
// client should save as filename.
func PDFAttachment(c echo.Context, filename string, document []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, MIMEApplicationPDF, document)
}
