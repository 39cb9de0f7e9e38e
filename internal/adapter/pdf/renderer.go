// Package pdf renders trip itineraries as printable PDF documents.
package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/timeutil"
)

// ContentType is the MIME type of rendered documents.
const ContentType = "application/pdf"

// Renderer turns a Trip into PDF bytes. It holds no per-document state and is
// safe for concurrent use.
type Renderer struct {
	clock    timeutil.Clock
	compress bool
}

// NewRenderer creates a new renderer. A nil clock uses the real clock.
func NewRenderer(clock timeutil.Clock) *Renderer {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Renderer{clock: clock, compress: true}
}

// Render writes the trip overview followed by its itinerary, one section per
// date in entry order.
func (r *Renderer) Render(trip *domain.Trip) ([]byte, error) {
	if trip == nil {
		return nil, errors.New("pdf: trip is nil")
	}

	now := r.clock.Now()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(r.compress)
	doc.SetCreationDate(now)
	doc.SetTitle("Trip to "+trip.Destination, true)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 25)
	doc.AliasNbPages("")

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(150, 150, 150)
		footer := fmt.Sprintf("Generated %s  ·  Page %d/{nb}", now.UTC().Format("02 Jan 2006, 15:04 UTC"), doc.PageNo())
		doc.CellFormat(0, 8, tr(footer), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	// Header bar
	doc.SetFillColor(13, 24, 37)
	doc.Rect(0, 0, 210, 28, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(20, 8)
	doc.CellFormat(170, 10, tr("Trip to "+trip.Destination), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(212, 168, 67)
	doc.SetXY(20, 18)
	doc.CellFormat(170, 6, "Travel Itinerary", "", 1, "L", false, 0, "")
	doc.SetY(35)

	sectionHeader := func(title string) {
		doc.SetFillColor(13, 24, 37)
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		doc.SetTextColor(0, 0, 0)
		doc.Ln(2)
	}

	row := func(label, value string) {
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(45, 7, tr(label), "", 0, "L", false, 0, "")
		doc.SetTextColor(20, 20, 20)
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(125, 7, tr(value), "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Destination", trip.Destination)
	row("Dates", fmt.Sprintf("%s to %s", readableDate(trip.StartDate), readableDate(trip.EndDate)))
	row("Travellers", fmt.Sprintf("%d", trip.PartySize))
	if trip.Budget > 0 {
		row("Budget", fmt.Sprintf("%.2f", trip.Budget))
	}
	doc.Ln(4)

	sectionHeader("Itinerary")
	if len(trip.Itinerary) == 0 {
		doc.SetFont("Helvetica", "I", 10)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(170, 7, "No activities planned.", "", 1, "L", false, 0, "")
	}

	lastDate := ""
	for _, entry := range trip.Itinerary {
		if entry.Date != lastDate {
			if lastDate != "" {
				doc.Ln(2)
			}
			doc.SetFont("Helvetica", "B", 10)
			doc.SetTextColor(13, 24, 37)
			doc.CellFormat(170, 7, readableDate(entry.Date), "B", 1, "L", false, 0, "")
			lastDate = entry.Date
		}

		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(15, 6, entry.Time, "", 0, "L", false, 0, "")
		doc.CellFormat(30, 6, string(entry.Category), "", 0, "L", false, 0, "")
		doc.SetTextColor(20, 20, 20)
		doc.MultiCell(125, 6, tr(entry.Activity), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func readableDate(iso string) string {
	t, err := timeutil.ParseDate(iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}

var _ domain.ItineraryRenderer = (*Renderer)(nil)
