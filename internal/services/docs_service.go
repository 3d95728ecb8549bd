package services

import (
	"bytes"
	"fmt"
	"time"

	"haulhub/internal/domain/models"
	"haulhub/internal/repositories"
	"haulhub/internal/utils"
	"haulhub/pkg/logger"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// DocsService renders trip paperwork (rate confirmation, driver settlement)
// as PDFs. A Loader hook lets tests inject trip data without a database.
type DocsService struct {
	TripRepo  repositories.TripRepository
	RequestID string
	Loader    func(string) (models.Trip, error)
}

func (s DocsService) loadTrip(tripID string) (models.Trip, error) {
	if s.Loader != nil {
		return s.Loader(tripID)
	}
	return s.TripRepo.GetByID(tripID)
}

// RateConfirmation renders the broker-facing rate confirmation sheet with a
// QR code linking back to the trip.
func (s DocsService) RateConfirmation(tripID string) ([]byte, string, error) {
	t, err := s.loadTrip(tripID)
	if err != nil {
		return nil, "", err
	}
	logger.L.Info("rate confirmation generated",
		logger.String("request_id", s.RequestID),
		logger.String("trip_id", tripID),
	)
	return buildRateConfirmationPDF(t)
}

// DriverSettlement renders the driver-facing pay sheet, limited to the
// fields a driver is entitled to see.
func (s DocsService) DriverSettlement(tripID string) ([]byte, string, error) {
	t, err := s.loadTrip(tripID)
	if err != nil {
		return nil, "", err
	}
	logger.L.Info("driver settlement generated",
		logger.String("request_id", s.RequestID),
		logger.String("trip_id", tripID),
	)
	return buildDriverSettlementPDF(t)
}

func moneyLine(label string, v *float64) string {
	if v == nil {
		return fmt.Sprintf("%-22s -", label)
	}
	return fmt.Sprintf("%-22s %s", label, utils.FormatUSD(*v))
}

func tsLine(label string, v *time.Time) string {
	if v == nil {
		return fmt.Sprintf("%-22s -", label)
	}
	return fmt.Sprintf("%-22s %s", label, utils.FormatTimestamp(*v))
}

func buildRateConfirmationPDF(t models.Trip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Rate Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RATE CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Courier", "", 11)
	lines := []string{
		fmt.Sprintf("%-22s %s", "Trip", t.TripID),
		fmt.Sprintf("%-22s %s", "Confirmation", t.OrderConfirmation),
		fmt.Sprintf("%-22s %s", "Status", string(t.OrderStatus)),
		fmt.Sprintf("%-22s %s, %s -> %s, %s", "Lane", t.PickupCity, t.PickupState, t.DeliveryCity, t.DeliveryState),
		tsLine("Scheduled", t.ScheduledTimestamp),
		fmt.Sprintf("%-22s %d loaded / %d empty / %d total", "Miles", t.LoadedMiles, t.EmptyMiles, t.TotalMiles),
		fmt.Sprintf("%-22s %s / %s", "Truck/Trailer", t.TruckID, t.TrailerID),
		moneyLine("Order Rate", t.OrderRate),
		moneyLine("Broker Advance", t.BrokerAdvance),
		moneyLine("Factoring Cost", t.FactoryCost),
		moneyLine("Lumper Fees", t.LumperFees),
		moneyLine("Detention Fees", t.DetentionFees),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if err := embedTripQR(pdf, t.TripID); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("RATECON_%s.pdf", utils.SafeFilenamePart(t.TripID))
	return buf.Bytes(), name, nil
}

func buildDriverSettlementPDF(t models.Trip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Driver Settlement", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DRIVER SETTLEMENT")
	pdf.Ln(12)

	pdf.SetFont("Courier", "", 11)
	lines := []string{
		fmt.Sprintf("%-22s %s", "Trip", t.TripID),
		fmt.Sprintf("%-22s %s", "Driver", t.DriverID),
		fmt.Sprintf("%-22s %s, %s -> %s, %s", "Lane", t.PickupCity, t.PickupState, t.DeliveryCity, t.DeliveryState),
		tsLine("Picked Up", t.PickupTimestamp),
		tsLine("Delivered", t.DeliveryTimestamp),
		fmt.Sprintf("%-22s %d loaded / %d total", "Miles", t.LoadedMiles, t.TotalMiles),
		moneyLine("Rate per Mile", t.DriverRate),
		moneyLine("Advance", t.DriverAdvance),
		moneyLine("Payment", t.DriverPayment),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Payment covers loaded miles only, less any advance already disbursed.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("SETTLEMENT_%s.pdf", utils.SafeFilenamePart(t.TripID))
	return buf.Bytes(), name, nil
}

// embedTripQR draws a QR code of the trip id in the lower-right corner so a
// printed sheet can be scanned back to the record.
func embedTripQR(pdf *gofpdf.Fpdf, tripID string) error {
	png, err := qrcode.Encode("haulhub:trip:"+tripID, qrcode.Medium, 256)
	if err != nil {
		return err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("trip-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("trip-qr", 160, 240, 35, 35, false, opts, 0, "")
	return pdf.Error()
}
