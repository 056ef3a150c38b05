package orders

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"inkpress/models"
	"inkpress/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

func trackingURL(orderNumber string) string {
	base := os.Getenv("STOREFRONT_URL")
	if base == "" {
		base = "http://localhost:5173"
	}
	return base + "/order-tracking?order=" + orderNumber
}

// OrderQR returns a PNG QR code pointing at the tracking page for an order.
func (h *Handler) OrderQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := h.Service.ByNumber(ctx, ps.ByName("orderNumber"))
	if err != nil {
		log.Println("OrderQR error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not look up order, please retry")
		return
	}
	if order == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	png, err := qrcode.Encode(trackingURL(order.OrderNumber), qrcode.Medium, 256)
	if err != nil {
		log.Println("OrderQR encode error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// OrderReceipt renders a printable PDF receipt for an order, with a QR code
// linking back to the tracking page.
func (h *Handler) OrderReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := h.Service.ByNumber(ctx, ps.ByName("orderNumber"))
	if err != nil {
		log.Println("OrderReceipt error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not look up order, please retry")
		return
	}
	if order == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	buf, err := buildReceiptPDF(order)
	if err != nil {
		log.Println("OrderReceipt PDF error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+order.OrderNumber+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func buildReceiptPDF(order *models.Order) (*bytes.Buffer, error) {
	qrPNG, err := qrcode.Encode(trackingURL(order.OrderNumber), qrcode.Medium, 128)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Order Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Order Number: %s\nCustomer: %s\nEmail: %s\nPlaced: %s\nStatus: %s",
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		order.CreatedAt.Format("02 Jan 2006 15:04"),
		order.Status,
	), "", "L", false)
	pdf.Ln(4)

	// line items
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Unit", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		pdf.CellFormat(90, 8, item.ProductName, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 10, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 10, fmt.Sprintf("%.2f", order.TotalAmount), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	addr := order.ShippingAddress
	shipping := addr.AddressLine1
	if addr.AddressLine2 != "" {
		shipping += "\n" + addr.AddressLine2
	}
	shipping += fmt.Sprintf("\n%s %s\n%s", addr.City, addr.Postcode, addr.Country)
	pdf.MultiCell(0, 7, "Ship to:\n"+shipping, "", "L", false)

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 230, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 8, "Scan the code to track your order.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
