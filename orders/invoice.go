package orders

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

func invoiceSecret() []byte {
	if s := os.Getenv("INVOICE_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("garments-invoice-secret")
}

// invoiceQRPayload returns orderId|timestamp|signature so a scanned
// invoice can be verified against tampering.
func invoiceQRPayload(orderID string) string {
	data := fmt.Sprintf("%s|%d", orderID, time.Now().Unix())
	h := hmac.New(sha256.New, invoiceSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintInvoice renders the order as a PDF with a verification QR code.
func (h *Handler) PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order, ok := h.loadOrder(ctx, ps.ByName("orderid"), userID)
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	qrPNG, err := qrcode.Encode(invoiceQRPayload(order.OrderID), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order ID: %s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", order.Date.Format("02 Jan 2006")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Ship to: %s, %s, %s %s", order.ShippingAddress.FullName,
		order.ShippingAddress.City, order.ShippingAddress.Pincode, order.ShippingAddress.Country))
	pdf.Ln(12)

	for _, item := range order.Items {
		pdf.Cell(0, 8, fmt.Sprintf("%s (%s/%s) x%d  -  Rs. %d",
			item.Name, item.SelectedSize, item.SelectedColor, item.Quantity,
			item.PriceAtPurchase*int64(item.Quantity)))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.Cell(0, 8, fmt.Sprintf("Discount: Rs. %d", order.DiscountAmount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Shipping: Rs. %d", order.ShippingFee))
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total (COD): Rs. %d", order.Total))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("Invoice PDF error:", err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", order.OrderID))
	w.Write(buf.Bytes())
}
