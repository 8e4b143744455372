package server

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/kossaiRedou/EasInvoice/internal/document"
	"github.com/kossaiRedou/EasInvoice/internal/forms"
	invoicedomain "github.com/kossaiRedou/EasInvoice/internal/invoice/domain"
	"github.com/kossaiRedou/EasInvoice/internal/render"
)

const HeaderInvoiceID = "X-Invoice-ID"

// NewInvoiceForm serves the empty invoice form. The issuer block is
// prefilled from the saved profile; the recipient block from a label
// (from_label) or a client-book entry (from_client) the caller owns.
func (s *Server) NewInvoiceForm(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	values := url.Values{}
	if suggested, err := s.suggestNumber(c, userID, document.KindInvoice); err == nil {
		values.Set("invoice_number", suggested)
	}
	if profile, err := s.profileSvc.Get(c.Request.Context(), userID); err == nil && profile != nil {
		values.Set("from_name", profile.CompanyName)
		values.Set("from_address", profile.Address)
		values.Set("from_city", profile.City)
		values.Set("from_email", profile.Email)
		values.Set("siret", profile.SIRET)
		values.Set("rcs", profile.RCS)
		if profile.IsEI {
			values.Set("is_ei", "on")
		}
	}
	if labelID := c.Query("from_label"); labelID != "" {
		label, err := s.labelSvc.GetByID(c.Request.Context(), userID, labelID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		values.Set("to_name", label.RecipientName)
		values.Set("to_address", label.RecipientAddress)
		values.Set("to_city", label.RecipientCity)
		values.Set("to_email", label.RecipientEmail)
	}
	if clientID := c.Query("from_client"); clientID != "" {
		client, err := s.clientSvc.GetByID(c.Request.Context(), userID, clientID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		values.Set("to_name", client.Name)
		values.Set("to_address", client.Address)
		values.Set("to_city", client.City)
		values.Set("to_email", client.Email)
	}

	page := render.NewFormPage(document.KindInvoice, "/invoices", "/invoices/rows", values, nil)
	s.renderHTML(c, http.StatusOK, s.renderer.InvoiceForm, page)
}

// InvoiceRow returns one more item row. The response also carries the
// out-of-band management counter so the next click allocates a fresh
// index.
func (s *Server) InvoiceRow(c *gin.Context) {
	s.itemRow(c, document.KindInvoice)
}

func (s *Server) CreateInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	form, err := forms.DecodeInvoice(c.Request.PostForm)
	if err != nil {
		if vErr := asFieldErrors(err); vErr != nil {
			page := render.NewFormPage(document.KindInvoice, "/invoices", "/invoices/rows", c.Request.PostForm, vErr)
			s.renderHTML(c, http.StatusBadRequest, s.renderer.InvoiceForm, page)
			return
		}
		AbortWithError(c, err)
		return
	}

	created, err := s.invoiceSvc.Create(c.Request.Context(), userID, form)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.pdfSvc.GenerateInvoice(c.Request.Context(), created)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header(HeaderInvoiceID, created.ID.String())
	s.servePDF(c, http.StatusCreated, doc, documentFilename(document.KindInvoice, created.InvoiceNumber, time.Now()))
}

func (s *Server) ListInvoices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	invoices, err := s.invoiceSvc.List(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	now := time.Now()
	views := make([]invoiceResponse, 0, len(invoices))
	for i := range invoices {
		views = append(views, newInvoiceResponse(&invoices[i], now))
	}
	c.JSON(http.StatusOK, gin.H{"invoices": views})
}

func (s *Server) GetInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, newInvoiceResponse(invoice, time.Now()))
		return
	}
	html, err := s.renderer.InvoicePreview(invoice)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) DownloadInvoicePDF(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.pdfSvc.GenerateInvoice(c.Request.Context(), invoice)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.servePDF(c, http.StatusOK, doc, documentFilename(document.KindInvoice, invoice.InvoiceNumber, time.Now()))
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" form:"status"`
}

// invoiceResponse is the JSON shape for invoices. The overdue flag is
// derived at response time, never stored.
type invoiceResponse struct {
	*invoicedomain.Invoice
	IsOverdue bool `json:"is_overdue"`
}

func newInvoiceResponse(invoice *invoicedomain.Invoice, now time.Time) invoiceResponse {
	return invoiceResponse{Invoice: invoice, IsOverdue: invoice.IsOverdue(now)}
}

func (s *Server) UpdateInvoiceStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req UpdateInvoiceStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	updated, err := s.invoiceSvc.UpdateStatus(c.Request.Context(), userID, c.Param("id"), invoicedomain.Status(req.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newInvoiceResponse(updated, time.Now()))
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.invoiceSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) itemRow(c *gin.Context, kind document.Kind) {
	index := document.NextRowIndex(c.Query(document.CountField(kind.RowPrefix)))
	html, err := s.renderer.ItemRow(kind, index)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) renderHTML(c *gin.Context, status int, renderFn func(render.FormPage) (string, error), page render.FormPage) {
	html, err := renderFn(page)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) servePDF(c *gin.Context, status int, doc io.Reader, filename string) {
	data, err := io.ReadAll(doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(status, "application/pdf", data)
}

// suggestNumber prefills the number field of an empty form. The sequence
// is one past the owner's current document count; the value is only a
// suggestion and the form may submit anything instead.
func (s *Server) suggestNumber(c *gin.Context, userID snowflake.ID, kind document.Kind) (string, error) {
	var seq int64 = 1
	switch kind.Name {
	case document.KindInvoice.Name:
		existing, err := s.invoiceSvc.List(c.Request.Context(), userID)
		if err != nil {
			return "", err
		}
		seq = int64(len(existing)) + 1
	case document.KindLabel.Name:
		existing, err := s.labelSvc.List(c.Request.Context(), userID)
		if err != nil {
			return "", err
		}
		seq = int64(len(existing)) + 1
	}
	return document.FormatNumber(kind.NumberTemplate, time.Now(), seq)
}

// documentFilename stamps the download with the generation date, not
// the document's issue or shipping date.
func documentFilename(kind document.Kind, number string, date time.Time) string {
	return fmt.Sprintf("%s_%s_%s.pdf", kind.FilePrefix, number, date.Format("20060102"))
}

func wantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return accept == "application/json"
}
