package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kossaiRedou/EasInvoice/internal/document"
	"github.com/kossaiRedou/EasInvoice/internal/forms"
	"github.com/kossaiRedou/EasInvoice/internal/render"
)

const HeaderLabelID = "X-Label-ID"

func (s *Server) NewLabelForm(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	values := url.Values{}
	if suggested, err := s.suggestNumber(c, userID, document.KindLabel); err == nil {
		values.Set("order_number", suggested)
	}

	page := render.NewFormPage(document.KindLabel, "/labels", "/labels/rows", values, nil)
	s.renderHTML(c, http.StatusOK, s.renderer.LabelForm, page)
}

func (s *Server) LabelRow(c *gin.Context) {
	s.itemRow(c, document.KindLabel)
}

// CreateLabel persists the label and streams its PDF back. The created
// id travels in the X-Label-ID header so a follow-up invoice can be
// prefilled from it without any session state.
func (s *Server) CreateLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	form, err := forms.DecodeLabel(c.Request.PostForm)
	if err != nil {
		if vErr := asFieldErrors(err); vErr != nil {
			page := render.NewFormPage(document.KindLabel, "/labels", "/labels/rows", c.Request.PostForm, vErr)
			s.renderHTML(c, http.StatusBadRequest, s.renderer.LabelForm, page)
			return
		}
		AbortWithError(c, err)
		return
	}

	created, err := s.labelSvc.Create(c.Request.Context(), userID, form)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.pdfSvc.GenerateLabel(c.Request.Context(), created)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := s.labelSvc.MarkPDFGenerated(c.Request.Context(), userID, created.ID.String()); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header(HeaderLabelID, created.ID.String())
	s.servePDF(c, http.StatusCreated, doc, documentFilename(document.KindLabel, created.OrderNumber, time.Now()))
}

func (s *Server) ListLabels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	labels, err := s.labelSvc.List(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels})
}

func (s *Server) GetLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	label, err := s.labelSvc.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, label)
		return
	}
	html, err := s.renderer.LabelPreview(label)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) DownloadLabelPDF(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	label, err := s.labelSvc.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.pdfSvc.GenerateLabel(c.Request.Context(), label)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !label.PDFGenerated {
		if err := s.labelSvc.MarkPDFGenerated(c.Request.Context(), userID, label.ID.String()); err != nil {
			AbortWithError(c, err)
			return
		}
	}
	s.servePDF(c, http.StatusOK, doc, documentFilename(document.KindLabel, label.OrderNumber, time.Now()))
}

func (s *Server) DeleteLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.labelSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
