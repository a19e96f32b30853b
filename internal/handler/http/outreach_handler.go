package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inkwell/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

type OutreachHandler struct {
	outreach usecasecontract.IOutreachUseCase
}

func NewOutreachHandler(outreach usecasecontract.IOutreachUseCase) *OutreachHandler {
	return &OutreachHandler{outreach: outreach}
}

// ShareArticle handles POST /articles/:slug/share/:platform
func (h *OutreachHandler) ShareArticle(c *gin.Context) {
	var path dto.SharePath
	if err := BindURI(c, &path); err != nil {
		return
	}
	var req dto.ShareRequest
	if c.Request.ContentLength != 0 {
		if err := BindAndValidate(c, &req); err != nil {
			return
		}
	}
	platform := usecasecontract.SharePlatform(strings.ToLower(path.Platform))
	link, err := h.outreach.ShareArticle(c.Request.Context(), path.Slug, identity(c), platform, req.ShareWith)
	if err != nil {
		respondError(c, err)
		return
	}
	out := dto.ShareResponse{Platform: string(platform), Link: link}
	if link == "" {
		out.Message = "Article shared with " + req.ShareWith
	}
	SuccessHandler(c, http.StatusOK, out)
}

func (h *OutreachHandler) ReportArticle(c *gin.Context) {
	var req dto.ReportRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	report, err := h.outreach.ReportArticle(c.Request.Context(), c.Param("slug"), identity(c), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToReportResponse(report))
}
