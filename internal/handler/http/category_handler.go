package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inkwell/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

type CategoryHandler struct {
	categories usecasecontract.ICategoryUseCase
}

func NewCategoryHandler(categories usecasecontract.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	category, err := h.categories.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, dto.ToCategoryResponse(category))
	}
	SuccessHandler(c, http.StatusOK, gin.H{"categories": out})
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categories.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	category, err := h.categories.UpdateCategory(c.Request.Context(), c.Param("slug"), req.Name, identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categories.DeleteCategory(c.Request.Context(), c.Param("slug"), identity(c)); err != nil {
		respondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Category deleted successfully")
}
