package handler

import (
	"net/http"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/models"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/service"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/util"

	"github.com/gin-gonic/gin"
)

// CategoryHandler exposes category CRUD.
type CategoryHandler struct {
	Categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

type categoryReq struct {
	Name string `json:"name" binding:"required,max=64"`
}

func categoryJSON(cat *models.Category) gin.H {
	return gin.H{
		"id":         cat.ID,
		"name":       cat.Name,
		"is_default": cat.IsDefault,
		"created_at": cat.CreatedAt,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	categories, err := h.Categories.ListActive(user.Email)
	if err != nil {
		util.Fail(c, err)
		return
	}

	items := make([]gin.H, 0, len(categories))
	for i := range categories {
		items = append(items, categoryJSON(&categories[i]))
	}
	util.Success(c, util.Response{
		"categories": items,
	})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	category, err := h.Categories.Create(user.Email, req.Name)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"category": categoryJSON(category),
	})
}

func (h *CategoryHandler) Rename(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	category, err := h.Categories.Rename(user.Email, c.Param("id"), req.Name)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"category": categoryJSON(category),
	})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Categories.SoftDelete(user.Email, c.Param("id")); err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "category removed",
	})
}
