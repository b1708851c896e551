package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/author/service"
	"catalog-backend/internal/shared/pagination"
	"catalog-backend/internal/shared/request"
	"catalog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/v1/author/findAll?page=0&size=5&sort=pseudonym,desc
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) FindAll(c *gin.Context) {
	page, err := pagination.FromQuery(c, model.SortColumns)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	authors, meta, err := h.service.FindAll(c.Request.Context(), page)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessList(c, http.StatusOK, "Found authors!", authors, meta)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/v1/author/find/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) FindByID(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	resp, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Found author!", resp)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/v1/author/save
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Save(c *gin.Context) {
	var req model.AuthorSaveRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	resp, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Saved author!", resp)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/v1/author/update/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	var req model.AuthorSaveRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Updated author!", resp)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/v1/author/delete/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Deleted author!", nil)
}

// RegisterRoutes mounts the author endpoints under rg
func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authors := rg.Group("/author")
	{
		authors.GET("/findAll", h.FindAll)
		authors.GET("/find/:id", h.FindByID)
		authors.POST("/save", h.Save)
		authors.PUT("/update/:id", h.Update)
		authors.DELETE("/delete/:id", h.Delete)
	}
}
