package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/domains/book/service"
	"catalog-backend/internal/shared/pagination"
	"catalog-backend/internal/shared/request"
	"catalog-backend/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/v1/book/findAll?page=0&size=5&sort=publishedDate,desc
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) FindAll(c *gin.Context) {
	page, err := pagination.FromQuery(c, model.SortColumns)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	books, meta, err := h.service.FindAll(c.Request.Context(), page)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessList(c, http.StatusOK, "Found books!", books, meta)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/v1/book/find/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) FindByID(c *gin.Context) {
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

	response.Success(c, http.StatusOK, "Found book!", resp)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/v1/book/save
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Save(c *gin.Context) {
	var req model.BookSaveRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	resp, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Saved book!", resp)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/v1/book/update/:id
// Author list is replaced as a whole
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	var req model.BookSaveRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Updated book!", resp)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/v1/book/delete/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Deleted book!", nil)
}

// RegisterRoutes mounts the book endpoints under rg
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/book")
	{
		books.GET("/findAll", h.FindAll)
		books.GET("/find/:id", h.FindByID)
		books.POST("/save", h.Save)
		books.PUT("/update/:id", h.Update)
		books.DELETE("/delete/:id", h.Delete)
	}
}
