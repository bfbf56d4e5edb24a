package handlers

import (
	"log/slog"
	"net/http"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/debugger-rana/library-management-system/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for books and movies.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
	pageSize       int
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade, pageSize int) *catalogHandler {
	return &catalogHandler{catalogService: cs, pageSize: pageSize}
}

// registerCatalogRoutes registers catalog routes. Reads are open to any
// authenticated user, writes require the admin role.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade, pageSize int) {
	h := newCatalogHandler(catalogService, pageSize)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	catalog := rg.Group("/catalog")
	{
		catalog.GET("", h.listItems)
		catalog.GET("/search", h.searchItems)
		catalog.GET("/:id", h.getItem)
		catalog.POST("", adminOnly, h.createItem)
		catalog.PUT("/:id", adminOnly, h.updateItem)
		catalog.DELETE("/:id", adminOnly, h.deleteItem)
	}
}

// createItem godoc
// @Summary Add a catalog item
// @Description Adds a book or movie. Copies default to 1 and availability to the total.
// @Tags catalog
// @Accept json
// @Produce json
// @Param item body dto.CreateCatalogItemRequest true "Item details"
// @Success 201 {object} dto.CatalogItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Serial number already exists"
// @Failure 500 {object} ErrorResponse "Failed to create item"
// @Security BearerAuth
// @Router /catalog [post]
func (h *catalogHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	creatorID, ok := actorID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), req, creatorID)
	if err != nil {
		handleError(c, err, "Failed to create catalog item")
		return
	}

	logger.Info("Catalog item created", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToCatalogItemResponse(item))
}

// getItem godoc
// @Summary Get a catalog item
// @Tags catalog
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.CatalogItemResponse
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve item"
// @Security BearerAuth
// @Router /catalog/{id} [get]
func (h *catalogHandler) getItem(c *gin.Context) {
	item, err := h.catalogService.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "Failed to retrieve catalog item")
		return
	}
	c.JSON(http.StatusOK, dto.ToCatalogItemResponse(item))
}

// listItems godoc
// @Summary List catalog items
// @Description Lists items newest first
// @Tags catalog
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListCatalogItemsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Failed to list items"
// @Security BearerAuth
// @Router /catalog [get]
func (h *catalogHandler) listItems(c *gin.Context) {
	var params dto.ListCatalogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	items, err := h.catalogService.ListItems(c.Request.Context(), pageLimit(c, params.Limit, h.pageSize), params.Offset)
	if err != nil {
		handleError(c, err, "Failed to list catalog items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCatalogItemsResponse(items))
}

// searchItems godoc
// @Summary Search the catalog
// @Description Case-insensitive match on title, author and category; exact serial number; optional kind.
// @Tags catalog
// @Produce json
// @Param title query string false "Title contains"
// @Param author query string false "Author contains"
// @Param category query string false "Category contains"
// @Param serialNo query string false "Exact serial number"
// @Param kind query string false "book or movie"
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListCatalogItemsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Failed to search items"
// @Security BearerAuth
// @Router /catalog/search [get]
func (h *catalogHandler) searchItems(c *gin.Context) {
	var params dto.SearchCatalogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	params.Limit = pageLimit(c, params.Limit, h.pageSize)

	items, err := h.catalogService.SearchItems(c.Request.Context(), params)
	if err != nil {
		handleError(c, err, "Failed to search catalog items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCatalogItemsResponse(items))
}

// updateItem godoc
// @Summary Update a catalog item
// @Description Edits metadata. Changing totalCopies shifts availableCopies by the same amount.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.UpdateCatalogItemRequest true "Fields to update"
// @Success 200 {object} dto.CatalogItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to update item"
// @Security BearerAuth
// @Router /catalog/{id} [put]
func (h *catalogHandler) updateItem(c *gin.Context) {
	var req dto.UpdateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	updaterID, ok := actorID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		handleError(c, err, "Failed to update catalog item")
		return
	}
	c.JSON(http.StatusOK, dto.ToCatalogItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a catalog item
// @Tags catalog
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 409 {object} ErrorResponse "Item has loans or requests"
// @Failure 500 {object} ErrorResponse "Failed to delete item"
// @Security BearerAuth
// @Router /catalog/{id} [delete]
func (h *catalogHandler) deleteItem(c *gin.Context) {
	if err := h.catalogService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "Failed to delete catalog item")
		return
	}
	c.Status(http.StatusNoContent)
}
