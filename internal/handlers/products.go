package handlers

import (
	"net/http"
	"strconv"

	"inventory_management/internal/models"
	"inventory_management/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgProductAdded    = "Product added successfully"
	msgQuantityUpdated = "Product quantity updated successfully"
)

type createProductRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100" example:"Desk lamp"`
	Type        string   `json:"type" binding:"required,min=1,max=50" example:"lighting"`
	SKU         string   `json:"sku" binding:"required,min=1,max=50" example:"LMP-001"`
	ImageURL    *string  `json:"image_url" example:"https://example.com/lamp.png"`
	Description *string  `json:"description" example:"LED, warm white"`
	Quantity    *int     `json:"quantity" binding:"required,gte=0" example:"25"`
	Price       *float64 `json:"price" binding:"required,gt=0" example:"19.99"`
}

type createProductResponse struct {
	ProductID int64  `json:"product_id"`
	Message   string `json:"message"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0" example:"40"`
}

type updateQuantityResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
}

type listProductsQuery struct {
	Page    int `form:"page,default=1" binding:"min=1"`
	PerPage int `form:"per_page,default=10" binding:"min=1,max=100"`
}

type listProductsResponse struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
}

// productID parses the :id path parameter, answering 422 when it is not an integer.
func (h *Handler) productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}

// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product"
// @Success      201   {object}  createProductResponse
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /products [post]
// @Security     BearerAuth
func (h *Handler) createProduct(c *gin.Context) {
	var req createProductRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	id, err := h.services.Products.Create(c.Request.Context(), service.ProductInput{
		Name:        req.Name,
		Type:        req.Type,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
	})
	if err != nil {
		h.respondError(c, err, "product_create_failed", "sku", req.SKU)
		return
	}
	h.metrics.ProductCreated()

	c.JSON(http.StatusCreated, createProductResponse{ProductID: id, Message: msgProductAdded})
}

// @Summary      Update product quantity
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Product ID"
// @Param        body  body      updateQuantityRequest  true  "New quantity"
// @Success      200   {object}  updateQuantityResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /products/{id}/quantity [put]
// @Security     BearerAuth
func (h *Handler) updateQuantity(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}
	var req updateQuantityRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	p, err := h.services.Products.UpdateQuantity(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		h.respondError(c, err, "product_update_quantity_failed", "id", id)
		return
	}
	h.metrics.QuantityUpdated()

	c.JSON(http.StatusOK, updateQuantityResponse{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: p.Quantity,
		Message:  msgQuantityUpdated,
	})
}

// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page      query     int  false  "Page number"     minimum(1)  default(1)
// @Param        per_page  query     int  false  "Items per page"  minimum(1)  maximum(100)  default(10)
// @Success      200       {object}  listProductsResponse
// @Failure      401       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Router       /products [get]
// @Security     BearerAuth
func (h *Handler) listProducts(c *gin.Context) {
	var q listProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.validationFailed(c, err)
		return
	}

	page, err := h.services.Products.List(c.Request.Context(), service.Pagination{Page: q.Page, PerPage: q.PerPage})
	if err != nil {
		h.respondError(c, err, "product_list_failed", "page", q.Page, "per_page", q.PerPage)
		return
	}

	products := page.Products
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, listProductsResponse{
		Products: products,
		Total:    page.Total,
		Page:     page.Page,
		PerPage:  page.PerPage,
	})
}

// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  models.Product
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
// @Security     BearerAuth
func (h *Handler) getProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	p, err := h.services.Products.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "product_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Inventory statistics
// @Description  Product count, low-stock count and total stock value.
// @Tags         products
// @Produce      json
// @Success      200  {object}  models.InventoryStats
// @Failure      401  {object}  map[string]string
// @Router       /products/stats [get]
// @Security     BearerAuth
func (h *Handler) productStats(c *gin.Context) {
	st, err := h.services.Products.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "product_stats_failed")
		return
	}
	c.JSON(http.StatusOK, st)
}
