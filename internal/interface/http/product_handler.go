package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/product-market-api/internal/application"
	"github.com/oksasatya/product-market-api/internal/interface/middleware"
	"github.com/oksasatya/product-market-api/pkg/response"
	"github.com/oksasatya/product-market-api/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

// productRequest deliberately has no owner field; the owner always comes
// from the caller's token.
type productRequest struct {
	ProductName string   `json:"productName" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Image       string   `json:"image" binding:"required"`
}

func (r productRequest) toInput() application.ProductInput {
	return application.ProductInput{
		ProductName: r.ProductName,
		Description: r.Description,
		Price:       *r.Price,
		Image:       r.Image,
	}
}

func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid product id", nil)
		return 0, false
	}
	return id, true
}

// List GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List()
	if err != nil {
		h.Logger.WithError(err).Error("list products failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while fetching products.", err.Error())
		return
	}

	if len(products) == 0 {
		response.Error(c, http.StatusNotFound, "No products found.", []any{})
		return
	}

	response.Success(c, http.StatusOK, "All products are available.", products)
}

// Get GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	p, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found.", nil)
			return
		}
		h.Logger.WithError(err).Error("fetch product failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while fetching the product.", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Product found.", p)
}

// Search GET /products/search?name=...
func (h *ProductHandler) Search(c *gin.Context) {
	name := c.Query("name")
	products, err := h.Svc.SearchByName(name)
	if err != nil {
		h.Logger.WithError(err).Error("search products failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while searching products.", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Products matching search.", products)
}

// Create POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid input data", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(identity.UserID, req.toInput())
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found.", nil)
			return
		}
		h.Logger.WithError(err).Error("create product failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while creating the product.", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Product created successfully.", p)
}

// Update PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	id, ok := productID(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid input data", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Update(identity.UserID, id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProductNotFound):
			response.Error(c, http.StatusNotFound, "Product not found.", nil)
		case errors.Is(err, application.ErrNotOwner):
			response.Error(c, http.StatusForbidden, "You are not authorized to update this product.", nil)
		default:
			h.Logger.WithError(err).Error("update product failed")
			response.Error(c, http.StatusInternalServerError, "An error occurred while updating the product.", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Product updated successfully.", p)
}

// Delete DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	id, ok := productID(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(identity.UserID, id); err != nil {
		switch {
		case errors.Is(err, application.ErrProductNotFound):
			response.Error(c, http.StatusNotFound, "Product not found.", nil)
		case errors.Is(err, application.ErrNotOwner):
			response.Error(c, http.StatusForbidden, "You are not authorized to delete this product.", nil)
		default:
			h.Logger.WithError(err).Error("delete product failed")
			response.Error(c, http.StatusInternalServerError, "An error occurred while deleting the product.", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Product deleted successfully.", nil)
}
