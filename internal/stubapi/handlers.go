// Package stubapi is a local stand-in for the deployed Khet Connect REST API,
// used for development and the end-to-end tests. Routes, verbs, field names
// and the {success, data, message} envelope match the real service, including
// its misspellings ("catagory", the "Refress_token" key).
package stubapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/khetconnect/admin-panel/internal/hash"
)

type Handler struct {
	DB        *gorm.DB
	JWTSecret []byte
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

func fail(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"success": false, "message": message})
}

func (h *Handler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	var op Operator
	if err := h.DB.Where("email = ?", email).First(&op).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	}
	if !hash.CheckPassword(op.PasswordHash, password) {
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	}

	access, err := signAccessToken(op.Email, h.JWTSecret)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not create token")
	}
	refresh, err := signRefreshToken(op.Email, h.JWTSecret)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not create token")
	}

	return ok(c, echo.Map{
		"Access_token":  access,
		"Refress_token": refresh,
	})
}

func (h *Handler) ListFarmers(c echo.Context) error {
	var farmers []Farmer
	if err := h.DB.Order("id ASC").Find(&farmers).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, farmers)
}

func (h *Handler) AddFarmer(c echo.Context) error {
	farmer := Farmer{
		ExtID:     newExtID(),
		Name:      c.FormValue("name"),
		Phone:     c.FormValue("phone"),
		Address:   c.FormValue("address"),
		LandSize:  c.FormValue("landSize"),
		Crops:     c.FormValue("crops"),
		CreatedAt: time.Now(),
	}
	if farmer.Name == "" || farmer.Phone == "" || farmer.Address == "" {
		return fail(c, http.StatusBadRequest, "name, phone and address are required")
	}
	if err := h.DB.Create(&farmer).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, farmer)
}

func (h *Handler) DeleteFarmer(c echo.Context) error {
	id := c.FormValue("id")
	result := h.DB.Where("ext_id = ?", id).Delete(&Farmer{})
	if result.Error != nil {
		return fail(c, http.StatusInternalServerError, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "farmer not found")
	}
	return ok(c, echo.Map{"deleted": id})
}

func (h *Handler) ListProducts(c echo.Context) error {
	var products []Product
	if err := h.DB.Order("id ASC").Find(&products).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, products)
}

func (h *Handler) AddProduct(c echo.Context) error {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price <= 0 {
		return fail(c, http.StatusBadRequest, "price must be a positive number")
	}
	product := Product{
		ExtID:       newExtID(),
		ProductName: c.FormValue("product_name"),
		Description: c.FormValue("description"),
		Price:       price,
		ProductImg:  c.FormValue("product_img"),
		Catagory:    c.FormValue("catagory"),
		CreatedAt:   time.Now(),
	}
	if product.ProductName == "" || product.Description == "" {
		return fail(c, http.StatusBadRequest, "product_name and description are required")
	}
	if err := h.DB.Create(&product).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, product)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	id := c.FormValue("productId")
	result := h.DB.Where("ext_id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return fail(c, http.StatusInternalServerError, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "product not found")
	}
	return ok(c, echo.Map{"deleted": id})
}

// ListCheckouts answers the odd PATCH-with-query list call the deployed API
// uses for orders.
func (h *Handler) ListCheckouts(c echo.Context) error {
	if c.QueryParam("role") != "superadmin" {
		return fail(c, http.StatusForbidden, "not enough rights")
	}
	var checkouts []Checkout
	if err := h.DB.Order("id ASC").Find(&checkouts).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, checkouts)
}

func (h *Handler) SetCheckoutStatus(c echo.Context) error {
	id := c.FormValue("checkoutId")
	status := c.FormValue("paymentStatus")
	if id == "" || status == "" {
		return fail(c, http.StatusBadRequest, "checkoutId and paymentStatus are required")
	}
	result := h.DB.Model(&Checkout{}).Where("ext_id = ?", id).Update("payment_status", status)
	if result.Error != nil {
		return fail(c, http.StatusInternalServerError, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "checkout not found")
	}
	return ok(c, echo.Map{"updated": id})
}

// RequireBearer guards the privileged routes.
func (h *Handler) RequireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := validateBearer(c.Request().Header.Get("Authorization"), h.JWTSecret); err != nil {
			return fail(c, http.StatusUnauthorized, "unauthorized")
		}
		return next(c)
	}
}

func Register(e *echo.Echo, h *Handler) {
	v1 := e.Group("/api/v1")

	v1.POST("/user/login", h.Login)

	v1.GET("/farmer/all", h.ListFarmers)
	v1.POST("/farmer/add", h.AddFarmer)
	v1.DELETE("/farmer/delete", h.DeleteFarmer, h.RequireBearer)

	v1.GET("/product/get", h.ListProducts)
	v1.POST("/product/add", h.AddProduct)
	v1.DELETE("/product/delete", h.DeleteProduct, h.RequireBearer)

	v1.PATCH("/checkout/getcheckout", h.ListCheckouts)
	v1.PATCH("/checkout/status", h.SetCheckoutStatus, h.RequireBearer)
}
