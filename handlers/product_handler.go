package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/services"
)

type ProductHandler struct {
	Products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{Products: products}
}

// CreateProductRequest
type CreateProductRequest struct {
	Name           string  `json:"name"`
	PdtDescription string  `json:"pdtDescription"`
	BuyPrice       float64 `json:"buyPrice"`
	ImagePath      string  `json:"imagePath"`
	Category       string  `json:"category"`
	ConditionType  string  `json:"conditionType"`
	UserUsername   string  `json:"userUsername"`
}

// RejectProductRequest carries the moderation feedback shown to the owner.
type RejectProductRequest struct {
	Feedback string `json:"feedback"`
}

// PostProduct - POST /api/product/postProduct
func (h *ProductHandler) PostProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	product := models.Product{
		Name:           req.Name,
		PdtDescription: req.PdtDescription,
		BuyPrice:       req.BuyPrice,
		ImagePath:      req.ImagePath,
		Category:       req.Category,
		Status:         models.StatusPending,
		ConditionType:  req.ConditionType,
		UserUsername:   req.UserUsername,
	}

	if err := h.Products.Create(&product); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "product": product})
}

// GetProductByCode - GET /api/product/getProductByCode/:code
func (h *ProductHandler) GetProductByCode(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product code"})
	}

	product, err := h.Products.GetByCode(code)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(product)
}

// GetAllProducts - GET /api/product/getAllProducts/:username
// Marketplace browse view: everyone else's listings.
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	products, err := h.Products.GetAllExcept(c.Params("username"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// GetProductsByUser - GET /api/product/getProductsByUser/:username
func (h *ProductHandler) GetProductsByUser(c *fiber.Ctx) error {
	products, err := h.Products.GetByUser(c.Params("username"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// GetFilteredProducts - GET /api/product/getFilteredProducts
// Query params: username, category, conditionType. Only Approved listings are
// ever returned; Pending and Rejected stay between the owner and the admins.
func (h *ProductHandler) GetFilteredProducts(c *fiber.Ctx) error {
	products, err := h.Products.Filter(
		c.Query("username"),
		c.Query("category"),
		models.StatusApproved,
		c.Query("conditionType"),
	)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// PutProductDetails - PUT /api/product/putProductDetails/:code
func (h *ProductHandler) PutProductDetails(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product code"})
	}

	var updated models.Product
	if err := c.BodyParser(&updated); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	product, err := h.Products.Update(code, &updated)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(product)
}

// DeleteProduct - DELETE /api/product/deleteProduct/:code
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product code"})
	}

	if err := h.Products.Delete(code); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product has been successfully deleted"})
}

// ApproveProduct - PUT /api/product/approveProduct/:code
func (h *ProductHandler) ApproveProduct(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product code"})
	}

	if err := h.Products.Approve(code); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product approved successfully"})
}

// RejectProduct - PUT /api/product/rejectProduct/:code
func (h *ProductHandler) RejectProduct(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product code"})
	}

	var req RejectProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if err := h.Products.Reject(code, req.Feedback); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product rejected successfully"})
}
