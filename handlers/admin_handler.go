package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/config"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/services"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

type AdminHandler struct {
	Admins   *services.AdminService
	Users    *services.UserService
	Products *services.ProductService
	Cfg      *config.Config
}

func NewAdminHandler(admins *services.AdminService, users *services.UserService, products *services.ProductService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{Admins: admins, Users: users, Products: products, Cfg: cfg}
}

// Login - POST /api/admin/login
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	admin, err := h.Admins.Authenticate(req.Username, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	token, err := utils.GenerateToken(admin.Username, h.Cfg.JWTSecret, h.Cfg.JWTExpiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not login"})
	}

	return c.JSON(fiber.Map{
		"token":     token,
		"message":   "Login Successful",
		"username":  admin.Username,
		"firstName": admin.FirstName,
		"lastName":  admin.LastName,
		"contactNo": admin.ContactNo,
		"email":     admin.Email,
	})
}

// AddAdminRequest carries the password explicitly since the Admin model
// never serializes it.
type AddAdminRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ContactNo string `json:"contactNo"`
	Email     string `json:"email"`
}

// AddAdmin - POST /api/admin/addAdmin
func (h *AdminHandler) AddAdmin(c *fiber.Ctx) error {
	var req AddAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	admin := models.Admin{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ContactNo: req.ContactNo,
		Email:     req.Email,
	}

	if err := h.Admins.Add(&admin); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin added successfully",
		"adminId": admin.ID,
	})
}

// GetAdminRecord - GET /api/admin/getAdminRecord/:username
func (h *AdminHandler) GetAdminRecord(c *fiber.Ctx) error {
	admin, err := h.Admins.GetByUsername(c.Params("username"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(admin)
}

// PutAdminRecord - PUT /api/admin/putAdminRecord/:username
func (h *AdminHandler) PutAdminRecord(c *fiber.Ctx) error {
	var details models.Admin
	if err := c.BodyParser(&details); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	admin, err := h.Admins.UpdateDetails(c.Params("username"), &details)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(admin)
}

// DeleteAdminRecord - DELETE /api/admin/deleteAdminRecord/:username
func (h *AdminHandler) DeleteAdminRecord(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.Admins.Delete(username); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Admin " + username + " successfully deleted"})
}

// ChangePassword - PUT /api/admin/changePassword/:username
func (h *AdminHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	admin, err := h.Admins.ChangePassword(c.Params("username"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(admin)
}

// UploadProfilePhoto - POST /api/admin/uploadProfilePhoto/:username
func (h *AdminHandler) UploadProfilePhoto(c *fiber.Ctx) error {
	username := c.Params("username")

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No file selected"})
	}

	fileName, err := saveProfilePhoto(c, file, h.Cfg.UploadDir, username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to upload the file"})
	}

	if _, err := h.Admins.SetProfilePhoto(username, fileName); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Profile photo uploaded successfully",
		"fileName": fileName,
	})
}

// GetAllAdmins - GET /api/admin/getAllAdmins
func (h *AdminHandler) GetAllAdmins(c *fiber.Ctx) error {
	admins, err := h.Admins.GetAll()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(admins)
}

// ViewAllProducts - GET /api/admin/products
func (h *AdminHandler) ViewAllProducts(c *fiber.Ctx) error {
	products, err := h.Products.GetAll()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// GetProductByCode - GET /api/admin/products/:code
func (h *AdminHandler) GetProductByCode(c *fiber.Ctx) error {
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

// UpdateProduct - PUT /api/admin/editproducts/:code
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
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

// DeleteProduct - DELETE /api/admin/deleteproducts/:code
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product code"})
	}

	if err := h.Products.Delete(code); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product has been successfully deleted"})
}

// DeleteProducts - DELETE /api/admin/delete-products
// Accepts a JSON array of product codes and reports how many rows went away.
func (h *AdminHandler) DeleteProducts(c *fiber.Ctx) error {
	var codes []int
	if err := c.BodyParser(&codes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	deleted, err := h.Products.DeleteByCodes(codes)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Products deleted successfully.",
		"deletedCount": deleted,
	})
}

// GetProductsWithUsers - GET /api/admin/products-with-users
func (h *AdminHandler) GetProductsWithUsers(c *fiber.Ctx) error {
	rows, err := h.Products.GetAllWithUsers()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(rows)
}

// GetAllUsers - GET /api/admin/users
func (h *AdminHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.Users.GetAll()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(users)
}

// GetUser - GET /api/admin/users/:username
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.Users.GetByUsername(c.Params("username"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(user)
}

// UpdateUser - PUT /api/admin/users/:username
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var details models.User
	if err := c.BodyParser(&details); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	user, err := h.Users.UpdateDetails(c.Params("username"), &details)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(user)
}

// DeleteUser - DELETE /api/admin/users/:username
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.Users.Delete(username); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "User " + username + " successfully deleted"})
}

// UpdateAccountDetails - PUT /api/admin/updateUserDetails/:role/:username
func (h *AdminHandler) UpdateAccountDetails(c *fiber.Ctx) error {
	role := c.Params("role")
	username := c.Params("username")

	switch role {
	case "admin":
		var details models.Admin
		if err := c.BodyParser(&details); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
		}
		admin, err := h.Admins.UpdateDetails(username, &details)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(admin)
	case "user":
		var details models.User
		if err := c.BodyParser(&details); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
		}
		user, err := h.Users.UpdateDetails(username, &details)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(user)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid role. Use 'admin' or 'user'."})
	}
}

// DeleteAccount - DELETE /api/admin/deleteUser/:role/:username
func (h *AdminHandler) DeleteAccount(c *fiber.Ctx) error {
	role := c.Params("role")
	username := c.Params("username")

	if err := h.Admins.DeleteAccount(role, username); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Account with username '" + username + "' has been deleted successfully.",
	})
}
