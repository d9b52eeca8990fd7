package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/handlers"
)

// Handlers bundles every controller the router wires up.
type Handlers struct {
	User         *handlers.UserHandler
	Admin        *handlers.AdminHandler
	Product      *handlers.ProductHandler
	Message      *handlers.MessageHandler
	Notification *handlers.NotificationHandler
	GoogleAuth   *handlers.GoogleAuthHandler
	WS           *handlers.WSHandler
}

// SetupRoutes registers the full API surface. The auth middleware guarding
// /api is mounted by the caller before this runs.
func SetupRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api")

	user := api.Group("/user")
	user.Post("/postUserRecord", h.User.Register)
	user.Post("/login", h.User.Login)
	user.Post("/uploadProfilePhoto/:username", h.User.UploadProfilePhoto)
	user.Get("/getUserRecord/:username", h.User.GetUserRecord)
	user.Get("/getUsername/:username", h.User.GetUsername)
	user.Put("/putUserRecord/:username", h.User.PutUserRecord)
	user.Put("/changePassword/:username", h.User.ChangePassword)
	user.Delete("/deleteUserRecord/:username", h.User.DeleteUserRecord)

	admin := api.Group("/admin")
	admin.Post("/login", h.Admin.Login)
	admin.Post("/addAdmin", h.Admin.AddAdmin)
	admin.Get("/getAdminRecord/:username", h.Admin.GetAdminRecord)
	admin.Put("/putAdminRecord/:username", h.Admin.PutAdminRecord)
	admin.Delete("/deleteAdminRecord/:username", h.Admin.DeleteAdminRecord)
	admin.Put("/changePassword/:username", h.Admin.ChangePassword)
	admin.Post("/uploadProfilePhoto/:username", h.Admin.UploadProfilePhoto)
	admin.Get("/getAllAdmins", h.Admin.GetAllAdmins)
	admin.Get("/products", h.Admin.ViewAllProducts)
	admin.Get("/products-with-users", h.Admin.GetProductsWithUsers)
	admin.Get("/products/:code", h.Admin.GetProductByCode)
	admin.Put("/editproducts/:code", h.Admin.UpdateProduct)
	admin.Delete("/deleteproducts/:code", h.Admin.DeleteProduct)
	admin.Delete("/delete-products", h.Admin.DeleteProducts)
	admin.Get("/users", h.Admin.GetAllUsers)
	admin.Get("/users/:username", h.Admin.GetUser)
	admin.Put("/users/:username", h.Admin.UpdateUser)
	admin.Delete("/users/:username", h.Admin.DeleteUser)
	admin.Put("/updateUserDetails/:role/:username", h.Admin.UpdateAccountDetails)
	admin.Delete("/deleteUser/:role/:username", h.Admin.DeleteAccount)

	product := api.Group("/product")
	product.Post("/postProduct", h.Product.PostProduct)
	product.Get("/getProductByCode/:code", h.Product.GetProductByCode)
	product.Get("/getAllProducts/:username", h.Product.GetAllProducts)
	product.Get("/getProductsByUser/:username", h.Product.GetProductsByUser)
	product.Get("/getFilteredProducts", h.Product.GetFilteredProducts)
	product.Put("/putProductDetails/:code", h.Product.PutProductDetails)
	product.Delete("/deleteProduct/:code", h.Product.DeleteProduct)
	product.Put("/approveProduct/:code", h.Product.ApproveProduct)
	product.Put("/rejectProduct/:code", h.Product.RejectProduct)

	messages := api.Group("/messages")
	messages.Post("/", h.Message.SendMessage)
	messages.Get("/conversation/:username1/:username2", h.Message.GetConversation)
	messages.Get("/conversation/:username1/:username2/product/:productCode", h.Message.GetProductConversation)
	messages.Get("/conversations/:username", h.Message.GetConversations)
	messages.Get("/unread/count/:username", h.Message.GetUnreadMessageCount)
	messages.Get("/unread/:username", h.Message.GetUnreadMessages)
	messages.Put("/:messageId/read", h.Message.MarkAsRead)

	notifications := api.Group("/notifications")
	notifications.Get("/user/:username", h.Notification.GetNotificationsForUser)
	notifications.Put("/markAllRead/:username", h.Notification.MarkAllRead)

	auth := api.Group("/auth")
	auth.Post("/google", h.GoogleAuth.GoogleAuth)

	// Live event push; authenticates via ?token= since browsers cannot set
	// headers on WebSocket connects.
	app.Use("/ws", h.WS.UpgradeMiddleware)
	app.Get("/ws", h.WS.Handler())
}
