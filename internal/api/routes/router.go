package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/improvemycity/portal-go/docs"
	"github.com/improvemycity/portal-go/internal/api/handlers"
	"github.com/improvemycity/portal-go/internal/api/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	authMiddleware := middleware.NewAuth()

	// --- Public routes ---
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.GET("/api/review", h.Review.List)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Token status check endpoint (no group, but with JWT middleware)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers.AuthStatusHandler)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		// Live complaint feed for approved staff dashboards.
		auth.GET("/ws/complaints", authMiddleware.Staff(), h.WS.StreamComplaints)

		profile := auth.Group("/api/profile")
		{
			profile.GET("", h.User.GetProfile)
			profile.PUT("", h.User.UpdateProfile)
			profile.POST("/send-otp", h.User.SendOTP)
			profile.POST("/verify-otp", h.User.VerifyOTP)
			profile.POST("/update-pic", h.User.UpdateProfilePic)
		}

		complaints := auth.Group("/api/complaints")
		{
			complaints.POST("", h.Complaint.Create)
			complaints.GET("", h.Complaint.ListMine)
			complaints.GET("/employee-category-complaints", authMiddleware.Staff(), h.Complaint.ListForCategory)
			complaints.GET("/summary", authMiddleware.Staff(), h.Complaint.Summary)
			complaints.POST("/assign", authMiddleware.Employee(), h.Complaint.Assign)
			complaints.PUT("/:id/resolve", authMiddleware.Staff(), h.Complaint.Resolve)
		}

		auth.POST("/api/review", h.Review.Create)

		employee := auth.Group("/employee")
		{
			employee.POST("/choose-category", authMiddleware.Staff(), h.Staff.ChooseCategory)
			employee.GET("/sub-employees", authMiddleware.Employee(), h.Staff.ListSubEmployees)
			employee.PUT("/sub-employees/approve/:id", authMiddleware.Employee(), h.Staff.ApproveSubEmployee)
			employee.PUT("/sub-employees/disapprove/:id", authMiddleware.Employee(), h.Staff.DisapproveSubEmployee)
			employee.DELETE("/sub-employees/reject/:id", authMiddleware.Employee(), h.Staff.RejectSubEmployee)

			employee.GET("/subcategory", authMiddleware.Employee(), h.Category.ListOwnSubCategories)
			employee.POST("/subcategory", authMiddleware.Employee(), h.Category.CreateSubCategory)
			employee.PUT("/subcategory/:id", authMiddleware.Employee(), h.Category.UpdateSubCategory)
			employee.DELETE("/subcategory/:id", authMiddleware.Employee(), h.Category.DeleteSubCategory)
		}

		auth.GET("/api/categories", h.Category.ListCategories)
		auth.GET("/api/categories/:id/subcategories", h.Category.ListSubCategories)

		tickets := auth.Group("/api/tickets")
		{
			tickets.POST("/create", h.Ticket.Create)
			tickets.GET("", h.Ticket.ListMine)
			tickets.PUT("/reply/:id", authMiddleware.Admin(), h.Ticket.Reply)
			tickets.DELETE("/:id", h.Ticket.Delete)
		}

		admin := auth.Group("/api/admin")
		admin.Use(authMiddleware.Admin())
		{
			admin.GET("/users", h.User.ListUsers)
			admin.DELETE("/users/:id", h.User.DeleteUser)

			admin.GET("/employees", h.Staff.ListStaff)
			admin.PUT("/employees/approve/:id", h.Staff.ApproveEmployee)
			admin.DELETE("/employees/reject/:id", h.Staff.RejectEmployee)
			admin.PUT("/employees/toggle/:id", h.Staff.ToggleEmployee)

			admin.GET("/category", h.Category.ListCategories)
			admin.POST("/category", h.Category.CreateCategory)
			admin.PUT("/category/:id", h.Category.UpdateCategory)
			admin.DELETE("/category/:id", h.Category.DeleteCategory)

			admin.GET("/tickets", h.Ticket.ListAll)
			admin.GET("/audit/logs", h.Audit.GetAuditLogs)
		}
	}
}
