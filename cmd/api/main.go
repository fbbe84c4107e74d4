package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-challan-book/internal/handler"
	"go-challan-book/internal/middleware"
	"go-challan-book/internal/model"
	"go-challan-book/internal/repository"
	"go-challan-book/internal/service"
	"go-challan-book/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.Challan{}, &model.ChallanProduct{}, &model.Supplier{}, &model.Company{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	challanRepo := repository.NewChallanRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	companyRepo := repository.NewCompanyRepo(db)

	authService := service.NewAuthService(userRepo)
	challanService := service.NewChallanService(challanRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	companyService := service.NewCompanyService(companyRepo)
	dashService := service.NewDashboardService(challanRepo)

	authHandler := handler.NewAuthHandler(authService)
	challanHandler := handler.NewChallanHandler(challanService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	companyHandler := handler.NewCompanyHandler(companyService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Challan Book v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/refresh", middleware.RequireAuth(userRepo), authHandler.RefreshToken)
	auth.Post("/logout", middleware.RequireAuth(userRepo), authHandler.Logout)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	// All record operations are gated behind a valid session
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)

	// Challans
	protected.Get("/challans", challanHandler.GetChallans)
	protected.Get("/challans/:id", challanHandler.GetChallan)
	protected.Post("/challans", challanHandler.CreateChallan)
	protected.Put("/challans/:id", challanHandler.UpdateChallan)
	protected.Delete("/challans/:id", challanHandler.DeleteChallan)

	// Suppliers
	protected.Get("/suppliers", supplierHandler.GetSuppliers)
	protected.Post("/suppliers", supplierHandler.CreateSupplier)
	protected.Put("/suppliers/:id", supplierHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", supplierHandler.DeleteSupplier)

	// Company profile (singleton per account)
	protected.Get("/company", companyHandler.GetCompany)
	protected.Put("/company", companyHandler.SaveCompany)

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin@example.com / admin123")
	}
}
