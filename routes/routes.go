package routes

import (
	"saintjolie-backend/config"
	"saintjolie-backend/controllers"
	"saintjolie-backend/models"
	"saintjolie-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		professional := utils.RequireRoles(string(models.RoleProfessional))
		staff := utils.RequireRoles(string(models.RoleProfessional), string(models.RoleStudent))

		// User administration
		users := api.Group("/users", professional)
		{
			users.GET("", controllers.GetUsers)
			users.POST("", controllers.CreateUser)
			users.PUT("/:id", controllers.UpdateUser)
			users.DELETE("/:id", controllers.DeleteUser)
			users.POST("/:id/toggle-active", controllers.ToggleUserActive)
			users.PUT("/:id/password", controllers.SetUserPassword)
		}

		// Service catalog
		serviceTypes := api.Group("/service-types")
		{
			serviceTypes.GET("", controllers.GetServiceTypes)
			serviceTypes.POST("", professional, controllers.CreateServiceType)
			serviceTypes.PUT("/:id", professional, controllers.UpdateServiceType)
			serviceTypes.DELETE("/:id", professional, controllers.DeleteServiceType)
		}

		// Salons, their schedules and offerings
		salons := api.Group("/salons")
		{
			salons.GET("", controllers.GetSalons)
			salons.GET("/:id", controllers.GetSalon)
			salons.GET("/:id/availability", controllers.GetAvailability)
			salons.GET("/:id/offerings", controllers.GetOfferings)
			salons.POST("/:id/appointments", controllers.BookAppointment)

			salons.POST("", professional, controllers.CreateSalon)
			salons.PUT("/:id", professional, controllers.UpdateSalon)
			salons.DELETE("/:id", professional, controllers.DeleteSalon)
			salons.GET("/:id/appointments/past", professional, controllers.GetPastAppointments)

			salons.POST("/:id/offerings", professional, controllers.CreateOffering)
			salons.PUT("/:id/offerings/:offeringId", professional, controllers.UpdateOffering)
			salons.DELETE("/:id/offerings/:offeringId", professional, controllers.DeleteOffering)

			// Regular weekly windows
			salons.GET("/:id/windows", professional, controllers.GetRegularWindows)
			salons.POST("/:id/windows", professional, controllers.CreateRegularWindow)
			salons.PUT("/:id/windows/:windowId", professional, controllers.UpdateRegularWindow)
			salons.DELETE("/:id/windows/:windowId", professional, controllers.DeleteRegularWindow)

			// Special days and their windows
			salons.GET("/:id/special-days", professional, controllers.GetSpecialDays)
			salons.POST("/:id/special-days", professional, controllers.CreateSpecialDay)
			salons.PUT("/:id/special-days/:dayId", professional, controllers.UpdateSpecialDay)
			salons.DELETE("/:id/special-days/:dayId", professional, controllers.DeleteSpecialDay)
			salons.GET("/:id/special-days/:dayId/windows", professional, controllers.GetSpecialWindows)
			salons.POST("/:id/special-days/:dayId/windows", professional, controllers.CreateSpecialWindow)
			salons.PUT("/:id/special-days/:dayId/windows/:windowId", professional, controllers.UpdateSpecialWindow)
			salons.DELETE("/:id/special-days/:dayId/windows/:windowId", professional, controllers.DeleteSpecialWindow)

			// Holiday closures over a date range
			salons.POST("/:id/vacation-periods", professional, controllers.CreateVacationPeriod)
			salons.DELETE("/:id/vacation-periods", professional, controllers.DeleteVacationPeriod)
		}

		// Appointments
		appointments := api.Group("/appointments")
		{
			appointments.GET("/mine", controllers.GetMyAppointments)
			appointments.GET("", staff, controllers.GetAllAppointments)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
			appointments.PATCH("/:id/status", staff, controllers.UpdateAppointmentStatus)
		}
	}

	return r
}
