package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johpaz/apiGestion-api/controllers"
	"github.com/johpaz/apiGestion-api/middlewares"
	"github.com/johpaz/apiGestion-api/services"
)

// Deps holds the constructed services the route handlers depend on.
type Deps struct {
	Alerts    *services.AlertService
	Scheduler *services.SchedulerService
	Hub       *services.RealtimeHub
	Logger    *zap.Logger
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	hives := controllers.NewHiveController(deps.Alerts, deps.Logger)
	swarms := controllers.NewSwarmController(deps.Alerts, deps.Logger)
	nuclei := controllers.NewNucleusController(deps.Alerts, deps.Logger)
	inspections := controllers.NewInspectionController(deps.Alerts, deps.Logger)
	alerts := controllers.NewAlertController(deps.Alerts, deps.Scheduler)
	realtime := controllers.NewRealtimeController(deps.Hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/perfil", controllers.GetProfile)

		apiarios := api.Group("/apiarios")
		{
			apiarios.GET("", controllers.ListApiaries)
			apiarios.GET("/:id", controllers.GetApiary)
			apiarios.POST("", controllers.CreateApiary)
			apiarios.PUT("/:id", controllers.UpdateApiary)
			apiarios.DELETE("/:id", controllers.DeleteApiary)
		}

		colmenas := api.Group("/colmenas")
		{
			colmenas.GET("", hives.List)
			colmenas.GET("/:id", hives.Get)
			colmenas.POST("", hives.Create)
			colmenas.PUT("/:id", hives.Update)
			colmenas.DELETE("/:id", hives.Delete)
		}

		enjambres := api.Group("/enjambres")
		{
			enjambres.GET("", swarms.List)
			enjambres.GET("/:id", swarms.Get)
			enjambres.POST("", swarms.Create)
			enjambres.PUT("/:id", swarms.Update)
			enjambres.DELETE("/:id", swarms.Delete)
		}

		nucleos := api.Group("/nucleos")
		{
			nucleos.GET("", nuclei.List)
			nucleos.GET("/:id", nuclei.Get)
			nucleos.POST("", nuclei.Create)
			nucleos.PUT("/:id", nuclei.Update)
			nucleos.DELETE("/:id", nuclei.Delete)
		}

		inspecciones := api.Group("/inspecciones")
		{
			inspecciones.GET("", inspections.List)
			inspecciones.GET("/:id", inspections.Get)
			inspecciones.POST("", inspections.Create)
		}

		produccion := api.Group("/produccion")
		{
			produccion.GET("", controllers.ListProduction)
			produccion.POST("", controllers.CreateProduction)
			produccion.PUT("/:id", controllers.UpdateProduction)
			produccion.DELETE("/:id", controllers.DeleteProduction)
		}

		insumos := api.Group("/insumos")
		{
			insumos.GET("", controllers.ListSupplies)
			insumos.POST("", controllers.CreateSupply)
			insumos.PUT("/:id", controllers.UpdateSupply)
			insumos.DELETE("/:id", controllers.DeleteSupply)
		}

		finanzas := api.Group("/finanzas")
		{
			finanzas.GET("", controllers.ListFinances)
			finanzas.POST("", controllers.CreateFinance)
			finanzas.PUT("/:id", controllers.UpdateFinance)
			finanzas.DELETE("/:id", controllers.DeleteFinance)
		}

		alertas := api.Group("/alertas")
		{
			alertas.GET("", alerts.List)
			alertas.POST("", alerts.Create)
			alertas.PUT("/:id/leida", alerts.MarkAsRead)
			alertas.POST("/generar", middlewares.RequireAdmin(), alerts.ForceSweep)
		}

		api.GET("/actividad", controllers.ListActivity)
		api.GET("/ws", realtime.Connect)
	}

	return r
}
