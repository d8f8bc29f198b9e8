package router

import (
	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/internal/constants"
)

// panelRoutes covers the back office. The session gate verifies the
// token and enforces role path restrictions before the account check
// hits the database.
func (r *Router) panelRoutes(engine *gin.Engine) {
	panel := engine.Group(constants.PanelPrefix)
	panel.Use(r.sessionMw.Gate(), r.sessionMw.RequireAccount())
	{
		orders := panel.Group("/orders")
		{
			orders.GET("", r.orderHandler.List)
			orders.GET("/:id", r.orderHandler.Get)
			orders.PUT("/:id/status", r.orderHandler.SetStatus)
			orders.PUT("/:id/assign", r.orderHandler.Assign)
		}

		careers := panel.Group("/careers")
		{
			careers.GET("", r.careerHandler.List)
			careers.PUT("/:id/reviewed", r.careerHandler.SetReviewed)
		}

		// Everything below is redirected away from restricted roles
		// by the session gate.
		panel.GET("/customers", r.orderHandler.Customers)

		products := panel.Group("/products")
		{
			products.GET("", r.productHandler.List)
			products.GET("/:id", r.productHandler.Get)
			products.POST("", r.productHandler.Create)
			products.PUT("/:id", r.productHandler.Update)
			products.POST("/:id/images", r.productHandler.UploadImage)
			products.DELETE("/:id/images/:imageId", r.productHandler.DeleteImage)
			products.DELETE("/:id", r.productHandler.Delete)
		}

		categories := panel.Group("/categories")
		{
			categories.GET("", r.categoryHandler.List)
			categories.POST("", r.categoryHandler.Create)
			categories.PUT("/:id", r.categoryHandler.Update)
			categories.POST("/:id/image", r.categoryHandler.UploadImage)
			categories.DELETE("/:id", r.categoryHandler.Delete)
		}

		plans := panel.Group("/plans")
		{
			plans.GET("", r.planHandler.List)
			plans.POST("", r.planHandler.Create)
			plans.PUT("/:id", r.planHandler.Update)
			plans.DELETE("/:id", r.planHandler.Delete)
		}

		staff := panel.Group("/staff")
		{
			staff.GET("", r.userHandler.List)
			staff.GET("/:id", r.userHandler.Get)
			staff.POST("", r.userHandler.Create)
			staff.PUT("/:id", r.userHandler.Update)
			staff.PUT("/:id/password", r.userHandler.UpdatePassword)
			staff.PUT("/:id/active", r.userHandler.SetActive)
			staff.DELETE("/:id", r.userHandler.Delete)
		}
	}
}
