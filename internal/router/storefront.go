package router

import "github.com/gin-gonic/gin"

// storefrontRoutes covers the public site: catalog browsing, quote
// and checkout intake, and job applications.
func (r *Router) storefrontRoutes(engine *gin.Engine) {
	engine.GET("/", r.storefrontHandler.Home)

	shop := engine.Group("/shop")
	{
		shop.GET("", r.storefrontHandler.ListProducts)
		shop.GET("/:slug", r.storefrontHandler.GetProduct)
	}

	engine.GET("/categories", r.storefrontHandler.ListCategories)
	engine.GET("/plans", r.storefrontHandler.ListPlans)

	engine.POST("/quote", r.storefrontHandler.SubmitQuote)
	engine.POST("/checkout", r.storefrontHandler.Checkout)

	engine.POST("/careers/apply", r.careerHandler.Apply)
}
