package router

import "github.com/gin-gonic/gin"

func (r *Router) authRoutes(engine *gin.Engine) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)

		// Logout and the session probe need a live, unrevoked session.
		protected := auth.Group("")
		protected.Use(r.sessionMw.Gate(), r.sessionMw.RequireAccount())
		{
			protected.POST("/logout", r.authHandler.Logout)
			protected.GET("/me", r.authHandler.Me)
		}
	}
}
