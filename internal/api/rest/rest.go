package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes. signature guards every /api/v1 route.
func SetupRoutes(router *gin.Engine, handler Handler, signature gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/healthz", handler.HealthCheck)

	v1 := router.Group("/api/v1", signature)
	{
		// Chain
		v1.POST("/getBlockHeight", handler.GetBlockHeight)
		v1.POST("/getBalance", handler.GetBalance)
		v1.POST("/getTransaction", handler.GetTransaction)

		// Addresses
		v1.POST("/newAddress", handler.NewAddress)
		v1.POST("/isMine", handler.IsMine)
		v1.POST("/removeAddress", handler.RemoveAddress)

		// Transfers
		v1.POST("/sendTransaction", handler.SendTransaction)
		v1.POST("/setPassphrase", handler.SetPassphrase)

		// Project coin settings
		v1.POST("/setHotAddress", handler.SetHotAddress)
		v1.POST("/setCollectAddress", handler.SetCollectAddress)
		v1.POST("/setFeeAddress", handler.SetFeeAddress)
		v1.POST("/setFee", handler.SetFee)
		v1.POST("/turnStatus", handler.TurnStatus)

		// Coins and projects
		v1.POST("/addToken", handler.AddToken)
		v1.POST("/getProjectInfo", handler.GetProjectInfo)
		v1.POST("/updateProject", handler.UpdateProject)
	}
}
