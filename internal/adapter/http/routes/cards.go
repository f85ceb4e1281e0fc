package routes

import (
	"gera_wallet/internal/adapter/http/handlers"
	"gera_wallet/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCards = "/card"
)

func addCardRoutes(r gin.IRouter, cardHandler *handlers.CardHandler, maxBodyBytes int64) {
	cards := r.Group(PathCards, middleware.BodyLimit(maxBodyBytes))
	{
		cards.POST("/", cardHandler.CreateCard)
		cards.GET("/:id", cardHandler.GetCard)
	}
}
