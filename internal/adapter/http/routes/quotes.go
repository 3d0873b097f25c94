package routes

import (
	"fleetflow_quotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMultiStateQuotes = "/multi-state-quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathMultiStateQuotes)
	{
		// GET and POST multiplex on the action query/body parameter.
		quotes.GET("", quoteHandler.HandleGet)
		quotes.POST("", quoteHandler.HandlePost)
		quotes.DELETE("", quoteHandler.HandleDelete)
	}
}
