package middleware

import (
	"net/http"

	"github.com/08Abhinay/portfolio/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InternalErrorMessage is the body sent for errors that are not APIErrors.
const InternalErrorMessage = "Something went wrong. Please try again later."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		if apiErr, ok := common.AsAPIError(err); ok {
			response := gin.H{"error": apiErr.Message}
			if apiErr.Fields != nil {
				response["fields"] = apiErr.Fields
			}
			c.JSON(apiErr.Status, response)
			return
		}

		LoggerFrom(c).Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": InternalErrorMessage})
	}
}
