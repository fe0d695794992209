package response

import "github.com/gin-gonic/gin"

var (
	ParamError            = gin.H{"code": 10001, "message": "param error"}
	ParamErrorWithMessage = func(message string) gin.H {
		return gin.H{"code": 10001, "message": message}
	}

	InternalError = gin.H{"code": 10002, "message": "internal error"}

	UpstreamError = func(message string) gin.H {
		return gin.H{"code": 10003, "message": message}
	}

	NotFound            = gin.H{"code": 10004, "message": "not found"}
	NotFoundWithMessage = func(message string) gin.H {
		return gin.H{"code": 10004, "message": message}
	}
)
