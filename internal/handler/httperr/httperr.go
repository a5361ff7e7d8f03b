package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope: {"error":{"message":"..."}}.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
}

type Body struct {
	Message string `json:"message"`
}

func New(status int, msg string) Response {
	return Response{Status: status, Error: Body{Message: msg}}
}

// Sentinel is a constant error for failures raised by the HTTP layer itself.
type Sentinel string

func (e Sentinel) Error() string { return string(e) }

// Abort writes the envelope and records err as a public gin error so the
// cause stays visible to the logging middleware.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := New(status, msg)
	_ = c.Error(gin.Error{Err: err, Type: gin.ErrorTypePublic, Meta: resp})
	c.AbortWithStatusJSON(status, resp)
}
