package http

import (
	"github.com/gin-gonic/gin"
)

// validator is implemented by request DTOs that check their own fields.
type validator interface {
	Validate() error
}

// decodeRequest binds the JSON body into a new T and runs its Validate
// method when it has one.
func decodeRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if v, ok := any(&req).(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}
