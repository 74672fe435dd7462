package response

import "github.com/gin-gonic/gin"

// FormStatus is the body returned by the public form endpoints
// (contact, newsletter), which keep the {success, message} wire shape.
type FormStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Outcome string `json:"outcome,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func Status(c *gin.Context, status int, body FormStatus) {
	c.JSON(status, body)
}
