package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

const mimeYAML = "application/yaml"

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Negotiated writes YAML when the client asks for it and JSON otherwise.
func Negotiated(c *gin.Context, status int, payload interface{}) {
	format := c.NegotiateFormat(gin.MIMEJSON, gin.MIMEYAML, mimeYAML, "text/yaml")
	if format != gin.MIMEYAML && format != mimeYAML && format != "text/yaml" {
		JSON(c, status, payload)
		return
	}
	out, err := yaml.Marshal(payload)
	if err != nil {
		Error(c, http.StatusInternalServerError, "internal", "failed to encode response", nil)
		return
	}
	c.Data(status, "application/yaml; charset=utf-8", out)
}
