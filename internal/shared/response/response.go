package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/shared/apperr"
)

// Response is the success envelope.
// Data is always a list: single results are wrapped in a one-element slice.
type Response struct {
	Status   int         `json:"status"`
	Message  string      `json:"message"`
	Data     interface{} `json:"data"`
	Metadata interface{} `json:"metadata,omitempty"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Status    int         `json:"status"`
	Error     string      `json:"error"`
	Path      string      `json:"path"`
	Timestamp time.Time   `json:"timestamp"`
	Metadata  interface{} `json:"metadata,omitempty"`
}

// Success renders a single item (or nothing when item is nil)
func Success(c *gin.Context, statusCode int, message string, item interface{}) {
	var data interface{}
	if item != nil {
		data = []interface{}{item}
	}
	c.JSON(statusCode, Response{
		Status:  statusCode,
		Message: message,
		Data:    data,
	})
}

// SuccessList renders a list with optional page metadata
func SuccessList(c *gin.Context, statusCode int, message string, items interface{}, metadata interface{}) {
	c.JSON(statusCode, Response{
		Status:   statusCode,
		Message:  message,
		Data:     items,
		Metadata: metadata,
	})
}

// Error renders the error envelope for the current request path
func Error(c *gin.Context, statusCode int, message string, metadata interface{}) {
	resp := ErrorResponse{
		Status:    statusCode,
		Error:     message,
		Path:      c.Request.URL.Path,
		Timestamp: time.Now().UTC(),
	}
	// avoid a typed-nil map turning into "metadata": null
	if m, ok := metadata.(map[string]string); !ok || len(m) > 0 {
		resp.Metadata = metadata
	}
	c.AbortWithStatusJSON(statusCode, resp)
}

// HandleError is the only place where domain errors become status codes
func HandleError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)

	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	Error(c, status, apperr.Message(err), apperr.Details(err))
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, nil)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error", nil)
}
