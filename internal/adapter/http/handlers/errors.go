package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/usecase"
	"eto_pipeline/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errMissingID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

var notFoundCodes = []struct {
	err  error
	code string
}{
	{usecase.ErrOrderNotFound, "ORDER_NOT_FOUND"},
	{usecase.ErrBOQNotFound, "BOQ_NOT_FOUND"},
	{usecase.ErrDrawingNotFound, "DRAWING_NOT_FOUND"},
	{usecase.ErrSalesOrderNotFound, "SALES_ORDER_NOT_FOUND"},
	{usecase.ErrWorkOrderNotFound, "WORK_ORDER_NOT_FOUND"},
	{usecase.ErrJourneyNotFound, "JOURNEY_NOT_FOUND"},
	{usecase.ErrLineItemNotFound, "LINE_ITEM_NOT_FOUND"},
}

// mapError translates use case errors into the HTTP envelope. Refused
// transitions report the unmet condition.
func mapError(err error) *pkg.AppError {
	var te *entities.TransitionError
	switch {
	case errors.As(err, &te):
		return pkg.NewDomainError("INVALID_TRANSITION", te.Op+": "+te.Condition, err, http.StatusConflict)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		for _, nf := range notFoundCodes {
			if errors.Is(err, nf.err) {
				return pkg.NewDomainError(nf.code, err.Error(), err, http.StatusNotFound)
			}
		}
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrConcurrencyConflict):
		return pkg.NewDomainError("CONCURRENCY_CONFLICT", "The resource was modified concurrently, retry the request", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus == http.StatusInternalServerError {
		log.Printf("[http][handler] %s %s failed err=%v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindJSON reports false after writing the 400 response itself.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeAppError(c, errInvalidPayload)
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for endpoints whose body may be omitted. An
// empty body decodes to io.EOF whatever its framing, and leaves dst zero.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		writeAppError(c, errInvalidPayload)
		return false
	}
	return true
}

// pathParam reports false after writing the 400 response itself.
func pathParam(c *gin.Context, name string) (string, bool) {
	v := c.Param(name)
	if v == "" {
		writeAppError(c, errMissingID)
		return "", false
	}
	return v, true
}
