package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/cyphera/eth-gas-gateway/internal/apierrors"
	"github.com/cyphera/eth-gas-gateway/internal/middleware"
	"github.com/cyphera/eth-gas-gateway/internal/types/requests"
	"github.com/cyphera/eth-gas-gateway/internal/types/responses"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Use types from the centralized packages
type (
	ErrorResponse       = responses.ErrorResponse
	HealthResponse      = responses.HealthResponse
	GasEstimateRequest  = requests.GasEstimateRequest
	GasEstimateResponse = responses.GasEstimateResponse
)

// sendError writes an error envelope. Classified errors keep their status and
// details; anything else is a 500 carrying the error text.
func sendError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	body := ErrorResponse{Error: err.Error()}

	if apiErr, ok := apierrors.As(err); ok {
		status = apiErr.HTTPStatus()
		body = ErrorResponse{Error: apiErr.Message, Details: apiErr.Details}
	}

	_ = c.Error(err)

	log := middleware.LogWithCorrelationID(c.Request.Context()).With(
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	if status >= http.StatusInternalServerError {
		log.Error(body.Error)
	} else {
		log.Debug(body.Error)
	}

	c.JSON(status, body)
}

// bindError classifies a request binding failure. A failed `required` rule
// means the caller left out functionName.
func bindError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return apierrors.Wrap(apierrors.KindMissingParameters, err, apierrors.MsgMissingParameters)
	}
	if errors.Is(err, io.EOF) {
		return apierrors.Wrap(apierrors.KindInvalidRequest, err, apierrors.PrefixInvalidRequest+"empty body")
	}
	return apierrors.Wrap(apierrors.KindInvalidRequest, err, apierrors.PrefixInvalidRequest+err.Error())
}
