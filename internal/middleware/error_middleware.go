package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velandev/website/internal/app/models/dto"
	"github.com/velandev/website/internal/pkg/apperrors"
)

// HandleAPIError translates service errors into standard API responses.
// Controllers route every non-nil service error through here so the
// status mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	var missingFields *apperrors.MissingFieldsError

	switch {
	case errors.As(err, &missingFields):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, missingFields.Error())
		errorDetail = errorDetail.WithDetails(missingFields.Fields)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		))

	case errors.Is(err, apperrors.ErrJobNotFound), errors.Is(err, apperrors.ErrPageNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid password"),
		))

	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized"),
		))

	// Misconfiguration must stay distinguishable from a wrong password or
	// a normal mail failure, so operators can tell the difference.
	case errors.Is(err, apperrors.ErrAdminNotConfigured), errors.Is(err, apperrors.ErrMailNotConfigured):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNotConfigured, err.Error()),
		))

	case errors.Is(err, apperrors.ErrNotificationFailed):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeMailDispatch, "Failed to send notification email"),
		))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
