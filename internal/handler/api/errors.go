package api

import (
	"net/http"

	"golden-key-funnel/internal/domain/activation"
	resdto "golden-key-funnel/internal/handler/dto/response"
	"golden-key-funnel/internal/handler/httperr"
	"golden-key-funnel/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use-case sentinels to statuses. Refusals carry the submit
// control the form should show.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrValidationRefused):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Please complete Step 1 first.",
			gin.H{"submit": resdto.FromSubmitControl(activation.SubmitIdle)})
	case errs.Is(err, errs.ErrInvalidEmail):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please enter a valid email address.", nil)
	case errs.Is(err, errs.ErrKeyTooShort):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please enter a valid Golden Key.", nil)
	case errs.Is(err, errs.ErrSuperseded):
		httperr.AbortWithError(c, http.StatusConflict, err, "A newer key is being validated.", nil)
	case errs.Is(err, errs.ErrWebhookDelivery):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Registration failed. Please try again.", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
