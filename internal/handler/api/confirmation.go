package api

import (
	"net/http"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/funnel"
	resdto "golden-key-funnel/internal/handler/dto/response"
	"golden-key-funnel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConfirmationHandler struct {
	q queries.ConfirmationQueries
}

func NewConfirmationHandler(q queries.ConfirmationQueries) *ConfirmationHandler {
	return &ConfirmationHandler{q: q}
}

// @Summary Confirmation page
// @Description Personalized confirmation header and, for valid keys, the VIP account claim link
// @Tags confirmation
// @Produce json
// @Param fullname query string false "Full name"
// @Param key_valid query string false "Carried key flag"
// @Param register_url query string false "Fallback claim URL"
// @Success 200 {object} resdto.ConfirmationResponse
// @Router /api/confirmation [get]
func (h *ConfirmationHandler) Get(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}

	in := queries.ConfirmationInput{
		FullName: c.Query(funnel.ParamFullName),
		KeyValid: c.Query(funnel.ParamKeyValid),
		Scope: activation.Scope{
			SessionID:        ref.SessionID,
			VisitorID:        ref.VisitorID,
			RegisterURLParam: c.Query(funnel.ParamRegisterURL),
		},
	}
	view, err := h.q.GetConfirmation(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load confirmation")
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmationView(view))
}
