package api

import (
	"net/http"

	reqdto "golden-key-funnel/internal/handler/dto/request"
	resdto "golden-key-funnel/internal/handler/dto/response"
	"golden-key-funnel/internal/handler/validation"
	"golden-key-funnel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

type WebinarHandler struct {
	cmds     commands.WebinarCommands
	validate *validatorv10.Validate
}

func NewWebinarHandler(cmds commands.WebinarCommands, validate *validatorv10.Validate) *WebinarHandler {
	return &WebinarHandler{cmds: cmds, validate: validate}
}

// @Summary Register for the webinar
// @Description Forward the registration with affiliate attribution and return the confirmation redirect
// @Tags webinar
// @Accept json
// @Produce json
// @Param request body reqdto.WebinarRegistrationRequest true "Registration"
// @Success 201 {object} resdto.WebinarRegistrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/webinar/registrations [post]
func (h *WebinarHandler) Register(c *gin.Context) {
	var req reqdto.WebinarRegistrationRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToInput(c.Request.URL.Query(), c.Request.Referer()))
	if err != nil {
		abortWithUseCaseError(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWebinarRegistration(result))
}
