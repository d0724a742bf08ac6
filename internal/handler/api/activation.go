package api

import (
	"net/http"

	reqdto "golden-key-funnel/internal/handler/dto/request"
	resdto "golden-key-funnel/internal/handler/dto/response"
	"golden-key-funnel/internal/handler/httperr"
	"golden-key-funnel/internal/handler/middleware"
	"golden-key-funnel/internal/handler/validation"
	"golden-key-funnel/internal/pkg/errs"
	"golden-key-funnel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

var errMissingSession = errs.New("session scope missing from request context")

type ActivationHandler struct {
	cmds     commands.ActivationCommands
	validate *validatorv10.Validate
}

func NewActivationHandler(cmds commands.ActivationCommands, validate *validatorv10.Validate) *ActivationHandler {
	return &ActivationHandler{cmds: cmds, validate: validate}
}

// @Summary Submit lead
// @Description Capture first name and email (step one) and unlock the golden key step
// @Tags activation
// @Accept json
// @Produce json
// @Param request body reqdto.LeadRequest true "Lead"
// @Success 200 {object} resdto.LeadResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/activation/lead [post]
func (h *ActivationHandler) SubmitLead(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	var req reqdto.LeadRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	result, err := h.cmds.SubmitLead(c.Request.Context(), ref, req.ToInput(c.Request.URL.Query(), c.Request.Referer()))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to save lead")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeadResult(result))
}

// @Summary Key input changed
// @Description Report the current key field content; arms a debounced validation for keys of 6+ characters
// @Tags activation
// @Accept json
// @Produce json
// @Param request body reqdto.KeyInputRequest true "Key field content"
// @Success 202 {object} resdto.KeyInputResponse
// @Failure 400 {object} httperr.Response
// @Router /api/activation/key [put]
func (h *ActivationHandler) KeyInput(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	var req reqdto.KeyInputRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	decision, err := h.cmds.KeyInput(c.Request.Context(), ref, req.Key)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to process key input")
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromInputDecision(decision))
}

// @Summary Submit key
// @Description Validate the golden key immediately
// @Tags activation
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitKeyRequest true "Golden key"
// @Success 200 {object} resdto.SubmitKeyResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/activation/submit [post]
func (h *ActivationHandler) SubmitKey(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	var req reqdto.SubmitKeyRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	result, err := h.cmds.SubmitKey(c.Request.Context(), ref, req.Key)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to validate key")
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidateResult(result))
}

// @Summary Activation status
// @Tags activation
// @Produce json
// @Success 200 {object} resdto.StatusResponse
// @Router /api/activation/status [get]
func (h *ActivationHandler) Status(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	status, err := h.cmds.Status(c.Request.Context(), ref)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load status")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatus(status))
}

// @Summary Validation console
// @Description Lines of the simulated validation console
// @Tags activation
// @Produce json
// @Success 200 {object} resdto.ConsoleResponse
// @Router /api/activation/console [get]
func (h *ActivationHandler) Console(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	snapshot, err := h.cmds.Console(c.Request.Context(), ref)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load console")
		return
	}
	c.JSON(http.StatusOK, resdto.FromConsoleSnapshot(snapshot))
}

func sessionRef(c *gin.Context) (commands.SessionRef, bool) {
	ref, ok := middleware.GetSessionRef(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSession, "Internal server error", nil)
	}
	return ref, ok
}
