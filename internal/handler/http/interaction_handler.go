package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
	"github.com/mikiasgoitom/Catalog/internal/handler/http/dto"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/uuidgen"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

type InteractionHandler struct {
	baseHandler
	reactionUsecase usecasecontract.IReactionUseCase
}

func NewInteractionHandler(reactionUsecase usecasecontract.IReactionUseCase, timeout time.Duration, logger usecasecontract.IAppLogger) *InteractionHandler {
	return &InteractionHandler{
		baseHandler:     baseHandler{timeout: timeout, logger: logger},
		reactionUsecase: reactionUsecase,
	}
}

// ReactToProductHandler toggles a LIKE or DISLIKE of the caller on a product.
func (h *InteractionHandler) ReactToProductHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, msgInvalidReaction)
		return
	}
	reactionType, valid := entity.ParseReactionType(req.Type)
	if !valid {
		ErrorHandler(c, http.StatusBadRequest, msgInvalidReaction)
		return
	}

	productID := c.Param("id")
	if !uuidgen.IsValid(productID) {
		ErrorHandler(c, http.StatusNotFound, "Product not found")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.reactionUsecase.ToggleReaction(ctx, productID, userID, reactionType)
	if err != nil {
		h.respondError(c, "toggle reaction", err)
		return
	}

	SuccessHandler(c, http.StatusOK, "Reaction "+string(result.Status), dto.ToReactionResponse(result))
}
