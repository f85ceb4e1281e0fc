package handlers

import (
	"errors"
	"net/http"

	"gera_wallet/internal/adapter/http/dto/request"
	"gera_wallet/internal/adapter/http/dto/response"
	"gera_wallet/internal/domain/entities"
	"gera_wallet/internal/usecase"
	"gera_wallet/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgCreateCardFailed = "Erro ao criar novo cartão."
	msgGetCardFailed    = "Erro ao retornar cartão existente."
	msgRouteNotFound    = "Endpoint não encontrado."

	codePayloadTooLarge = "PayloadTooLarge"
)

// CardHandler handles HTTP requests for wallet cards.
type CardHandler struct {
	usecase usecase.IPassUseCase
	logger  *zap.Logger
}

func NewCardHandler(uc usecase.IPassUseCase, logger *zap.Logger) *CardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CardHandler{usecase: uc, logger: logger}
}

// CreateCard generates a new pass from a card record.
//
// @Summary      Generate a wallet pass
// @Description  Validates the card record, renders and signs a pass and stores it for later download.
// @Tags         cards
// @Accept       json
// @Produce      application/vnd.apple.pkpass
// @Param        card  body      request.CardRequest  true  "Card record"
// @Success      200   {file}    binary
// @Failure      400   {object}  pkg.HTTPError
// @Router       /card/ [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	body, err := c.GetRawData()
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.fail(c, pkg.NewDomainError(codePayloadTooLarge, msgCreateCardFailed, err, http.StatusBadRequest))
		return
	}
	if err != nil {
		h.fail(c, mapCardError(msgCreateCardFailed, err))
		return
	}

	raw, err := request.ParseCardRecord(body)
	if err != nil {
		h.logger.Info("[card][handler] unreadable body", zap.Error(err))
		if errors.Is(err, entities.ErrRecordNotObject) {
			err = &usecase.MissingFieldsError{Fields: usecase.CommonRequiredFields()}
		}
		h.fail(c, mapCardError(msgCreateCardFailed, err))
		return
	}

	stored, err := h.usecase.Generate(c.Request.Context(), raw)
	if err != nil {
		h.fail(c, mapCardError(msgCreateCardFailed, err))
		return
	}

	writePass(c, response.FromStoredPass(stored))
}

// GetCard returns a previously generated pass.
//
// @Summary      Download an existing wallet pass
// @Tags         cards
// @Produce      application/vnd.apple.pkpass
// @Param        id   path      string  true  "Pass serial number"
// @Success      200  {file}    binary
// @Failure      400  {object}  pkg.HTTPError
// @Router       /card/{id} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	id := c.Param("id")

	stored, err := h.usecase.GetBySerialNumber(c.Request.Context(), id)
	if err != nil {
		h.fail(c, mapCardError(msgGetCardFailed, err))
		return
	}

	writePass(c, response.FromStoredPass(stored))
}

// NotFound answers every unknown route.
func NotFound(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("NotFound", msgRouteNotFound, http.StatusNotFound)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writePass(c *gin.Context, p response.PassDownload) {
	c.Header("Content-Disposition", p.ContentDisposition)
	c.Data(http.StatusOK, p.ContentType, p.Body)
}

func (h *CardHandler) fail(c *gin.Context, appErr *pkg.AppError) {
	h.logger.Warn("[card][handler] request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("code", appErr.Code),
		zap.Error(appErr.Err),
	)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCardError keeps every failure a 400; unclassified errors expose their message as the code.
func mapCardError(message string, err error) *pkg.AppError {
	var missing *usecase.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		return pkg.NewDomainError(usecase.ErrMissingValueOnRequest.Error(), message, err, http.StatusBadRequest).WithFields(missing.Fields)
	case errors.Is(err, usecase.ErrMissingValueOnRequest):
		return pkg.NewDomainError(usecase.ErrMissingValueOnRequest.Error(), message, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCardType):
		return pkg.NewDomainError(usecase.ErrInvalidCardType.Error(), message, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageRequestAborted):
		return pkg.NewDomainError(usecase.ErrImageRequestAborted.Error(), message, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPassNotFound):
		return pkg.NewDomainError(usecase.ErrPassNotFound.Error(), message, err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError(err.Error(), message, err, http.StatusBadRequest)
	}
}
