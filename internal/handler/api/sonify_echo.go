package api

import (
	"mime"
	"net/http"

	"FinSound/internal/domain/models"
	"FinSound/internal/service/ratelimit"
	"FinSound/internal/usecase"
	xhttp "FinSound/pkg/http"
	xlogger "FinSound/pkg/logger"
	"FinSound/pkg/util"

	"github.com/labstack/echo/v4"
)

const contentTypeWAV = "audio/wav"

// SonifyEchoHandler serves compositions as JSON and rendered audio as WAV.
type SonifyEchoHandler struct {
	logger *xlogger.Logger
	uc     *usecase.SonifyUseCase
	rl     *ratelimit.Limiter
}

func NewSonifyEchoHandler(logger *xlogger.Logger, uc *usecase.SonifyUseCase, rl *ratelimit.Limiter) *SonifyEchoHandler {
	if logger == nil {
		logger = xlogger.NewNop()
	}
	return &SonifyEchoHandler{logger: logger, uc: uc, rl: rl}
}

func (h *SonifyEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/notes", h.Notes)
	g.GET("/render", h.Render)
}

func (h *SonifyEchoHandler) Notes(c echo.Context) error {
	req := &models.NotesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	comp, err := h.compose(c, req)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, comp)
}

func (h *SonifyEchoHandler) Render(c echo.Context) error {
	if h.rl != nil && !h.rl.Allow(c.RealIP()) {
		h.logger.Warn("render rate limited", xlogger.String("remote", c.RealIP()))
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("too many render requests"))
	}

	req := &models.RenderRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	timbre, err := models.ParseTimbre(req.Instrument)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}
	comp, err := h.compose(c, &req.NotesRequest)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	wav, err := h.uc.Render(c.Request().Context(), comp, timbre, req.Duration)
	if err != nil {
		h.logger.Error("render failed", xlogger.String("symbol", comp.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("render failed").WithError(err))
	}
	disposition := mime.FormatMediaType("inline", map[string]string{"filename": comp.Symbol + ".wav"})
	if disposition != "" {
		c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	}
	return c.Blob(http.StatusOK, contentTypeWAV, wav)
}

var composeErrors = []xhttp.ErrorRule{
	{Target: models.ErrMissingSymbol, New: xhttp.BadRequestError, Message: "symbol or base/target is required"},
	{Target: models.ErrEmptyInput, New: xhttp.NotFoundError, Message: "no price data for the requested range"},
	{Target: models.ErrInvalidDateRange, New: xhttp.BadRequestError, Message: "start must not be after end"},
	{Target: models.ErrNoNotes, New: xhttp.NotFoundError, Message: "no notes could be generated"},
}

// compose parses the date range and maps use case errors onto HTTP errors.
func (h *SonifyEchoHandler) compose(c echo.Context, req *models.NotesRequest) (*usecase.Composition, error) {
	start, _ := util.ParseDate(req.Start)
	end, _ := util.ParseDate(req.End)

	comp, err := h.uc.Compose(c.Request().Context(), usecase.ComposeParams{
		Symbol: req.Ticker(),
		Start:  start,
		End:    end,
	})
	if err == nil {
		return comp, nil
	}
	if appErr := xhttp.MapError(err, composeErrors...); appErr != nil {
		return nil, appErr
	}
	h.logger.Error("compose failed", xlogger.String("symbol", req.Ticker()), xlogger.Error(err))
	return nil, xhttp.InternalError("compose failed").WithError(err)
}
