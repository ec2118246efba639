package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"wallapop-bridge/internal/domain/model"
	"wallapop-bridge/internal/usecase"
)

// BridgeHandler maps the HTTP surface onto the usecases and serializes
// results and errors. It holds no state of its own.
type BridgeHandler struct {
	search *usecase.SearchUsecase
	items  *usecase.ItemUsecase
	dir    *usecase.DirectoryUsecase
	chat   *usecase.ChatUsecase
	log    *zap.Logger
}

// NewBridgeHandler creates a new BridgeHandler.
func NewBridgeHandler(
	search *usecase.SearchUsecase,
	items *usecase.ItemUsecase,
	dir *usecase.DirectoryUsecase,
	chat *usecase.ChatUsecase,
	log *zap.Logger,
) *BridgeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BridgeHandler{search: search, items: items, dir: dir, chat: chat, log: log}
}

// Register wires all routes.
func (h *BridgeHandler) Register(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	api := e.Group("/api")
	api.GET("/search", h.searchItems)
	api.GET("/items/:id", h.getItem)
	api.GET("/users/:id", h.getUser)
	api.GET("/categories", h.getCategories)
	api.POST("/hash", h.resolveHash)
	api.POST("/chat", h.requestChat)
	api.POST("/search-and-contact", h.searchAndContact)
}

func (h *BridgeHandler) searchItems(c echo.Context) error {
	query, err := parseSearchQuery(c)
	if err != nil {
		return h.httpError(c, err)
	}
	page, err := h.search.Search(c.Request().Context(), query)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *BridgeHandler) getItem(c echo.Context) error {
	details, err := h.items.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *BridgeHandler) getUser(c echo.Context) error {
	raw, err := h.dir.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (h *BridgeHandler) getCategories(c echo.Context) error {
	raw, err := h.dir.GetCategories(c.Request().Context())
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (h *BridgeHandler) resolveHash(c echo.Context) error {
	var req struct {
		Item string `json:"item"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	hash, chatURL, err := h.chat.Resolve(c.Request().Context(), req.Item)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"hash": hash, "chat_url": chatURL})
}

func (h *BridgeHandler) requestChat(c echo.Context) error {
	var req struct {
		ItemURL string `json:"item_url"`
		Hash    string `json:"hash"`
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	instructions, err := h.chat.RequestChat(c.Request().Context(), req.ItemURL, req.Hash, req.Message)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, instructions)
}

func (h *BridgeHandler) searchAndContact(c echo.Context) error {
	var req struct {
		Keywords   string   `json:"keywords"`
		MinPrice   *int64   `json:"min_price"`
		MaxPrice   *int64   `json:"max_price"`
		Latitude   *float64 `json:"latitude"`
		Longitude  *float64 `json:"longitude"`
		Distance   *int64   `json:"distance"`
		CategoryID string   `json:"category_id"`
		Order      string   `json:"order"`
		Limit      int      `json:"limit"`
		NextPage   string   `json:"next_page"`
		Message    string   `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	query := model.SearchQuery{
		Keywords:   req.Keywords,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Distance:   req.Distance,
		CategoryID: req.CategoryID,
		Order:      req.Order,
		Limit:      req.Limit,
		NextPage:   req.NextPage,
	}
	sheet, err := h.chat.SearchAndContact(c.Request().Context(), query, req.Message)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, sheet)
}

// parseSearchQuery maps the inbound query parameters onto a SearchQuery.
// Malformed numbers are a caller error, not an upstream one.
func parseSearchQuery(c echo.Context) (model.SearchQuery, error) {
	query := model.SearchQuery{
		Keywords:   c.QueryParam("keywords"),
		CategoryID: c.QueryParam("category_id"),
		Order:      c.QueryParam("order"),
		NextPage:   c.QueryParam("next_page"),
	}

	var err error
	if query.MinPrice, err = intParam(c, "min_price"); err != nil {
		return query, err
	}
	if query.MaxPrice, err = intParam(c, "max_price"); err != nil {
		return query, err
	}
	if query.Distance, err = intParam(c, "distance"); err != nil {
		return query, err
	}
	if query.Latitude, err = floatParam(c, "latitude"); err != nil {
		return query, err
	}
	if query.Longitude, err = floatParam(c, "longitude"); err != nil {
		return query, err
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return query, &model.ValidationError{Msg: "limit must be a non-negative integer"}
		}
		query.Limit = limit
	}
	return query, nil
}

func intParam(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &model.ValidationError{Msg: name + " must be an integer"}
	}
	return &v, nil
}

func floatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &model.ValidationError{Msg: name + " must be a number"}
	}
	return &v, nil
}

// httpError maps the domain error taxonomy onto HTTP statuses. Upstream
// failures keep the original status and a body excerpt so callers can see
// what the marketplace actually said.
func (h *BridgeHandler) httpError(c echo.Context, err error) error {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Msg)
	}
	var he *model.HashNotFoundError
	if errors.As(err, &he) {
		return echo.NewHTTPError(http.StatusNotFound, he.Error())
	}
	var ue *model.UpstreamError
	if errors.As(err, &ue) {
		h.log.Warn("upstream failure",
			zap.String("path", c.Request().URL.Path),
			zap.Int("upstream_status", ue.Status))
		return echo.NewHTTPError(http.StatusBadGateway, map[string]any{
			"error":           "upstream request failed",
			"upstream_status": ue.Status,
			"upstream_body":   excerpt(ue.Body, 512),
		})
	}
	h.log.Error("unhandled error", zap.String("path", c.Request().URL.Path), zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func excerpt(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
