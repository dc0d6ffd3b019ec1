package handler

import (
	"net/http"
	"strconv"

	md "github.com/bookworm-labs/bookreview-service/pkg/middleware"

	"github.com/bookworm-labs/bookreview-service/internal/errs"
	"github.com/bookworm-labs/bookreview-service/internal/model"
	"github.com/bookworm-labs/bookreview-service/pkg/validate"
	_ "github.com/bookworm-labs/bookreview-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

type Handler struct {
	svc BookReviewService
	cfg Config
	log *zap.Logger
}

func New(svc BookReviewService, cfg Config, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		cfg: cfg,
		log: log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.CreateBook)
	api.GET("/books/:id", h.GetBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.GET("/books/:id/reviews", h.ListReviews)
	api.POST("/books/:id/reviews", h.CreateReview)
	api.GET("/books/:id/reviews/stats", h.ReviewStats)

	api.GET("/reviews/:id", h.GetReview)
	api.PUT("/reviews/:id", h.UpdateReview)
	api.DELETE("/reviews/:id", h.DeleteReview)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// mapError translates domain sentinels to HTTP statuses. Anything unexpected
// is logged and surfaced as a generic 500.
func (h *Handler) mapError(op string, err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.log.Error(op, zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}

// idParam rejects only non-integer ids; zero and negative ids run the
// lookup and surface as not found.
func idParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func (h *Handler) pagination(c echo.Context) (model.Pagination, error) {
	p := model.Pagination{Page: 1, Size: h.cfg.DefaultPageSize}
	if pageParam := c.QueryParam("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil || page < 1 {
			return p, echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
		p.Page = page
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		size, err := strconv.Atoi(sizeParam)
		if err != nil || size < 1 || size > h.cfg.MaxPageSize {
			return p, echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
		p.Size = size
	}
	return p, nil
}

func (h *Handler) ListBooks(c echo.Context) error {
	p, err := h.pagination(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListBooks(c.Request().Context(), c.QueryParam("search"), p)
	if err != nil {
		return h.mapError("ListBooks", err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	book, err := h.svc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.mapError("GetBook", err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.svc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.mapError("CreateBook", err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.svc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return h.mapError("UpdateBook", err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.mapError("DeleteBook", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListReviews(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	p, err := h.pagination(c)
	if err != nil {
		return err
	}
	var minRating *float64
	if ratingParam := c.QueryParam("rating_filter"); ratingParam != "" {
		rating, err := strconv.ParseFloat(ratingParam, 64)
		if err != nil || rating < 1.0 || rating > 5.0 {
			return echo.NewHTTPError(http.StatusBadRequest, "rating_filter is invalid")
		}
		minRating = &rating
	}
	list, err := h.svc.ListReviews(c.Request().Context(), id, minRating, p)
	if err != nil {
		return h.mapError("ListReviews", err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetReview(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	review, err := h.svc.GetReview(c.Request().Context(), id)
	if err != nil {
		return h.mapError("GetReview", err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *Handler) CreateReview(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	review, err := h.svc.CreateReview(c.Request().Context(), id, req)
	if err != nil {
		return h.mapError("CreateReview", err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *Handler) UpdateReview(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	review, err := h.svc.UpdateReview(c.Request().Context(), id, req)
	if err != nil {
		return h.mapError("UpdateReview", err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *Handler) DeleteReview(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteReview(c.Request().Context(), id); err != nil {
		return h.mapError("DeleteReview", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ReviewStats(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	stats, err := h.svc.ReviewStats(c.Request().Context(), id)
	if err != nil {
		return h.mapError("ReviewStats", err)
	}
	return c.JSON(http.StatusOK, stats)
}
