package rest

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/sanctum-app/sanctum/internal/domain"
	"github.com/sanctum-app/sanctum/internal/present/rest/presenter"
	"github.com/sanctum-app/sanctum/internal/usecase"
)

type Handler struct {
	feed      *usecase.FeedUsecase
	library   *usecase.LibraryUsecase
	highlight *usecase.HighlightUsecase
	reading   *usecase.ReadingUsecase
	profile   *usecase.ProfileUsecase
}

func NewHandler(
	feed *usecase.FeedUsecase,
	library *usecase.LibraryUsecase,
	highlight *usecase.HighlightUsecase,
	reading *usecase.ReadingUsecase,
	profile *usecase.ProfileUsecase,
) *Handler {
	return &Handler{
		feed:      feed,
		library:   library,
		highlight: highlight,
		reading:   reading,
		profile:   profile,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.handleHealth)
	e.GET("/articles/feed", h.handleFeed)
	e.POST("/articles/save", h.handleSaveArticle)
	e.GET("/articles/saved", h.handleSavedArticles)
	e.POST("/highlights/add", h.handleAddHighlight)
	e.GET("/highlights/:articleId", h.handleHighlights)
	e.POST("/reading/increment", h.handleIncrementReading)
	e.GET("/profile/:userId", h.handleProfile)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func userIDOrDefault(c echo.Context) string {
	userID := c.QueryParam("userId")
	if userID == "" {
		userID = domain.DefaultUserID
	}
	return userID
}

func (h *Handler) handleFeed(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.feed.GetFeed(ctx, userIDOrDefault(c))
	if err != nil {
		return presenter.InternalError(c, "Failed to fetch feed", err)
	}
	return presenter.OK(c, result)
}

type saveArticleRequest struct {
	ArticleID string            `json:"articleId"`
	UserID    string            `json:"userId"`
	Article   domain.OpenRecord `json:"article"`
}

func (h *Handler) handleSaveArticle(c echo.Context) error {
	ctx := c.Request().Context()

	var req saveArticleRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	err := h.library.SaveArticle(ctx, req.UserID, req.ArticleID, req.Article)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return presenter.BadRequestMessage(c, "Missing required fields")
		}
		return presenter.InternalError(c, "Failed to save article", err)
	}
	return presenter.OK(c, echo.Map{"success": true})
}

func (h *Handler) handleSavedArticles(c echo.Context) error {
	ctx := c.Request().Context()

	articles, err := h.library.SavedArticles(ctx, userIDOrDefault(c))
	if err != nil {
		return presenter.InternalError(c, "Failed to fetch saved articles", err)
	}
	return presenter.OK(c, echo.Map{"articles": articles})
}

type addHighlightRequest struct {
	ArticleID string            `json:"articleId"`
	UserID    string            `json:"userId"`
	Highlight domain.OpenRecord `json:"highlight"`
}

func (h *Handler) handleAddHighlight(c echo.Context) error {
	ctx := c.Request().Context()

	var req addHighlightRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	highlights, err := h.highlight.AddHighlight(ctx, req.UserID, req.ArticleID, req.Highlight)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return presenter.BadRequestMessage(c, "Missing required fields")
		}
		return presenter.InternalError(c, "Failed to add highlight", err)
	}
	return presenter.OK(c, echo.Map{"success": true, "highlights": highlights})
}

func (h *Handler) handleHighlights(c echo.Context) error {
	ctx := c.Request().Context()

	highlights, err := h.highlight.Highlights(ctx, userIDOrDefault(c), c.Param("articleId"))
	if err != nil {
		return presenter.InternalError(c, "Failed to fetch highlights", err)
	}
	return presenter.OK(c, echo.Map{"highlights": highlights})
}

type incrementReadingRequest struct {
	UserID string `json:"userId"`
}

func (h *Handler) handleIncrementReading(c echo.Context) error {
	ctx := c.Request().Context()

	var req incrementReadingRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	count, err := h.reading.Increment(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return presenter.BadRequestMessage(c, "Missing userId")
		}
		return presenter.InternalError(c, "Failed to increment reading count", err)
	}
	return presenter.OK(c, echo.Map{
		"readingCount": count,
		"dailyLimit":   domain.DailyLimit,
	})
}

// profileResponse flattens the profile record and attaches derived stats.
type profileResponse struct {
	domain.Profile
	Stats domain.ProfileStats `json:"stats"`
}

func (h *Handler) handleProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profile, stats, err := h.profile.GetProfile(ctx, c.Param("userId"))
	if err != nil {
		return presenter.InternalError(c, "Failed to fetch profile", err)
	}
	return presenter.OK(c, profileResponse{Profile: profile, Stats: stats})
}
