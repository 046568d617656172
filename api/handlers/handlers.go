package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"urdu-digest/dto"
	"urdu-digest/services"
)

// CreateDigestHandler godoc
// @Summary      Create a digest
// @Description  Fetch a blog URL, summarize it and translate the summary to Urdu
// @Tags         digests
// @Accept       json
// @Param        request  body  dto.CreateDigestRequest  true  "Blog URL and optional mode (combined|separate)"
// @Produce      json
// @Success      201  {object}  dto.DigestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /digests [post]
func CreateDigestHandler(svc *services.DigestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateDigestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "url is required"})
			return
		}

		res, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}

// GetDigestHandler godoc
// @Summary      Get digest by id
// @Description  Get a single digest by its numeric id
// @Tags         digests
// @Param        id   path   int  true  "Digest id"
// @Produce      json
// @Success      200  {object}  dto.DigestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /digests/{id} [get]
func GetDigestHandler(svc *services.DigestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "id must be numeric"})
			return
		}

		res, err := svc.GetByDigestID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// ListDigestsHandler godoc
// @Summary      List digests
// @Description  List recent digests, newest first
// @Tags         digests
// @Param        limit  query  int  false  "Max items (<=100)"
// @Produce      json
// @Success      200  {array}  dto.DigestResponse
// @Router       /digests [get]
func ListDigestsHandler(svc *services.DigestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		items, err := svc.ListRecent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// IncrementViewHandler godoc
// @Summary      Increment view count
// @Description  Bump the view counter of a digest's article
// @Tags         digests
// @Param        id   path   string  true  "Article ObjectID"
// @Produce      json
// @Success      200  {object}  dto.ViewCountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /digests/{id}/view [post]
func IncrementViewHandler(svc *services.DigestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.IncrementView(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
				return
			}
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// ListArticlesHandler godoc
// @Summary      List articles
// @Description  List stored article documents with simple pagination
// @Tags         articles
// @Param        page       query  int  false  "Page number (1-based)"
// @Param        page_size  query  int  false  "Page size (<=100)"
// @Produce      json
// @Success      200  {array}  dto.ArticleDTO
// @Router       /articles [get]
func ListArticlesHandler(svc *services.DigestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
		items, err := svc.ListArticles(c.Request.Context(), page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// ListFeedsHandler godoc
// @Summary      List RSS feed items
// @Description  List recent entries of an RSS feed
// @Tags         feeds
// @Param        url    query  string  true   "RSS feed URL"
// @Param        limit  query  int     false  "Max items (<=50)"
// @Produce      json
// @Success      200  {array}  dto.FeedItemDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /feeds [get]
func ListFeedsHandler(svc *services.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		items, err := svc.List(c.Query("url"), limit)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// writeServiceError maps the service error classes to HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrFetchFailure):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrPersistenceFailure):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
