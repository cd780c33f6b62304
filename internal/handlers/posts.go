package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   models.Post
// @Failure      500  {object}  map[string]string
// @Router       /api/posts [get]
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.List(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("posts_list_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// getPost returns the post or a JSON null when the id is unknown; a
// missing post is not an error.
//
// @Summary      Fetch a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post id"
// @Success      200  {object}  models.Post
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/posts/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, err := h.services.GetByID(c.Request.Context(), id)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("post_get_failed", "id", id, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post payload"
// @Success      200   {object}  models.Post
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/posts [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	var input createPostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	post, err := h.services.Create(c.Request.Context(), input.Title, input.Message)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("post_create_failed", "title", input.Title, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if uid, ok := userID(c); ok && h.log != nil {
		h.log.Infow("post_created", "id", post.ID, "user_id", uid)
	}
	c.JSON(http.StatusOK, post)
}

// updatePost acknowledges the route without touching storage.
//
// @Summary      Update a post (stub)
// @Tags         posts
// @Produce      plain
// @Param        id   path  string  true  "Post id"
// @Success      200  {string}  string
// @Router       /api/posts/{id} [put]
func (h *Handler) updatePost(c *gin.Context) {
	c.String(http.StatusOK, "post#edit %s", c.Param("id"))
}

// deletePost acknowledges the route without touching storage.
//
// @Summary      Delete a post (stub)
// @Tags         posts
// @Produce      plain
// @Param        id   path  string  true  "Post id"
// @Success      200  {string}  string
// @Router       /api/posts/{id} [delete]
func (h *Handler) deletePost(c *gin.Context) {
	c.String(http.StatusOK, "post#delete %s", c.Param("id"))
}
