package server

import (
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddPost handles POST /api/userpost/addpost
func (s *Server) AddPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req struct {
		Title   string `json:"title"`
		Caption string `json:"caption"`
		Image   string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidBody())
	}

	post, err := s.posts.CreatePost(ctx, service.CreatePostInput{
		UserID:  userID,
		Title:   req.Title,
		Caption: req.Caption,
		Image:   req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// MyPosts handles GET /api/userpost/myposts
func (s *Server) MyPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.posts.ListMyPosts(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// AllPosts handles GET /api/userpost/allpost. Every post is returned with
// author, likers, and comment authors expanded into display summaries.
func (s *Server) AllPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	views, err := s.posts.ListAllPosts(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views)
}

// UpdatePost handles PUT /api/userpost/update/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	postID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Title   string `json:"title"`
		Caption string `json:"caption"`
		Image   string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidBody())
	}

	post, err := s.posts.UpdatePost(ctx, service.UpdatePostInput{
		UserID:  userID,
		PostID:  postID,
		Title:   req.Title,
		Caption: req.Caption,
		Image:   req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// DeletePost handles DELETE /api/userpost/delete/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	postID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.posts.DeletePost(ctx, service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	}); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
		"postId":  postID,
	})
}
