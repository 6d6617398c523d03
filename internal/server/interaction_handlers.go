package server

import (
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/interact/like/:postId. The operation is a
// toggle: a second identical call undoes the first.
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	postID, err := paramID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.interactions.ToggleLike(ctx, userID, postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// AddComment handles POST /api/interact/comment/:postId. The commenter's
// current username is captured as a snapshot on the stored comment.
func (s *Server) AddComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	postID, err := paramID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidBody())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.interactions.AddComment(ctx, service.AddCommentInput{
		PostID:   postID,
		UserID:   userID,
		Username: user.Username,
		Text:     req.Text,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// DeleteComment handles DELETE /api/interact/comment/:postId/delete/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	postID, err := paramID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.interactions.DeleteComment(ctx, service.DeleteCommentInput{
		PostID:    postID,
		CommentID: commentID,
		UserID:    userID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}
