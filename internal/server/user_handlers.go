package server

import (
	"time"

	"glimpse/internal/auth"
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/user/register
func (s *Server) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		Password       string `json:"password"`
		ProfilePicture string `json:"profilePicture"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidBody())
	}

	user, err := s.users.Register(ctx, service.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User registered successfully",
		"data":    user,
	})
}

// Login handles POST /api/user/login. On success the session token is both
// returned in the body and set as an HTTP-only cross-site cookie.
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidBody())
	}

	user, token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL / time.Second),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user.Summary(),
	})
}

// Logout handles GET /api/user/logout by expiring the session cookie. The
// token itself stays valid until its TTL runs out.
func (s *Server) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

// CurrentUser handles GET /api/user/current-user
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := s.users.GetUserByID(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PUT /api/user/updateuser/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		Password       string `json:"password"`
		ProfilePicture string `json:"profilePicture"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidBody())
	}

	user, err := s.users.UpdateUser(ctx, service.UpdateUserInput{
		UserID:         id,
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"data":    user,
	})
}

// DeleteUser handles DELETE /api/user/delete/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	user, err := s.users.DeleteUser(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
		"data":    user,
	})
}

// GetAllUsers handles GET /api/user/all
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
