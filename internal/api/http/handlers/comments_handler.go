package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-ticket-api/internal/api/dto"
	"github.com/spec-kit/support-ticket-api/internal/auth"
	"github.com/spec-kit/support-ticket-api/internal/service"
	apperrors "github.com/spec-kit/support-ticket-api/pkg/util"
)

// CommentsHandler manages direct comment endpoints (edit, delete).
type CommentsHandler struct {
	comments *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(commentService *service.CommentService) *CommentsHandler {
	return &CommentsHandler{comments: commentService}
}

// EditComment handles PATCH /comments/:id.
func (h *CommentsHandler) EditComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	commentID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	comment, err := h.comments.Edit(c.Context(), commentID, req.Comment, principal.UserID, principal.Role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// DeleteComment handles DELETE /comments/:id.
func (h *CommentsHandler) DeleteComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	commentID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.comments.Delete(c.Context(), commentID, principal.UserID, principal.Role); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
