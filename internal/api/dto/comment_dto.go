package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/support-ticket-api/internal/domain"
)

// CommentRequest payload, used for both creation and edits.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// Validate enforces comment input rules.
func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Comment, validation.Required),
	)
}

// CommentResponse describes a comment.
type CommentResponse struct {
	ID        int64     `json:"id"`
	TicketID  int64     `json:"ticket_id"`
	AuthorID  int64     `json:"author_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentResponse maps a domain comment.
func NewCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		TicketID:  comment.TicketID,
		AuthorID:  comment.AuthorID,
		Comment:   comment.Body,
		CreatedAt: comment.CreatedAt,
	}
}
