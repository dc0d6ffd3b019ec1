package handler

import (
	"context"

	"github.com/bookworm-labs/bookreview-service/internal/model"
	"github.com/bookworm-labs/bookreview-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookReviewService interface {
	ListBooks(ctx context.Context, search string, p model.Pagination) (model.BookList, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	ListReviews(ctx context.Context, bookID int, minRating *float64, p model.Pagination) (model.ReviewList, error)
	GetReview(ctx context.Context, id int) (model.Review, error)
	CreateReview(ctx context.Context, bookID int, req model.CreateReviewRequest) (model.Review, error)
	UpdateReview(ctx context.Context, id int, req model.UpdateReviewRequest) (model.Review, error)
	DeleteReview(ctx context.Context, id int) error
	ReviewStats(ctx context.Context, bookID int) (model.ReviewStats, error)
}

var _ BookReviewService = (*service.Service)(nil)
