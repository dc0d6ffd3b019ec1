package service

import (
	"context"
	"time"

	"github.com/bookworm-labs/bookreview-service/internal/audit"
	"github.com/bookworm-labs/bookreview-service/internal/cache"
	"github.com/bookworm-labs/bookreview-service/internal/model"
	"github.com/bookworm-labs/bookreview-service/internal/repository"
	"go.uber.org/zap"
)

const (
	entityBook   = "book"
	entityReview = "review"

	actionCreated = "created"
	actionUpdated = "updated"
	actionDeleted = "deleted"
)

type Config struct {
	StatsTTL time.Duration
}

// Service composes the catalog store with the best-effort cache: reads are
// cache-first with lazy population, writes persist then evict whatever could
// now be stale. Cache failures never change an outcome.
type Service struct {
	repo  repository.Repository
	cache cache.Cache
	audit audit.Publisher
	cfg   Config
	log   *zap.Logger
}

func NewService(repo repository.Repository, c cache.Cache, pub audit.Publisher, cfg Config, log *zap.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: c,
		audit: pub,
		cfg:   cfg,
		log:   log.Named("svc"),
	}
}

func (s *Service) ListBooks(ctx context.Context, search string, p model.Pagination) (model.BookList, error) {
	key := booksListKey(search, p)
	var cached model.BookList
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	books, total, err := s.repo.ListBooks(ctx, search, p.Offset(), p.Size)
	if err != nil {
		return model.BookList{}, err
	}
	if books == nil {
		books = []model.Book{}
	}
	list := model.BookList{
		Books: books,
		Total: total,
		Page:  p.Page,
		Size:  p.Size,
		Pages: p.Pages(total),
	}
	s.cache.Set(ctx, key, list)
	return list, nil
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	key := bookKey(id)
	var cached model.Book
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		// not-found is never cached
		return model.Book{}, err
	}
	s.cache.Set(ctx, key, book)
	return book, nil
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, req)
	if err != nil {
		return model.Book{}, err
	}
	s.cache.DeletePattern(ctx, booksPattern)
	s.audit.Publish(entityBook, book.ID, actionCreated)
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	book, err := s.repo.UpdateBook(ctx, id, req)
	if err != nil {
		return model.Book{}, err
	}
	s.cache.Delete(ctx, bookKey(id))
	s.cache.DeletePattern(ctx, booksPattern)
	s.audit.Publish(entityBook, id, actionUpdated)
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, bookKey(id))
	s.cache.DeletePattern(ctx, booksPattern)
	s.cache.DeletePattern(ctx, reviewsBookPattern(id))
	s.audit.Publish(entityBook, id, actionDeleted)
	return nil
}

func (s *Service) ListReviews(ctx context.Context, bookID int, minRating *float64, p model.Pagination) (model.ReviewList, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.ReviewList{}, err
	}

	key := reviewsListKey(bookID, minRating, p)
	var cached model.ReviewList
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	reviews, total, err := s.repo.ListReviews(ctx, bookID, minRating, p.Offset(), p.Size)
	if err != nil {
		return model.ReviewList{}, err
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	list := model.ReviewList{
		Reviews: reviews,
		Total:   total,
		Page:    p.Page,
		Size:    p.Size,
		Pages:   p.Pages(total),
	}
	s.cache.Set(ctx, key, list)
	return list, nil
}

func (s *Service) GetReview(ctx context.Context, id int) (model.Review, error) {
	key := reviewKey(id)
	var cached model.Review
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	review, err := s.repo.GetReview(ctx, id)
	if err != nil {
		return model.Review{}, err
	}
	s.cache.Set(ctx, key, review)
	return review, nil
}

func (s *Service) CreateReview(ctx context.Context, bookID int, req model.CreateReviewRequest) (model.Review, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.Review{}, err
	}
	req.Rating = model.Round1(req.Rating)

	review, err := s.repo.CreateReview(ctx, bookID, req)
	if err != nil {
		return model.Review{}, err
	}
	s.cache.DeletePattern(ctx, reviewsBookPattern(bookID))
	s.audit.Publish(entityReview, review.ID, actionCreated)
	return review, nil
}

func (s *Service) UpdateReview(ctx context.Context, id int, req model.UpdateReviewRequest) (model.Review, error) {
	if req.Rating != nil {
		rounded := model.Round1(*req.Rating)
		req.Rating = &rounded
	}
	review, err := s.repo.UpdateReview(ctx, id, req)
	if err != nil {
		return model.Review{}, err
	}
	s.cache.Delete(ctx, reviewKey(id))
	s.cache.DeletePattern(ctx, reviewsBookPattern(review.BookID))
	// review_stats:book:{id} stays put: stats lag is bounded by their TTL
	s.audit.Publish(entityReview, id, actionUpdated)
	return review, nil
}

func (s *Service) DeleteReview(ctx context.Context, id int) error {
	review, err := s.repo.GetReview(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteReview(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, reviewKey(id))
	s.cache.DeletePattern(ctx, reviewsBookPattern(review.BookID))
	s.audit.Publish(entityReview, id, actionDeleted)
	return nil
}

func (s *Service) ReviewStats(ctx context.Context, bookID int) (model.ReviewStats, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.ReviewStats{}, err
	}

	key := statsKey(bookID)
	var cached model.ReviewStats
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	stats, err := s.repo.ReviewStats(ctx, bookID)
	if err != nil {
		return model.ReviewStats{}, err
	}
	s.cache.Set(ctx, key, stats, s.cfg.StatsTTL)
	return stats, nil
}
