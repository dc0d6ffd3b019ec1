package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	sq "github.com/Masterminds/squirrel"

	"github.com/bookworm-labs/bookreview-service/internal/errs"
	"github.com/bookworm-labs/bookreview-service/internal/model"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, search string, offset, limit int) ([]model.Book, int, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	CreateReview(ctx context.Context, bookID int, req model.CreateReviewRequest) (model.Review, error)
	GetReview(ctx context.Context, id int) (model.Review, error)
	ListReviews(ctx context.Context, bookID int, minRating *float64, offset, limit int) ([]model.Review, int, error)
	UpdateReview(ctx context.Context, id int, req model.UpdateReviewRequest) (model.Review, error)
	DeleteReview(ctx context.Context, id int) error
	ReviewStats(ctx context.Context, bookID int) (model.ReviewStats, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName   = `books`
	reviewsTableName = `reviews`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	bookColumns   = []string{"id", "title", "author", "isbn", "description", "publication_year", "created_at", "updated_at"}
	reviewColumns = []string{"id", "book_id", "reviewer_name", "reviewer_email", "rating", "review_text", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "returning " + strings.Join(columns, ", ")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if req.ISBN != nil {
		if err := r.checkISBN(ctx, *req.ISBN, 0); err != nil {
			return model.Book{}, err
		}
	}

	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "description", "publication_year").
		Values(req.Title, req.Author, req.ISBN, req.Description, req.PublicationYear).
		Suffix(returning(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errs.ErrConflict
		}
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

// checkISBN gives a friendly conflict error before insert/update. The unique
// constraint on books.isbn remains the real guarantee under concurrency.
func (r *repository) checkISBN(ctx context.Context, isbn string, excludeID int) error {
	q := qb.Select("1").From(booksTableName).Where(sq.Eq{"isbn": isbn})
	if excludeID != 0 {
		q = q.Where(sq.NotEq{"id": excludeID})
	}
	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return err
	}
	var one int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	return errs.ErrConflict
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func buildListBooks(search string, offset, limit int) (sq.SelectBuilder, sq.SelectBuilder) {
	listQ := qb.Select(bookColumns...).From(booksTableName)
	countQ := qb.Select("count(*)").From(booksTableName)

	if search != "" {
		like := "%" + search + "%"
		cond := sq.Or{sq.ILike{"title": like}, sq.ILike{"author": like}}
		listQ = listQ.Where(cond)
		countQ = countQ.Where(cond)
	}
	// id asc keeps pagination reproducible
	listQ = listQ.OrderBy("id asc").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	return listQ, countQ
}

func (r *repository) ListBooks(ctx context.Context, search string, offset, limit int) ([]model.Book, int, error) {
	listQ, countQ := buildListBooks(search, offset, limit)

	var (
		books []model.Book
		total int
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		query, args, err := listQ.ToSql()
		if err != nil {
			return err
		}
		rows, err := r.db.Query(gctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		books, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
		return err
	})
	gg.Go(func() error {
		query, args, err := countQ.ToSql()
		if err != nil {
			return err
		}
		return r.db.QueryRow(gctx, query, args...).Scan(&total)
	})
	if err := gg.Wait(); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	if req.ISBN != nil {
		if err := r.checkISBN(ctx, *req.ISBN, id); err != nil {
			return model.Book{}, err
		}
	}

	upd := qb.Update(booksTableName)
	if req.Title != nil {
		upd = upd.Set("title", *req.Title)
	}
	if req.Author != nil {
		upd = upd.Set("author", *req.Author)
	}
	if req.ISBN != nil {
		upd = upd.Set("isbn", *req.ISBN)
	}
	if req.Description != nil {
		upd = upd.Set("description", *req.Description)
	}
	if req.PublicationYear != nil {
		upd = upd.Set("publication_year", *req.PublicationYear)
	}
	query, args, err := upd.Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Book{}, errs.ErrConflict
		}
		r.log.Error("UpdateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

// DeleteBook removes the book and all its reviews in one transaction. The
// schema also cascades, the explicit delete keeps the ordering under our
// control.
func (r *repository) DeleteBook(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `delete from reviews where book_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `delete from books where id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *repository) CreateReview(ctx context.Context, bookID int, req model.CreateReviewRequest) (model.Review, error) {
	query, args, err := qb.Insert(reviewsTableName).
		Columns("book_id", "reviewer_name", "reviewer_email", "rating", "review_text").
		Values(bookID, req.ReviewerName, req.ReviewerEmail, req.Rating, req.ReviewText).
		Suffix(returning(reviewColumns)).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Review{}, err
	}
	defer rows.Close()

	review, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Review])
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Review{}, errs.ErrNotFound
		}
		r.log.Error("CreateReview", zap.String("q", query), zap.Any("args", args))
		return model.Review{}, err
	}
	return review, nil
}

func (r *repository) GetReview(ctx context.Context, id int) (model.Review, error) {
	query, args, err := qb.Select(reviewColumns...).
		From(reviewsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Review{}, err
	}
	defer rows.Close()

	review, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Review])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, err
	}
	return review, nil
}

func buildListReviews(bookID int, minRating *float64, offset, limit int) (sq.SelectBuilder, sq.SelectBuilder) {
	listQ := qb.Select(reviewColumns...).From(reviewsTableName).Where(sq.Eq{"book_id": bookID})
	countQ := qb.Select("count(*)").From(reviewsTableName).Where(sq.Eq{"book_id": bookID})

	if minRating != nil {
		listQ = listQ.Where(sq.GtOrEq{"rating": *minRating})
		countQ = countQ.Where(sq.GtOrEq{"rating": *minRating})
	}
	// newest first, id desc breaks created_at ties
	listQ = listQ.OrderBy("created_at desc", "id desc").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	return listQ, countQ
}

func (r *repository) ListReviews(ctx context.Context, bookID int, minRating *float64, offset, limit int) ([]model.Review, int, error) {
	listQ, countQ := buildListReviews(bookID, minRating, offset, limit)

	var (
		reviews []model.Review
		total   int
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		query, args, err := listQ.ToSql()
		if err != nil {
			return err
		}
		rows, err := r.db.Query(gctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		reviews, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Review])
		return err
	})
	gg.Go(func() error {
		query, args, err := countQ.ToSql()
		if err != nil {
			return err
		}
		return r.db.QueryRow(gctx, query, args...).Scan(&total)
	})
	if err := gg.Wait(); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *repository) UpdateReview(ctx context.Context, id int, req model.UpdateReviewRequest) (model.Review, error) {
	upd := qb.Update(reviewsTableName)
	if req.ReviewerName != nil {
		upd = upd.Set("reviewer_name", *req.ReviewerName)
	}
	if req.ReviewerEmail != nil {
		upd = upd.Set("reviewer_email", *req.ReviewerEmail)
	}
	if req.Rating != nil {
		upd = upd.Set("rating", *req.Rating)
	}
	if req.ReviewText != nil {
		upd = upd.Set("review_text", *req.ReviewText)
	}
	query, args, err := upd.Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(reviewColumns)).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Review{}, err
	}
	defer rows.Close()

	review, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Review])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		r.log.Error("UpdateReview", zap.String("q", query), zap.Any("args", args))
		return model.Review{}, err
	}
	return review, nil
}

func (r *repository) DeleteReview(ctx context.Context, id int) error {
	query, args, err := qb.Delete(reviewsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// zero reviews report 0.0, not null
const reviewStatsQuery = `
select count(id),
       coalesce(round(avg(rating)::numeric, 2)::float8, 0),
       coalesce(min(rating), 0),
       coalesce(max(rating), 0)
from reviews
where book_id = $1`

func (r *repository) ReviewStats(ctx context.Context, bookID int) (model.ReviewStats, error) {
	stats := model.ReviewStats{BookID: bookID}
	if err := r.db.QueryRow(ctx, reviewStatsQuery, bookID).
		Scan(&stats.TotalReviews, &stats.AverageRating, &stats.MinRating, &stats.MaxRating); err != nil {
		return model.ReviewStats{}, err
	}
	return stats, nil
}
