package service

import (
	"fmt"
	"strconv"

	"github.com/bookworm-labs/bookreview-service/internal/model"
)

// Cache keys carry every input that affects the payload; the wildcard
// patterns below must cover every list key they are meant to evict.

const (
	noneLabel    = "none"
	booksPattern = "books:*"
)

func bookKey(id int) string {
	return fmt.Sprintf("book:%d", id)
}

func reviewKey(id int) string {
	return fmt.Sprintf("review:%d", id)
}

func booksListKey(search string, p model.Pagination) string {
	if search == "" {
		search = noneLabel
	}
	return fmt.Sprintf("books:page:%d:size:%d:search:%s", p.Page, p.Size, search)
}

func reviewsListKey(bookID int, minRating *float64, p model.Pagination) string {
	rating := noneLabel
	if minRating != nil {
		rating = strconv.FormatFloat(*minRating, 'g', -1, 64)
	}
	return fmt.Sprintf("reviews:book:%d:page:%d:size:%d:rating:%s", bookID, p.Page, p.Size, rating)
}

func reviewsBookPattern(bookID int) string {
	return fmt.Sprintf("reviews:book:%d:*", bookID)
}

func statsKey(bookID int) string {
	return fmt.Sprintf("review_stats:book:%d", bookID)
}
