package model

import (
	"math"
	"time"
)

type Book struct {
	ID              int       `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	ISBN            *string   `json:"isbn" db:"isbn"`
	Description     *string   `json:"description" db:"description"`
	PublicationYear *int      `json:"publication_year" db:"publication_year"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

type Review struct {
	ID            int       `json:"id" db:"id"`
	BookID        int       `json:"book_id" db:"book_id"`
	ReviewerName  string    `json:"reviewer_name" db:"reviewer_name"`
	ReviewerEmail *string   `json:"reviewer_email" db:"reviewer_email"`
	Rating        float64   `json:"rating" db:"rating"`
	ReviewText    *string   `json:"review_text" db:"review_text"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type CreateBookRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	Author          string  `json:"author" validate:"required,min=1,max=255"`
	ISBN            *string `json:"isbn" validate:"omitempty,max=20"`
	Description     *string `json:"description"`
	PublicationYear *int    `json:"publication_year" validate:"omitempty,gte=1000,lte=2030"`
}

// UpdateBookRequest is a patch: nil fields keep their stored value.
type UpdateBookRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=1,max=255"`
	Author          *string `json:"author" validate:"omitempty,min=1,max=255"`
	ISBN            *string `json:"isbn" validate:"omitempty,max=20"`
	Description     *string `json:"description"`
	PublicationYear *int    `json:"publication_year" validate:"omitempty,gte=1000,lte=2030"`
}

type CreateReviewRequest struct {
	ReviewerName  string  `json:"reviewer_name" validate:"required,min=1,max=255"`
	ReviewerEmail *string `json:"reviewer_email" validate:"omitempty,email"`
	Rating        float64 `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText    *string `json:"review_text"`
}

type UpdateReviewRequest struct {
	ReviewerName  *string  `json:"reviewer_name" validate:"omitempty,min=1,max=255"`
	ReviewerEmail *string  `json:"reviewer_email" validate:"omitempty,email"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
	ReviewText    *string  `json:"review_text"`
}

type BookList struct {
	Books []Book `json:"books"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Pages int    `json:"pages"`
}

type ReviewList struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	Size    int      `json:"size"`
	Pages   int      `json:"pages"`
}

type ReviewStats struct {
	BookID        int     `json:"book_id" db:"-"`
	TotalReviews  int     `json:"total_reviews" db:"total_reviews"`
	AverageRating float64 `json:"average_rating" db:"average_rating"`
	MinRating     float64 `json:"min_rating" db:"min_rating"`
	MaxRating     float64 `json:"max_rating" db:"max_rating"`
}

// Round1 rounds a rating to one decimal, the stored precision.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
