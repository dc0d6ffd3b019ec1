package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildListBooks(t *testing.T) {
	t.Parallel()

	t.Run("search hits title or author, case-insensitive", func(t *testing.T) {
		t.Parallel()
		listQ, countQ := buildListBooks("go", 20, 10)

		query, args, err := listQ.ToSql()
		require.NoError(t, err)
		require.Equal(t,
			"SELECT id, title, author, isbn, description, publication_year, created_at, updated_at "+
				"FROM books WHERE (title ILIKE $1 OR author ILIKE $2) ORDER BY id asc LIMIT 10 OFFSET 20",
			query)
		require.Equal(t, []interface{}{"%go%", "%go%"}, args)

		query, args, err = countQ.ToSql()
		require.NoError(t, err)
		require.Equal(t, "SELECT count(*) FROM books WHERE (title ILIKE $1 OR author ILIKE $2)", query)
		require.Equal(t, []interface{}{"%go%", "%go%"}, args)
	})

	t.Run("no search lists everything in id order", func(t *testing.T) {
		t.Parallel()
		listQ, countQ := buildListBooks("", 0, 10)

		query, args, err := listQ.ToSql()
		require.NoError(t, err)
		require.Equal(t,
			"SELECT id, title, author, isbn, description, publication_year, created_at, updated_at "+
				"FROM books ORDER BY id asc LIMIT 10 OFFSET 0",
			query)
		require.Empty(t, args)

		query, args, err = countQ.ToSql()
		require.NoError(t, err)
		require.Equal(t, "SELECT count(*) FROM books", query)
		require.Empty(t, args)
	})
}

func TestBuildListReviews(t *testing.T) {
	t.Parallel()

	t.Run("rating filter", func(t *testing.T) {
		t.Parallel()
		minRating := 4.0
		listQ, countQ := buildListReviews(7, &minRating, 10, 5)

		query, args, err := listQ.ToSql()
		require.NoError(t, err)
		require.Equal(t,
			"SELECT id, book_id, reviewer_name, reviewer_email, rating, review_text, created_at, updated_at "+
				"FROM reviews WHERE book_id = $1 AND rating >= $2 ORDER BY created_at desc, id desc LIMIT 5 OFFSET 10",
			query)
		require.Equal(t, []interface{}{7, 4.0}, args)

		query, args, err = countQ.ToSql()
		require.NoError(t, err)
		require.Equal(t, "SELECT count(*) FROM reviews WHERE book_id = $1 AND rating >= $2", query)
		require.Equal(t, []interface{}{7, 4.0}, args)
	})

	t.Run("no filter, newest first with id tiebreak", func(t *testing.T) {
		t.Parallel()
		listQ, countQ := buildListReviews(7, nil, 0, 10)

		query, args, err := listQ.ToSql()
		require.NoError(t, err)
		require.Equal(t,
			"SELECT id, book_id, reviewer_name, reviewer_email, rating, review_text, created_at, updated_at "+
				"FROM reviews WHERE book_id = $1 ORDER BY created_at desc, id desc LIMIT 10 OFFSET 0",
			query)
		require.Equal(t, []interface{}{7}, args)

		query, args, err = countQ.ToSql()
		require.NoError(t, err)
		require.Equal(t, "SELECT count(*) FROM reviews WHERE book_id = $1", query)
		require.Equal(t, []interface{}{7}, args)
	})
}

// the aggregate rounds to two decimals and reports zeros, not nulls, for a
// book with no reviews
func TestReviewStatsQuery(t *testing.T) {
	t.Parallel()
	require.Contains(t, reviewStatsQuery, "count(id)")
	require.Contains(t, reviewStatsQuery, "coalesce(round(avg(rating)::numeric, 2)::float8, 0)")
	require.Contains(t, reviewStatsQuery, "coalesce(min(rating), 0)")
	require.Contains(t, reviewStatsQuery, "coalesce(max(rating), 0)")
	require.Contains(t, reviewStatsQuery, "where book_id = $1")
}
