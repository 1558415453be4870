package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/nc-news/backend/internal/apperror"
)

func TestBuildArticlesQueryDefaults(t *testing.T) {
	q, err := buildArticlesQuery(ListArticlesParams{})
	require.NoError(t, err)

	assert.Contains(t, q.selectSQL, "ORDER BY created_at DESC")
	assert.Contains(t, q.selectSQL, "LIMIT 10 OFFSET 0")
	assert.NotContains(t, q.selectSQL, "WHERE")
	assert.Empty(t, q.selectArgs)
	assert.Equal(t, `SELECT COUNT(articles.article_id)::INT FROM articles`, q.countSQL)
	assert.Empty(t, q.countArgs)
}

func TestBuildArticlesQueryTopicFilter(t *testing.T) {
	q, err := buildArticlesQuery(ListArticlesParams{Topic: "MITCH"})
	require.NoError(t, err)

	assert.Contains(t, q.selectSQL, "WHERE LOWER(articles.topic) = $1")
	assert.Equal(t, []any{"mitch"}, q.selectArgs)
	assert.Contains(t, q.countSQL, "WHERE LOWER(articles.topic) = $1")
	assert.Equal(t, []any{"mitch"}, q.countArgs)
}

func TestBuildArticlesQuerySortAllowList(t *testing.T) {
	for _, col := range []string{
		"article_id", "title", "topic", "author", "body",
		"created_at", "votes", "comment_count",
	} {
		q, err := buildArticlesQuery(ListArticlesParams{SortBy: col})
		require.NoError(t, err, col)
		assert.Contains(t, q.selectSQL, "ORDER BY "+col+" DESC")
	}
}

func TestBuildArticlesQueryRejectsUnknownSortColumn(t *testing.T) {
	for _, col := range []string{
		"user",
		"votes; DROP TABLE articles",
		"created_at, votes",
		"(SELECT 1)",
	} {
		_, err := buildArticlesQuery(ListArticlesParams{SortBy: col})
		require.Error(t, err, col)
		assert.True(t, errors.Is(err, apperror.ErrInvalidQuery), col)
		assert.EqualError(t, err, "Invalid query")
	}
}

func TestBuildArticlesQueryOrder(t *testing.T) {
	q, err := buildArticlesQuery(ListArticlesParams{Order: "ASC"})
	require.NoError(t, err)
	assert.Contains(t, q.selectSQL, "ORDER BY created_at ASC")

	_, err = buildArticlesQuery(ListArticlesParams{Order: "sideways"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidQuery))
	assert.EqualError(t, err, "Invalid query")
}

func TestBuildArticlesQueryPagination(t *testing.T) {
	q, err := buildArticlesQuery(ListArticlesParams{Limit: "2", Page: "3"})
	require.NoError(t, err)
	assert.Contains(t, q.selectSQL, "LIMIT 2 OFFSET 4")

	// Pagination never touches the count query.
	assert.NotContains(t, q.countSQL, "LIMIT")
	assert.NotContains(t, q.countSQL, "OFFSET")
}

func TestParsePaginationDefaults(t *testing.T) {
	limit, page, err := parsePagination("", "")
	require.NoError(t, err)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 1, page)

	// Non-numeric values fall back rather than failing.
	limit, page, err = parsePagination("abc", "x")
	require.NoError(t, err)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 1, page)
}

func TestParsePaginationRejectsBelowOne(t *testing.T) {
	for _, tc := range []struct{ limit, page string }{
		{"0", "1"},
		{"-5", "1"},
		{"10", "0"},
		{"10", "-2"},
	} {
		_, _, err := parsePagination(tc.limit, tc.page)
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid limit or page query")
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, pageOffset(10, 1))
	assert.Equal(t, 10, pageOffset(10, 2))
	assert.Equal(t, 15, pageOffset(5, 4))
}
