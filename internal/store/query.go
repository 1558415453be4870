package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emilythestrangee/nc-news/backend/internal/apperror"
)

// ListArticlesParams carries the raw query values from the request. The
// builder validates them; handlers pass them through untouched.
type ListArticlesParams struct {
	Topic  string
	SortBy string
	Order  string
	Limit  string
	Page   string
}

const (
	defaultLimit = 10
	defaultPage  = 1
)

// sortableColumns is the allow-list for ORDER BY. Identifiers cannot be bound
// as parameters, so nothing outside this set ever reaches the SQL text.
var sortableColumns = map[string]bool{
	"article_id":    true,
	"title":         true,
	"topic":         true,
	"author":        true,
	"body":          true,
	"created_at":    true,
	"votes":         true,
	"comment_count": true,
}

// articlesQuery is the builder's output: the page SELECT and the
// filter-matching COUNT, each with its bound arguments.
type articlesQuery struct {
	topic      string // normalized filter, empty when unfiltered
	selectSQL  string
	selectArgs []any
	countSQL   string
	countArgs  []any
}

func buildArticlesQuery(p ListArticlesParams) (*articlesQuery, error) {
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	if !sortableColumns[sortBy] {
		return nil, apperror.InvalidQuery("Invalid query")
	}

	order := strings.ToLower(p.Order)
	if order == "" {
		order = "desc"
	}
	if order != "asc" && order != "desc" {
		return nil, apperror.InvalidQuery("Invalid query")
	}

	limit, page, err := parsePagination(p.Limit, p.Page)
	if err != nil {
		return nil, err
	}

	q := &articlesQuery{topic: strings.ToLower(p.Topic)}

	var sb strings.Builder
	sb.WriteString(`SELECT articles.article_id, articles.title, articles.topic, articles.author,
       articles.body, articles.created_at, articles.votes, articles.article_img_url,
       articles.featured, COUNT(comments.comment_id)::INT AS comment_count
FROM articles
LEFT JOIN comments ON articles.article_id = comments.article_id
`)
	q.countSQL = `SELECT COUNT(articles.article_id)::INT FROM articles`

	if q.topic != "" {
		sb.WriteString("WHERE LOWER(articles.topic) = $1\n")
		q.selectArgs = append(q.selectArgs, q.topic)
		q.countSQL += ` WHERE LOWER(articles.topic) = $1`
		q.countArgs = append(q.countArgs, q.topic)
	}

	// sortBy and order passed the allow-list; limit and offset are strictly
	// parsed integers.
	fmt.Fprintf(&sb, "GROUP BY articles.article_id ORDER BY %s %s LIMIT %d OFFSET %d",
		sortBy, strings.ToUpper(order), limit, pageOffset(limit, page))
	q.selectSQL = sb.String()

	return q, nil
}

// parsePagination applies defaults for absent or non-numeric values and
// rejects values below 1.
func parsePagination(limitRaw, pageRaw string) (limit, page int, err error) {
	limit = defaultLimit
	if n, convErr := strconv.Atoi(limitRaw); convErr == nil {
		limit = n
	}
	page = defaultPage
	if n, convErr := strconv.Atoi(pageRaw); convErr == nil {
		page = n
	}
	if limit < 1 || page < 1 {
		return 0, 0, apperror.InvalidQuery("Invalid limit or page query")
	}
	return limit, page, nil
}

// pageOffset converts a 1-indexed page into a row-skip count.
func pageOffset(limit, page int) int {
	if page == 1 {
		return 0
	}
	return limit * (page - 1)
}
