package database

import (
	sq "github.com/Masterminds/squirrel"
)

// Builder builds raw SQL for queries that are easier to express outside gorm's
// chain. Question placeholders are rebound by gorm for the active dialect.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// ContainsPattern wraps a keyword for a substring LIKE match. The keyword is
// used verbatim, so % and _ keep their wildcard meaning.
func ContainsPattern(keyword string) string {
	return "%" + keyword + "%"
}

// LikeAny matches the pattern against any of the given columns.
func LikeAny(pattern string, columns ...string) sq.Sqlizer {
	or := sq.Or{}
	for _, column := range columns {
		or = append(or, sq.Like{column: pattern})
	}
	return or
}
