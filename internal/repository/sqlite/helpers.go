package sqlite

import (
	"github.com/Masterminds/squirrel"

	"github.com/vytor/studybuddy/internal/models"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const defaultListLimit = 200

func pageBounds(limit, offset int) (uint64, uint64) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return uint64(limit), uint64(offset)
}

// sessionWhere applies the filter shared by List and Count.
func sessionWhere(q squirrel.SelectBuilder, filter models.SessionFilter) squirrel.SelectBuilder {
	if filter.StoreName != "" {
		q = q.Where(squirrel.Eq{"store_name": filter.StoreName})
	}
	if filter.Subject != "" {
		q = q.Where(squirrel.Eq{"subject": filter.Subject})
	}
	if filter.Since != nil {
		q = q.Where(squirrel.GtOrEq{"ended_at": filter.Since.UTC()})
	}
	if filter.Until != nil {
		q = q.Where(squirrel.Lt{"ended_at": filter.Until.UTC()})
	}
	return q
}
