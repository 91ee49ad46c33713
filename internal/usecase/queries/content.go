package queries

import (
	"little-lemon/internal/content"
)

//go:generate mockgen -source=content.go -destination=../../../tests/mock/queries/content_mock.go -package=queriesmock

type ContentQueries interface {
	Catalogue() *content.Catalogue
}

type contentQueriesImpl struct {
	catalogue *content.Catalogue
}

func NewContentQueries(catalogue *content.Catalogue) ContentQueries {
	return &contentQueriesImpl{catalogue: catalogue}
}

func (q *contentQueriesImpl) Catalogue() *content.Catalogue {
	return q.catalogue
}
