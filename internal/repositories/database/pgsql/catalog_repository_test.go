package pgsql

import (
	"testing"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchQuery(t *testing.T) {
	query, args, err := buildSearchQuery(domain.CatalogFilter{
		Title: "go_lang",
		Kind:  domain.ItemKindBook,
		Limit: 5,
	})
	require.NoError(t, err)

	assert.Contains(t, query, `FROM "catalog_items"`)
	assert.Contains(t, query, `"title" ILIKE $1`)
	assert.Contains(t, query, `"kind" = $2`)
	assert.Contains(t, query, `ORDER BY "created_at" DESC, "item_id" DESC`)
	assert.Contains(t, query, "LIMIT $3")
	require.Len(t, args, 3)
	assert.Equal(t, `%go\_lang%`, args[0])
	assert.Equal(t, "book", args[1])
}

func TestBuildSearchQueryWithoutFilters(t *testing.T) {
	query, _, err := buildSearchQuery(domain.CatalogFilter{})
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "LIMIT")
}
