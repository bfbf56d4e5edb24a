package pgsql

import (
	"testing"
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransactionListQueryKeyset(t *testing.T) {
	after := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	query, args, err := buildTransactionListQuery(domain.TransactionFilter{
		MemberID:       "member-1",
		Limit:          10,
		AfterCreatedAt: &after,
		AfterID:        "TXN000010",
	})
	require.NoError(t, err)

	assert.Contains(t, query, `FROM "transactions" AS "t"`)
	assert.Contains(t, query, `INNER JOIN "catalog_items" AS "c"`)
	assert.Contains(t, query, `INNER JOIN "members" AS "m"`)
	assert.Contains(t, query, `"t"."member_id" = $1`)
	assert.Contains(t, query, `"t"."created_at" < $2`)
	assert.Contains(t, query, `"t"."transaction_id" < $4`)
	assert.Contains(t, query, `ORDER BY "t"."created_at" DESC, "t"."transaction_id" DESC`)
	assert.Contains(t, args, "member-1")
	assert.Contains(t, args, "TXN000010")
}

func TestBuildTransactionListQueryOverdueIsDerived(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := buildTransactionListQuery(domain.TransactionFilter{
		Status: domain.TransactionStatusOverdue,
		AsOf:   now,
	})
	require.NoError(t, err)

	assert.Contains(t, query, `"t"."status" != $1`)
	assert.Contains(t, query, `"t"."due_date" < $2`)
	assert.Equal(t, "returned", args[0])
	assert.Equal(t, now, args[1])
}

func TestBuildTransactionListQueryStatusFilter(t *testing.T) {
	query, args, err := buildTransactionListQuery(domain.TransactionFilter{
		Status: domain.TransactionStatusIssued,
	})
	require.NoError(t, err)
	assert.Contains(t, query, `"t"."status" = $1`)
	assert.Equal(t, "issued", args[0])
	assert.NotContains(t, query, "due_date")
}
