package domain_test

import (
	"testing"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func popular(id string, n int64) domain.PopularItem {
	return domain.PopularItem{Item: domain.CatalogItemSummary{ItemID: id}, IssueCount: n}
}

func TestRankPopularItems(t *testing.T) {
	items := []domain.PopularItem{
		popular("c", 3), popular("a", 3), popular("b", 7), popular("d", 1),
	}

	ranked := domain.RankPopularItems(items, 3)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].Item.ItemID)
	assert.Equal(t, "a", ranked[1].Item.ItemID, "ties break by item id ascending")
	assert.Equal(t, "c", ranked[2].Item.ItemID)
	assert.Equal(t, "c", items[0].Item.ItemID, "input is not reordered")
}

func TestRankPopularItems_TopTen(t *testing.T) {
	var items []domain.PopularItem
	for i := 0; i < 15; i++ {
		items = append(items, popular(string(rune('a'+i)), int64(i)))
	}
	ranked := domain.RankPopularItems(items, domain.PopularItemsLimit)
	assert.Len(t, ranked, domain.PopularItemsLimit)
	assert.Equal(t, int64(14), ranked[0].IssueCount)
	assert.Equal(t, int64(5), ranked[9].IssueCount)
}

func TestRankMemberActivity(t *testing.T) {
	rows := []domain.MemberActivity{
		{Member: domain.MemberSummary{MemberID: "m2"}, TotalIssues: 2},
		{Member: domain.MemberSummary{MemberID: "m3"}, TotalIssues: 4},
		{Member: domain.MemberSummary{MemberID: "m1"}, TotalIssues: 2},
	}
	ranked := domain.RankMemberActivity(rows)
	assert.Equal(t, []string{"m3", "m1", "m2"}, []string{ranked[0].Member.MemberID, ranked[1].Member.MemberID, ranked[2].Member.MemberID})
}

func TestSummarizeFines(t *testing.T) {
	txns := []domain.Transaction{
		{Fine: 25, FinePaid: true},
		{Fine: 10, FinePaid: false},
		{Fine: 0, FinePaid: true},
		{Fine: 5, FinePaid: false},
	}
	got := domain.SummarizeFines(txns)
	assert.Equal(t, domain.FineSummary{TotalFines: 40, PaidFines: 25, UnpaidFines: 15}, got)
	assert.Equal(t, got.TotalFines, got.PaidFines+got.UnpaidFines)
	assert.Equal(t, domain.FineSummary{}, domain.SummarizeFines(nil))
}
