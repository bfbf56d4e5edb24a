package domain

import "sort"

// PopularItemsLimit is the size of the popularity ranking.
const PopularItemsLimit = 10

// DashboardStats is the aggregate shown on the landing page.
type DashboardStats struct {
	Books        BookStats        `json:"books"`
	Members      MemberStats      `json:"members"`
	Transactions TransactionStats `json:"transactions"`
	Fines        FineTotals       `json:"fines"`
}

type BookStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Issued    int64 `json:"issued"`
}

type MemberStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type TransactionStats struct {
	ActiveIssues int64 `json:"activeIssues"`
	OverdueBooks int64 `json:"overdueBooks"`
}

type FineTotals struct {
	Total  int64 `json:"total"`
	Unpaid int64 `json:"unpaid"`
}

// PopularItem is an item with the number of loans recorded against it.
type PopularItem struct {
	Item       CatalogItemSummary `json:"item"`
	IssueCount int64              `json:"issueCount"`
}

// MemberActivity is a member with the number of loans they took.
type MemberActivity struct {
	Member      MemberSummary `json:"member"`
	TotalIssues int64         `json:"totalIssues"`
}

// FineSummary splits fines into paid and unpaid.
type FineSummary struct {
	TotalFines  int64 `json:"totalFines"`
	PaidFines   int64 `json:"paidFines"`
	UnpaidFines int64 `json:"unpaidFines"`
}

// FineReport lists fined loans with their totals.
type FineReport struct {
	Transactions []Transaction `json:"transactions"`
	Summary      FineSummary   `json:"summary"`
}

// RankPopularItems orders by issue count descending, ties by item id ascending,
// and keeps the first limit entries.
func RankPopularItems(items []PopularItem, limit int) []PopularItem {
	ranked := make([]PopularItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].IssueCount != ranked[j].IssueCount {
			return ranked[i].IssueCount > ranked[j].IssueCount
		}
		return ranked[i].Item.ItemID < ranked[j].Item.ItemID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// RankMemberActivity orders by loan count descending, ties by member id ascending.
func RankMemberActivity(rows []MemberActivity) []MemberActivity {
	ranked := make([]MemberActivity, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalIssues != ranked[j].TotalIssues {
			return ranked[i].TotalIssues > ranked[j].TotalIssues
		}
		return ranked[i].Member.MemberID < ranked[j].Member.MemberID
	})
	return ranked
}

// SummarizeFines totals the fines of txns. Rows without a fine are ignored.
func SummarizeFines(txns []Transaction) FineSummary {
	var s FineSummary
	for _, t := range txns {
		if t.Fine <= 0 {
			continue
		}
		s.TotalFines += t.Fine
		if t.FinePaid {
			s.PaidFines += t.Fine
		} else {
			s.UnpaidFines += t.Fine
		}
	}
	return s
}
