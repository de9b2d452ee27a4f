package report

import (
	"sort"
	"time"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
)

// DonorRank is one entry in the donor ranking
type DonorRank struct {
	UserID         string
	Email          string
	DisplayName    string
	TotalCentavos  int64
	AccountCreated time.Time
}

// Summary is the aggregation view's output: per-category totals, the grand
// total, and the donor ranking. All totals are in centavos.
type Summary struct {
	PerCategoryTotal map[entity.Category]int64
	GrandTotal       int64
	DonorCount       int
	DonorRanking     []DonorRank
}

// Summarize derives a summary from a snapshot of the ledger and the known
// accounts. It is a pure function: the same inputs always produce the same
// summary, and nothing is mutated.
//
// With no filter, every enumerated category is reported (zero included) and
// the category totals sum to the grand total. With a filter, only matching
// events contribute and only the filtered category's total is reported.
//
// Donor totals are computed from the events themselves, not the cached
// counters, because the ledger is authoritative. Ranking is by total
// descending; ties break by earliest account creation so the order is
// deterministic.
func Summarize(events []entity.DonationEvent, accounts []entity.UserAccount, filterCategory *entity.Category) Summary {
	perCategory := make(map[entity.Category]int64)
	if filterCategory == nil {
		for _, c := range entity.Categories() {
			perCategory[c] = 0
		}
	} else {
		perCategory[*filterCategory] = 0
	}

	perDonor := make(map[string]int64)
	var grandTotal int64

	for _, ev := range events {
		if ev.Status != entity.DonationCompleted {
			continue
		}
		if filterCategory != nil && ev.Category != *filterCategory {
			continue
		}
		perCategory[ev.Category] += ev.AmountCentavos
		perDonor[ev.DonorID] += ev.AmountCentavos
		grandTotal += ev.AmountCentavos
	}

	ranking := make([]DonorRank, 0, len(accounts))
	for _, acc := range accounts {
		ranking = append(ranking, DonorRank{
			UserID:         acc.ID,
			Email:          acc.Email,
			DisplayName:    acc.DisplayName,
			TotalCentavos:  perDonor[acc.ID],
			AccountCreated: acc.CreatedAt,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].TotalCentavos != ranking[j].TotalCentavos {
			return ranking[i].TotalCentavos > ranking[j].TotalCentavos
		}
		return ranking[i].AccountCreated.Before(ranking[j].AccountCreated)
	})

	return Summary{
		PerCategoryTotal: perCategory,
		GrandTotal:       grandTotal,
		DonorCount:       len(accounts),
		DonorRanking:     ranking,
	}
}
