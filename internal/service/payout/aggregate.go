package payout

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peakline/commission-backend/internal/domain"
)

// computeTotals folds ledger rows into one payout entry per (member, currency).
// A row is dropped when its earning member or its generating referee carries
// an active exclusion; the check is symmetric because the excluded set is
// keyed by login and members appear on both sides of referral edges.
//
// Output order is fixed (member login, then currency) so that regenerating an
// unchanged period reproduces the entry set exactly.
func computeTotals(rng domain.DateRange, rows []domain.LedgerRow, excluded domain.ExcludedLogins, generatedAt time.Time) []domain.PayoutEntry {
	type key struct {
		memberID int64
		login    string
		currency string
	}

	totals := make(map[key]decimal.Decimal)
	for _, row := range rows {
		if excluded.ExcludesRow(row) {
			continue
		}
		k := key{memberID: row.MemberID, login: row.MemberLogin, currency: row.Currency}
		totals[k] = totals[k].Add(row.Amount)
	}

	entries := make([]domain.PayoutEntry, 0, len(totals))
	for k, total := range totals {
		entries = append(entries, domain.PayoutEntry{
			PeriodStart: rng.Start,
			PeriodEnd:   rng.End,
			MemberID:    k.memberID,
			MemberLogin: k.login,
			Currency:    k.currency,
			Total:       total,
			GeneratedAt: generatedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].MemberLogin != entries[j].MemberLogin {
			return entries[i].MemberLogin < entries[j].MemberLogin
		}
		return entries[i].Currency < entries[j].Currency
	})

	return entries
}
