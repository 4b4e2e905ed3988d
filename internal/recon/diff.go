// Package recon computes the two-way difference between transaction
// collections under the model's near-equality.
package recon

import (
	"slices"

	"github.com/ajwalkiewicz/tcomp/internal/model"
)

// Diff holds the transactions unique to each input collection, each slice
// preserving its input's original relative order.
type Diff struct {
	OnlyInA []model.Transaction
	OnlyInB []model.Transaction
}

// Compare reconciles two transaction collections. It walks A once in
// order; for each transaction it consumes the first remaining element of
// B that is Equivalent, and transactions with no match land in the
// result. Matching is greedy: when a transaction could pair with several
// candidates inside the date window, the first in B's current order wins,
// so duplicate amounts close together can match differently depending on
// input order. There is no backtracking and no globally optimal
// assignment.
func Compare(a, b []model.Transaction) Diff {
	remaining := slices.Clone(b)
	var onlyInA []model.Transaction

	for _, txn := range a {
		i := slices.IndexFunc(remaining, txn.Equivalent)
		if i >= 0 {
			remaining = slices.Delete(remaining, i, i+1)
		} else {
			onlyInA = append(onlyInA, txn)
		}
	}

	return Diff{OnlyInA: onlyInA, OnlyInB: remaining}
}
