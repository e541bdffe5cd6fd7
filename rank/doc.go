// Package rank turns cardinal utilities into ordinal preference orders.
//
// 🚀 What is it for?
//
//	Deferred acceptance walks each proposer's preferences from best to worst,
//	while markets are usually described by cardinal utilities (a score per
//	pair). rank bridges the two:
//	  • SortDescending — per row, column indices from highest to lowest utility
//	  • InvertPermutation — per row, the ordinal rank of every column
//	  • UtilitiesFromOrder — the way back: cardinal scores consistent with an order
//
// ✨ Determinism:
//
//	Equal utilities keep ascending original column index, so the same input
//	always yields the same preference order on every platform.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvmatch/rank"
//
//	pref, err := rank.SortDescending(utils)  // M×N preference order
//	ranks, err := rank.InvertPermutation(pref) // ranks[i][pref[i][k]] == k
//
// Performance:
//
//   - SortDescending: O(R·C·log C)
//   - InvertPermutation, UtilitiesFromOrder: O(R·C)
package rank
