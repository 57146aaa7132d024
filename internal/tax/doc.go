// Package tax computes individual income tax under the progressive slab regime.
//
// The calculator is a pure function of (income, category). It holds no state,
// performs no I/O and is safe to call from any number of goroutines. Money is
// represented with decimal.Decimal so slab products accumulate without binary
// floating-point drift.
//
// Exemption and slabs interact in one specific way: once income exceeds the
// category exemption, the amount above the exemption is run through the slab
// table starting from the first (0%) slab. The slab bounds are not shifted by
// the exemption.
package tax
