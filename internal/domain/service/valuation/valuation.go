// Package valuation computes trade totals and classifies a proposal into a
// fairness band from the offer/want ratio.
package valuation

import (
	"cmp"
	"math"
	"math/big"

	"github.com/samber/lo"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
)

// Band thresholds as percentages of the want total.
const (
	bigWinBelow = 85
	winBelow    = 95
	fairUpTo    = 105
	lossUpTo    = 115
)

// safeOperand bounds values whose product with 100 fits into int64.
const safeOperand = math.MaxInt64 / 128

// Side is the summary of one side of a proposal. Count is kept apart from
// Total so an empty side is distinguishable from a side worth zero.
type Side struct {
	Total int64
	Count int
}

type Result struct {
	Status value.Status
	// Delta is offer minus want; positive means the offering side overpays.
	Delta int64
}

type Evaluation struct {
	Offer  Side
	Want   Side
	Delta  int64
	Status value.Status
}

func Total(items []entity.Item) int64 {
	return lo.SumBy(items, func(it entity.Item) int64 { return it.Value })
}

func SideOf(items []entity.Item) Side {
	return Side{Total: Total(items), Count: len(items)}
}

// Classify places offer/want into a band:
//
//	ratio < 0.85          BigWin
//	0.85 <= ratio < 0.95  Win
//	0.95 <= ratio <= 1.05 Fair
//	1.05 < ratio <= 1.15  Loss
//	ratio > 1.15          BigLoss
//
// Ratios are never materialised as floats. A want side worth zero with items
// on both sides is BigLoss.
func Classify(offer, want Side) Result {
	res := Result{Delta: offer.Total - want.Total}

	switch {
	case offer.Count == 0 || want.Count == 0:
		res.Status = value.StatusIncomplete
	case want.Total == 0:
		res.Status = value.StatusBigLoss
	default:
		res.Status = band(offer.Total, want.Total)
	}

	return res
}

func Evaluate(p entity.Proposal) Evaluation {
	offer, want := SideOf(p.Offer), SideOf(p.Want)
	res := Classify(offer, want)

	return Evaluation{
		Offer:  offer,
		Want:   want,
		Delta:  res.Delta,
		Status: res.Status,
	}
}

func band(offer, want int64) value.Status {
	switch {
	case compareScaled(offer, want, bigWinBelow) < 0:
		return value.StatusBigWin
	case compareScaled(offer, want, winBelow) < 0:
		return value.StatusWin
	case compareScaled(offer, want, fairUpTo) <= 0:
		return value.StatusFair
	case compareScaled(offer, want, lossUpTo) <= 0:
		return value.StatusLoss
	default:
		return value.StatusBigLoss
	}
}

// compareScaled compares offer/want against pct/100 and returns -1, 0 or 1.
// want must be non-zero.
func compareScaled(offer, want, pct int64) int {
	if !fitsScaled(offer) || !fitsScaled(want) {
		return compareBig(offer, want, pct)
	}

	if want < 0 {
		offer, want = -offer, -want
	}

	return cmp.Compare(offer*100, want*pct)
}

func fitsScaled(v int64) bool {
	return v > -safeOperand && v < safeOperand
}

func compareBig(offer, want, pct int64) int {
	o, w := big.NewInt(offer), big.NewInt(want)
	if w.Sign() < 0 {
		o.Neg(o)
		w.Neg(w)
	}

	lhs := new(big.Int).Mul(o, big.NewInt(100))
	rhs := new(big.Int).Mul(w, big.NewInt(pct))

	return lhs.Cmp(rhs)
}
