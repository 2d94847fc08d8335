package invoiceservice

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/pkg/money"
)

// LineValue pairs a line item with its attributed share of the total.
type LineValue struct {
	Line   domain.LineItem
	Amount decimal.Decimal
}

// TransactionSpec is one posting the escrow coordinator should make: the
// summed attributed amounts for a (destination user, account, category)
// triple. A zero UserID means the platform itself.
type TransactionSpec struct {
	UserID   int
	Account  domain.Account
	Category domain.TransactionCategory
	Amount   decimal.Decimal
}

func sortedLines(lines []domain.LineItem) []domain.LineItem {
	sorted := make([]domain.LineItem, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// carve removes amount proportionally from the already-evaluated lines the
// fee cascades under. Negative subtotals (discounts) are never reduced.
func carve(raw []decimal.Decimal, sorted []domain.LineItem, upTo int, fee *domain.LineItem, amount decimal.Decimal) {
	base := decimal.Zero
	for j := 0; j < upTo; j++ {
		if fee.CascadesOver(sorted[j].Type) && raw[j].IsPositive() {
			base = base.Add(raw[j])
		}
	}
	if base.IsZero() {
		return
	}
	for j := 0; j < upTo; j++ {
		if fee.CascadesOver(sorted[j].Type) && raw[j].IsPositive() {
			raw[j] = raw[j].Sub(amount.Mul(raw[j]).Div(base))
		}
	}
}

// Subtotals folds the line item set in (priority, id) order and returns the
// invoice total along with each line's attributed amount, rounded so the
// attributed amounts always sum to exactly the total. The fold is a pure
// function of the line set: no mutation, deterministic on every call.
func Subtotals(lines []domain.LineItem) (decimal.Decimal, []LineValue) {
	sorted := sortedLines(lines)
	raw := make([]decimal.Decimal, len(sorted))
	total := decimal.Zero
	one := decimal.NewFromInt(1)

	for i := range sorted {
		line := &sorted[i]
		multiplier := money.PercentMultiplier(line.Percentage)
		switch {
		case line.Cascades():
			// cascadeBase is the running subtotal of the taxed types.
			base := decimal.Zero
			for j := 0; j < i; j++ {
				if line.CascadesOver(sorted[j].Type) && raw[j].IsPositive() {
					base = base.Add(raw[j])
				}
			}
			var contribution decimal.Decimal
			if line.BackIntoPercentage {
				contribution = base.Mul(multiplier).Div(one.Add(multiplier)).Add(line.Amount)
			} else {
				contribution = base.Mul(multiplier).Add(line.Amount)
			}
			raw[i] = contribution
			carve(raw, sorted, i, line, contribution)
		case !line.Percentage.IsZero():
			var contribution decimal.Decimal
			if line.BackIntoPercentage {
				// The fee hides inside the grand total instead of stacking
				// on top of it, so it must equal pct of the final figure:
				// (base+flat) * m/(1-m) leaves fee == m * grand.
				initial := total.Add(line.Amount)
				contribution = initial.Mul(multiplier).Div(one.Sub(multiplier)).Add(line.Amount)
			} else {
				contribution = total.Mul(multiplier).Add(line.Amount)
			}
			raw[i] = contribution
			total = total.Add(contribution)
		default:
			raw[i] = line.Amount
			total = total.Add(line.Amount)
		}
	}

	total = money.RoundCents(total)
	values := make([]LineValue, len(sorted))
	roundedSum := decimal.Zero
	for i := range sorted {
		values[i] = LineValue{Line: sorted[i], Amount: money.RoundCents(raw[i])}
		roundedSum = roundedSum.Add(values[i].Amount)
	}
	distributeDifference(total.Sub(roundedSum), values)
	return total, values
}

// distributeDifference pushes leftover pennies onto lines one cent at a
// time. A positive difference lands on the highest-priority lines first, a
// negative one is taken from the lowest, largest amounts first within a
// priority. This keeps the discrete line values summing to the total.
func distributeDifference(difference decimal.Decimal, values []LineValue) {
	if difference.IsZero() || len(values) == 0 {
		return
	}
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	positive := difference.IsPositive()
	sort.SliceStable(order, func(a, b int) bool {
		la, lb := values[order[a]], values[order[b]]
		if la.Line.Priority != lb.Line.Priority {
			if positive {
				return la.Line.Priority > lb.Line.Priority
			}
			return la.Line.Priority < lb.Line.Priority
		}
		if !la.Amount.Equal(lb.Amount) {
			return la.Amount.GreaterThan(lb.Amount)
		}
		return la.Line.ID > lb.Line.ID
	})
	step := money.Cent
	if !positive {
		step = money.Cent.Neg()
	}
	remaining := difference
	for i := 0; !remaining.IsZero(); i = (i + 1) % len(order) {
		values[order[i]].Amount = values[order[i]].Amount.Add(step)
		remaining = remaining.Sub(step)
	}
}

// Total reckons the line items to a single owed amount.
func Total(lines []domain.LineItem) decimal.Decimal {
	total, _ := Subtotals(lines)
	return total
}

// TransactionSpecs groups the attributed line amounts by destination. Zero
// amounts are dropped; the result is sorted for deterministic posting order.
func TransactionSpecs(lines []domain.LineItem) []TransactionSpec {
	_, values := Subtotals(lines)
	type key struct {
		userID   int
		account  domain.Account
		category domain.TransactionCategory
	}
	grouped := make(map[key]decimal.Decimal)
	for _, value := range values {
		userID := 0
		if value.Line.DestinationUserID != nil {
			userID = *value.Line.DestinationUserID
		}
		k := key{userID: userID, account: value.Line.DestinationAccount, category: domain.CategoryFor(value.Line.Type)}
		grouped[k] = grouped[k].Add(value.Amount)
	}
	specs := make([]TransactionSpec, 0, len(grouped))
	for k, amount := range grouped {
		if amount.IsZero() {
			continue
		}
		specs = append(specs, TransactionSpec{UserID: k.userID, Account: k.account, Category: k.category, Amount: amount})
	}
	sort.Slice(specs, func(i, j int) bool {
		if specs[i].Account != specs[j].Account {
			return specs[i].Account < specs[j].Account
		}
		if specs[i].Category != specs[j].Category {
			return specs[i].Category < specs[j].Category
		}
		return specs[i].UserID < specs[j].UserID
	})
	return specs
}

// SolveBackInto finds the flat amount a line must absorb so that the
// declared target total is reproduced once the percentage fee is applied on
// top of the base. A negative solution means the target is below the
// platform minimum and must fail validation rather than silently charge
// zero.
func SolveBackInto(target, baseTotal, percentage decimal.Decimal) (decimal.Decimal, error) {
	multiplier := money.PercentMultiplier(percentage)
	amount := target.Sub(baseTotal.Mul(decimal.NewFromInt(1).Add(multiplier)))
	if amount.IsNegative() {
		return decimal.Zero, domain.NewValidationError("amount", "configured price is below the platform minimum")
	}
	return money.RoundCents(amount), nil
}
