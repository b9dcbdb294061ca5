package cash

import "github.com/shopspring/decimal"

// Bootstrap is the float used when no shift has ever closed.
type Bootstrap struct {
	Cash  decimal.Decimal
	Coins decimal.Decimal
}

// Carry is what a closed shift hands over to the next one.
type Carry struct {
	Cash  decimal.Decimal
	Coins decimal.Decimal
}

// Initial is the float computed for a new shift.
type Initial struct {
	Cash           decimal.Decimal
	Coins          decimal.Decimal
	PendingApplied decimal.Decimal
	Bootstrapped   bool
}

// CarryFromClose computes the carry persisted on a shift at close: counted
// cash minus the shift's own adjustments, coins unchanged.
func CarryFromClose(countedCash, countedCoins, shiftAdjustments decimal.Decimal) Carry {
	return Carry{
		Cash:  countedCash.Sub(shiftAdjustments),
		Coins: countedCoins,
	}
}

// NextInitialCash is max(carry - pending, 0).
func NextInitialCash(carry decimal.Decimal, pending decimal.Decimal) decimal.Decimal {
	return clampZero(carry.Sub(pending))
}

// NextInitialCoins passes coins through, clamped at zero.
func NextInitialCoins(carry decimal.Decimal) decimal.Decimal {
	return clampZero(carry)
}

// NextInitial resolves the opening float. A nil last means no shift has
// closed yet and the bootstrap values stand in for the carry.
func NextInitial(last *Carry, pending decimal.Decimal, b Bootstrap) Initial {
	carry := Carry{Cash: b.Cash, Coins: b.Coins}
	if last != nil {
		carry = *last
	}
	return Initial{
		Cash:           NextInitialCash(carry.Cash, pending),
		Coins:          NextInitialCoins(carry.Coins),
		PendingApplied: pending,
		Bootstrapped:   last == nil,
	}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
