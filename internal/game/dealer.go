package game

// dealerStand is the total at which the dealer always stands. A soft 17 is
// treated exactly like a hard 17.
const dealerStand = 17

// DealerShouldHit is the fixed house policy: hit below 17, stand at 17 or
// above. Pure function of the dealer's current hand.
func DealerShouldHit(h Hand) bool {
	return h.Score() < dealerStand
}
