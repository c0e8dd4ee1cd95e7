package domain

import "time"

// UnlimitedStock marks a reward without a stock cap
const UnlimitedStock = -1

// Reward is a partner benefit bought with coins
type Reward struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Type           string     `json:"type"`
	Partner        string     `json:"partner,omitempty"`
	CoinsCost      int64      `json:"coins_cost"`
	Stock          int        `json:"stock"`
	StockConsumed  int        `json:"stock_consumed"`
	AvailableUntil *time.Time `json:"available_until,omitempty"`
	Instructions   string     `json:"instructions,omitempty"`
	ExternalURL    string     `json:"external_url,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Unlimited reports whether the reward has no stock cap
func (r *Reward) Unlimited() bool {
	return r.Stock == UnlimitedStock
}

// Remaining returns the units left, or UnlimitedStock
func (r *Reward) Remaining() int {
	if r.Unlimited() {
		return UnlimitedStock
	}
	if left := r.Stock - r.StockConsumed; left > 0 {
		return left
	}
	return 0
}

// AvailableAt reports whether the reward can still be redeemed at now
func (r *Reward) AvailableAt(now time.Time) bool {
	return r.AvailableUntil == nil || !now.After(*r.AvailableUntil)
}

// RedemptionStatus tracks fulfilment of a redemption
type RedemptionStatus string

const (
	RedemptionReserved RedemptionStatus = "reserved"
	RedemptionRedeemed RedemptionStatus = "redeemed"
	RedemptionUsed     RedemptionStatus = "used"
)

// CanTransitionTo reports whether the status may move to next
func (s RedemptionStatus) CanTransitionTo(next RedemptionStatus) bool {
	switch s {
	case RedemptionReserved:
		return next == RedemptionRedeemed
	case RedemptionRedeemed:
		return next == RedemptionUsed
	}
	return false
}

// Redemption records coins exchanged for a reward
type Redemption struct {
	ID            string           `json:"id"`
	RewardID      string           `json:"reward_id"`
	ParticipantID string           `json:"participant_id"`
	Code          string           `json:"redemption_code"`
	Status        RedemptionStatus `json:"status"`
	CoinsSpent    int64            `json:"coins_spent"`
	Instructions  string           `json:"instructions,omitempty"`
	ExternalURL   string           `json:"external_url,omitempty"`
	RedeemedAt    time.Time        `json:"redeemed_at"`
	UsedAt        *time.Time       `json:"used_at,omitempty"`
}

// RedemptionView joins a redemption with the reward's current record
type RedemptionView struct {
	Redemption
	Reward *Reward `json:"reward,omitempty"`
}
