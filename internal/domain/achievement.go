package domain

// Achievement is a badge earned by completing missions or reaching points
type Achievement struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	MissionsRequired int    `json:"missions_required"`
	PointsRequired   int64  `json:"points_required"`
}

// EarnedBy reports whether the thresholds are met
func (a Achievement) EarnedBy(missionsCompleted int, points int64) bool {
	return missionsCompleted >= a.MissionsRequired && points >= a.PointsRequired
}
