package eligibility

import (
	"fmt"
	"sort"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// Inputs is the participant state a rule set is evaluated against
type Inputs struct {
	Participant *domain.Participant
	Missions    []domain.Mission
	Progress    map[string]domain.MissionProgress
	Evidence    []domain.Evidence
	Documents   []domain.Document
}

func (in Inputs) completed(missionID string) bool {
	return in.Progress[missionID].Status == domain.MissionStatusCompleted
}

func (in Inputs) approvedDocTypes() map[string]bool {
	out := make(map[string]bool)
	for _, d := range in.Documents {
		if d.Status == domain.DocumentApproved {
			out[d.DocType] = true
		}
	}
	return out
}

func ratio(have, want int) float64 {
	if want <= 0 {
		return percentScale
	}
	if have >= want {
		return percentScale
	}
	return float64(have) * percentScale / float64(want)
}

// evaluateRule returns the completion percentage of one rule
func evaluateRule(rule domain.EligibilityRule, in Inputs) (float64, string) {
	switch rule.Kind {
	case domain.RuleMissionsCompleted:
		done := 0
		for _, id := range rule.MissionIDs {
			if in.completed(id) {
				done++
			}
		}
		return ratio(done, len(rule.MissionIDs)), fmt.Sprintf("%d/%d missions completed", done, len(rule.MissionIDs))

	case domain.RuleMissionCount:
		done := 0
		for _, m := range in.Missions {
			if rule.CompetenceArea != "" && m.CompetenceArea != rule.CompetenceArea {
				continue
			}
			if in.completed(m.ID) {
				done++
			}
		}
		return ratio(done, rule.Count), fmt.Sprintf("%d/%d missions completed", done, rule.Count)

	case domain.RuleMinPoints:
		var points int64
		if in.Participant != nil {
			points = in.Participant.Points
		}
		if rule.Points <= 0 || points >= rule.Points {
			return percentScale, fmt.Sprintf("%d/%d points", points, rule.Points)
		}
		return float64(points) * percentScale / float64(rule.Points), fmt.Sprintf("%d/%d points", points, rule.Points)

	case domain.RuleDocuments:
		approved := in.approvedDocTypes()
		have := 0
		for _, t := range rule.DocTypes {
			if approved[t] {
				have++
			}
		}
		return ratio(have, len(rule.DocTypes)), fmt.Sprintf("%d/%d documents approved", have, len(rule.DocTypes))

	case domain.RuleEvidenceApproved:
		approved := 0
		for _, e := range in.Evidence {
			if e.Status == domain.EvidenceApproved {
				approved++
			}
		}
		return ratio(approved, rule.Count), fmt.Sprintf("%d/%d evidences approved", approved, rule.Count)
	}
	return 0, DetailUnknownKind
}

// Evaluate scores every rule of the event and derives the overall result.
// It is a pure function of its inputs.
func Evaluate(ev *domain.Event, participantID string, in Inputs) *domain.EligibilityResult {
	res := &domain.EligibilityResult{
		EventID:             ev.ID,
		ParticipantID:       participantID,
		Requirements:        make([]domain.RequirementResult, 0, len(ev.Rules)),
		MissingRequirements: []domain.RequirementResult{},
	}

	var weighted, total float64
	for i, rule := range ev.Rules {
		pct, detail := evaluateRule(rule, in)
		pct = clamp(pct)
		w := rule.EffectiveWeight()
		r := domain.RequirementResult{
			Name:       rule.Name,
			Kind:       rule.Kind,
			Weight:     w,
			Percentage: pct,
			Met:        pct >= percentScale,
			Detail:     detail,
			Order:      i,
		}
		res.Requirements = append(res.Requirements, r)
		if !r.Met {
			res.MissingRequirements = append(res.MissingRequirements, r)
		}
		weighted += w * pct
		total += w
	}

	res.Percentage = percentScale
	if total > 0 {
		res.Percentage = clamp(weighted / total)
	}
	if len(res.MissingRequirements) == 0 {
		res.Percentage = percentScale
	}
	res.Status = domain.StatusForPercentage(res.Percentage)

	sort.SliceStable(res.MissingRequirements, func(i, j int) bool {
		return res.MissingRequirements[i].Percentage < res.MissingRequirements[j].Percentage
	})
	return res
}

func clamp(pct float64) float64 {
	switch {
	case pct < 0:
		return 0
	case pct > percentScale:
		return percentScale
	}
	return pct
}
