package eligibility

import (
	"fmt"
	"sort"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// highWeightThreshold returns the smallest weight in the top tertile of the
// event's rule weights. ok is false when all weights are equal.
func highWeightThreshold(rules []domain.EligibilityRule) (float64, bool) {
	if len(rules) == 0 {
		return 0, false
	}
	weights := make([]float64, len(rules))
	for i, r := range rules {
		weights[i] = r.EffectiveWeight()
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(weights)))
	if weights[0] == weights[len(weights)-1] {
		return 0, false
	}
	idx := (len(weights)+2)/3 - 1
	return weights[idx], true
}

func priorityFor(req domain.RequirementResult, threshold float64, tiered bool) domain.Priority {
	switch {
	case req.Percentage == 0, tiered && req.Weight >= threshold:
		return domain.PriorityHigh
	case req.Percentage < 50:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

// candidates returns the missions a participant can still work on: not
// completed, not in review, prerequisites met
func candidates(in Inputs) []domain.Mission {
	var out []domain.Mission
	for _, m := range in.Missions {
		status := in.Progress[m.ID].Status
		if status == domain.MissionStatusCompleted || status == domain.MissionStatusInReview {
			continue
		}
		locked := false
		for _, req := range m.Requirements {
			if !in.completed(req) {
				locked = true
				break
			}
		}
		if !locked {
			out = append(out, m)
		}
	}
	return out
}

func missionSuggestion(req domain.RequirementResult, action domain.ActionKind, m domain.Mission) domain.Suggestion {
	return domain.Suggestion{
		Requirement:      req.Name,
		Action:           action,
		ActionID:         m.ID,
		Title:            m.Title,
		EstimatedMinutes: m.EstimatedMinutes,
		PointsReward:     m.PointsReward,
		RequirementOrder: req.Order,
	}
}

// Suggest maps every missing requirement to remediating actions and orders
// them by priority, quick wins first. It is a pure function of its inputs.
func Suggest(ev *domain.Event, result *domain.EligibilityResult, in Inputs) []domain.Suggestion {
	threshold, tiered := highWeightThreshold(ev.Rules)
	open := candidates(in)
	pendingDocs := make(map[string]bool)
	for _, d := range in.Documents {
		if d.Status == domain.DocumentPending {
			pendingDocs[d.DocType] = true
		}
	}
	approvedDocs := in.approvedDocTypes()

	out := []domain.Suggestion{}
	for _, req := range result.MissingRequirements {
		rule := ev.Rules[req.Order]
		priority := priorityFor(req, threshold, tiered)
		var actions []domain.Suggestion

		switch rule.Kind {
		case domain.RuleMissionsCompleted:
			wanted := make(map[string]bool, len(rule.MissionIDs))
			for _, id := range rule.MissionIDs {
				wanted[id] = true
			}
			for _, m := range open {
				if wanted[m.ID] {
					actions = append(actions, missionSuggestion(req, domain.ActionCompleteMission, m))
				}
			}
		case domain.RuleMissionCount:
			for _, m := range open {
				if rule.CompetenceArea == "" || m.CompetenceArea == rule.CompetenceArea {
					actions = append(actions, missionSuggestion(req, domain.ActionCompleteMission, m))
				}
			}
		case domain.RuleMinPoints:
			for _, m := range open {
				if m.PointsReward > 0 {
					actions = append(actions, missionSuggestion(req, domain.ActionCompleteMission, m))
				}
			}
		case domain.RuleDocuments:
			minutes := rule.EstimatedMinutes
			if minutes <= 0 {
				minutes = domain.DefaultDocumentMinutes
			}
			for _, t := range rule.DocTypes {
				if approvedDocs[t] || pendingDocs[t] {
					continue
				}
				actions = append(actions, domain.Suggestion{
					Requirement:      req.Name,
					Action:           domain.ActionUploadDocument,
					ActionID:         t,
					Title:            fmt.Sprintf("Upload %s", t),
					EstimatedMinutes: minutes,
					RequirementOrder: req.Order,
				})
			}
		case domain.RuleEvidenceApproved:
			for _, m := range open {
				if m.EvidenceRequired {
					actions = append(actions, missionSuggestion(req, domain.ActionSubmitEvidence, m))
				}
			}
		}

		for i := range actions {
			actions[i].Priority = priority
		}
		out = append(out, actions...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if a.EstimatedMinutes != b.EstimatedMinutes {
			return a.EstimatedMinutes < b.EstimatedMinutes
		}
		if a.RequirementOrder != b.RequirementOrder {
			return a.RequirementOrder < b.RequirementOrder
		}
		return a.ActionID < b.ActionID
	})
	return out
}
