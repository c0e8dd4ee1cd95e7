package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/generated"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

func toParticipant(row generated.Participant) *domain.Participant {
	return &domain.Participant{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		City:           row.City,
		Cohort:         row.Cohort,
		Points:         row.Points,
		Coins:          row.Coins,
		CurrentStreak:  int(row.CurrentStreak),
		BestStreak:     int(row.BestStreak),
		WeeklyXP:       row.WeeklyXp,
		XPCycle:        row.XpCycle,
		Rank:           domain.Rank(row.Rank),
		LastActivityOn: utcPtr(row.LastActivityOn),
		CreatedAt:      utc(row.CreatedAt),
		UpdatedAt:      utc(row.UpdatedAt),
	}
}

func toMission(row generated.Mission) (*domain.Mission, error) {
	content, err := domain.DecodeContent(domain.ContentKind(row.ContentKind), row.Content)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToDecodeContent, row.ID, err)
	}
	requirements := row.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return &domain.Mission{
		ID:               row.ID,
		Title:            row.Title,
		Description:      row.Description,
		Type:             domain.MissionType(row.Type),
		PointsReward:     row.PointsReward,
		CoinsReward:      row.CoinsReward,
		CompetenceArea:   row.CompetenceArea,
		DifficultyLevel:  int(row.DifficultyLevel),
		EstimatedMinutes: int(row.EstimatedMinutes),
		EvidenceRequired: row.EvidenceRequired,
		AutoApprove:      row.AutoApprove,
		Position:         int(row.Position),
		Requirements:     requirements,
		Content:          content,
		CreatedAt:        utc(row.CreatedAt),
	}, nil
}

func missionParams(m *domain.Mission) (generated.UpsertMissionParams, error) {
	kind := domain.ContentKindFor(m.Type, m.EvidenceRequired)
	content := []byte(EmptyJSONObject)
	if m.Content != nil {
		kind = m.Content.Kind()
		raw, err := json.Marshal(m.Content)
		if err != nil {
			return generated.UpsertMissionParams{}, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalContent, err)
		}
		content = raw
	}
	requirements := m.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return generated.UpsertMissionParams{
		ID:               m.ID,
		Title:            m.Title,
		Description:      m.Description,
		Type:             string(m.Type),
		PointsReward:     m.PointsReward,
		CoinsReward:      m.CoinsReward,
		CompetenceArea:   m.CompetenceArea,
		DifficultyLevel:  int32(m.DifficultyLevel),
		EstimatedMinutes: int32(m.EstimatedMinutes),
		EvidenceRequired: m.EvidenceRequired,
		AutoApprove:      m.AutoApprove,
		Position:         int32(m.Position),
		Requirements:     requirements,
		ContentKind:      string(kind),
		Content:          content,
		CreatedAt:        m.CreatedAt,
	}, nil
}

func toProgress(row generated.MissionProgress) (*domain.MissionProgress, error) {
	p := &domain.MissionProgress{
		ParticipantID: row.ParticipantID,
		MissionID:     row.MissionID,
		Status:        domain.MissionStatus(row.Status),
		LastAttemptAt: utcPtr(row.LastAttemptAt),
		CooldownUntil: utcPtr(row.CooldownUntil),
		EvidenceID:    derefStr(row.EvidenceID),
		ReviewNotes:   row.ReviewNotes,
		Attempts:      int(row.Attempts),
		CompletedAt:   utcPtr(row.CompletedAt),
		UpdatedAt:     utc(row.UpdatedAt),
	}
	if len(row.LastResult) > 0 {
		var result domain.QuizResult
		if err := json.Unmarshal(row.LastResult, &result); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalResult, err)
		}
		p.LastResult = &result
	}
	return p, nil
}

func toProgressList(rows []generated.MissionProgress) ([]domain.MissionProgress, error) {
	out := make([]domain.MissionProgress, 0, len(rows))
	for _, row := range rows {
		p, err := toProgress(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func toAttempt(row generated.MissionAttempt) domain.MissionAttempt {
	return domain.MissionAttempt{
		ID:            row.ID,
		ParticipantID: row.ParticipantID,
		MissionID:     row.MissionID,
		Outcome:       domain.AttemptOutcome(row.Outcome),
		Score:         row.Score,
		AttemptedAt:   utc(row.AttemptedAt),
	}
}

func toEvidence(row generated.Evidence) *domain.Evidence {
	return &domain.Evidence{
		ID:            row.ID,
		MissionID:     row.MissionID,
		ParticipantID: row.ParticipantID,
		FileRef:       row.FileRef,
		FileName:      row.FileName,
		ContentType:   row.ContentType,
		SizeBytes:     row.SizeBytes,
		Description:   row.Description,
		Status:        domain.EvidenceStatus(row.Status),
		ReviewNotes:   row.ReviewNotes,
		CreatedAt:     utc(row.CreatedAt),
		ReviewedAt:    utcPtr(row.ReviewedAt),
	}
}

func toDocument(row generated.Document) *domain.Document {
	return &domain.Document{
		ID:            row.ID,
		ParticipantID: row.ParticipantID,
		DocType:       row.DocType,
		FileRef:       row.FileRef,
		FileName:      row.FileName,
		Status:        domain.DocumentStatus(row.Status),
		CreatedAt:     utc(row.CreatedAt),
		ReviewedAt:    utcPtr(row.ReviewedAt),
	}
}

func toEvent(row generated.Event) (*domain.Event, error) {
	var rules []domain.EligibilityRule
	if len(row.Rules) > 0 {
		if err := json.Unmarshal(row.Rules, &rules); err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToUnmarshalRules, row.ID, err)
		}
	}
	return &domain.Event{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Location:    row.Location,
		Organizer:   row.Organizer,
		Date:        utc(row.Date),
		Capacity:    int(row.Capacity),
		Rules:       rules,
	}, nil
}

func toAchievement(row generated.Achievement) domain.Achievement {
	return domain.Achievement{
		ID:               row.ID,
		Title:            row.Title,
		Description:      row.Description,
		Icon:             row.Icon,
		MissionsRequired: int(row.MissionsRequired),
		PointsRequired:   row.PointsRequired,
	}
}

func toReward(row generated.Reward) *domain.Reward {
	return &domain.Reward{
		ID:             row.ID,
		Title:          row.Title,
		Description:    row.Description,
		Type:           row.Type,
		Partner:        row.Partner,
		CoinsCost:      row.CoinsCost,
		Stock:          int(row.Stock),
		StockConsumed:  int(row.StockConsumed),
		AvailableUntil: utcPtr(row.AvailableUntil),
		Instructions:   row.Instructions,
		ExternalURL:    row.ExternalUrl,
		CreatedAt:      utc(row.CreatedAt),
	}
}

func toRedemption(row generated.Redemption) *domain.Redemption {
	return &domain.Redemption{
		ID:            row.ID,
		RewardID:      row.RewardID,
		ParticipantID: row.ParticipantID,
		Code:          row.Code,
		Status:        domain.RedemptionStatus(row.Status),
		CoinsSpent:    row.CoinsSpent,
		Instructions:  row.Instructions,
		ExternalURL:   row.ExternalUrl,
		RedeemedAt:    utc(row.RedeemedAt),
		UsedAt:        utcPtr(row.UsedAt),
	}
}

func toLeague(row generated.League) (*domain.League, error) {
	var rewards []domain.LeagueReward
	if len(row.Rewards) > 0 {
		if err := json.Unmarshal(row.Rewards, &rewards); err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToUnmarshalRewards, row.ID, err)
		}
	}
	return &domain.League{
		ID:       row.ID,
		Slug:     row.Slug,
		Type:     domain.LeagueType(row.Type),
		City:     row.City,
		CycleID:  row.CycleID,
		StartsAt: utc(row.StartsAt),
		EndsAt:   utc(row.EndsAt),
		Status:   domain.LeagueStatus(row.Status),
		Rewards:  rewards,
	}, nil
}

func toLeagues(rows []generated.League) ([]domain.League, error) {
	out := make([]domain.League, 0, len(rows))
	for _, row := range rows {
		l, err := toLeague(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, nil
}

func toStandings(rows []generated.ListStandingsRow) []domain.Standing {
	out := make([]domain.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Standing{
			ParticipantID: row.ParticipantID,
			Name:          row.Name,
			WeeklyXP:      row.WeeklyXp,
			CurrentStreak: int(row.CurrentStreak),
		})
	}
	return out
}
