package mission

import (
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// contentOf returns the mission content, defaulting to an empty variant of
// the kind implied by the mission type
func contentOf(m *domain.Mission) domain.MissionContent {
	if m.Content != nil {
		return m.Content
	}
	switch domain.ContentKindFor(m.Type, m.EvidenceRequired) {
	case domain.ContentKindQuiz:
		return domain.QuizContent{}
	case domain.ContentKindEvidence:
		return domain.EvidenceContent{}
	default:
		return domain.PassiveContent{}
	}
}

// GradeQuiz scores answers against the quiz. Every question must be answered
// exactly once with an option in range. The quiz passes at 70% or more.
func GradeQuiz(quiz domain.QuizContent, answers map[int]int) (*domain.QuizResult, error) {
	total := len(quiz.Questions)
	if total == 0 {
		return nil, domain.Validationf(ErrMsgNoQuestions)
	}
	if len(answers) == 0 {
		return nil, domain.Validationf(ErrMsgAnswersMissing)
	}
	if len(answers) != total {
		return nil, domain.Validationf(ErrMsgAnswerCount, total, len(answers))
	}

	correct := 0
	for idx, option := range answers {
		if idx < 0 || idx >= total {
			return nil, domain.Validationf(ErrMsgAnswerIndex, idx)
		}
		q := quiz.Questions[idx]
		if option < 0 || option >= len(q.Options) {
			return nil, domain.Validationf(ErrMsgAnswerOption, option, idx)
		}
		if option == q.CorrectAnswer {
			correct++
		}
	}

	return &domain.QuizResult{
		Correct: correct,
		Total:   total,
		Score:   float64(correct) * 100 / float64(total),
		Passed:  correct*100 >= domain.QuizPassPercent*total,
	}, nil
}
