package mission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

func threeQuestionQuiz() domain.QuizContent {
	q := domain.QuizQuestion{Question: "?", Options: []string{"a", "b", "c"}, CorrectAnswer: 1}
	return domain.QuizContent{Questions: []domain.QuizQuestion{q, q, q}}
}

func TestGradeQuiz(t *testing.T) {
	tests := []struct {
		name      string
		answers   map[int]int
		wantScore float64
		wantPass  bool
		wantErr   bool
	}{
		{"all correct", map[int]int{0: 1, 1: 1, 2: 1}, 100, true, false},
		{"two of three fails", map[int]int{0: 1, 1: 1, 2: 0}, 200.0 / 3, false, false},
		{"none correct", map[int]int{0: 0, 1: 2, 2: 0}, 0, false, false},
		{"missing answer", map[int]int{0: 1, 1: 1}, 0, false, true},
		{"no answers", nil, 0, false, true},
		{"unknown question", map[int]int{0: 1, 1: 1, 5: 1}, 0, false, true},
		{"option out of range", map[int]int{0: 1, 1: 1, 2: 3}, 0, false, true},
		{"negative option", map[int]int{0: 1, 1: 1, 2: -1}, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := GradeQuiz(threeQuestionQuiz(), tt.answers)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantScore, res.Score, 0.001)
			assert.Equal(t, tt.wantPass, res.Passed)
			assert.Equal(t, 3, res.Total)
		})
	}
}

func TestGradeQuiz_ThresholdIsInclusive(t *testing.T) {
	q := domain.QuizQuestion{Options: []string{"a", "b"}, CorrectAnswer: 0}
	quiz := domain.QuizContent{Questions: make([]domain.QuizQuestion, 10)}
	for i := range quiz.Questions {
		quiz.Questions[i] = q
	}
	answers := map[int]int{}
	for i := 0; i < 10; i++ {
		answers[i] = 1
		if i < 7 {
			answers[i] = 0
		}
	}

	res, err := GradeQuiz(quiz, answers)
	require.NoError(t, err)
	assert.True(t, res.Passed, "7 of 10 is exactly 70%")
}

func TestGradeQuiz_NoQuestions(t *testing.T) {
	_, err := GradeQuiz(domain.QuizContent{}, map[int]int{0: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestContentOf(t *testing.T) {
	assert.Equal(t, domain.ContentKindQuiz, contentOf(&domain.Mission{Type: domain.MissionTypeMiniQuiz}).Kind())
	assert.Equal(t, domain.ContentKindEvidence, contentOf(&domain.Mission{Type: domain.MissionTypePracticalTask, EvidenceRequired: true}).Kind())
	assert.Equal(t, domain.ContentKindPassive, contentOf(&domain.Mission{Type: domain.MissionTypeVideo}).Kind())
}
