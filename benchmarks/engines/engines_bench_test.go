package engines_bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/memory"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/league"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/ledger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/mission"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/rewards"
)

// Compare runs with: go test -bench . -count 10 ./benchmarks/... | benchstat -

var start = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func BenchmarkRank(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		rows := make([]domain.Standing, size)
		for i := range rows {
			rows[i] = domain.Standing{
				ParticipantID: fmt.Sprintf("p-%04d", i),
				WeeklyXP:      int64((i * 7919) % 500),
				CurrentStreak: i % 9,
			}
		}
		b.Run(fmt.Sprintf("members=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				in := append([]domain.Standing(nil), rows...)
				_ = league.Rank(in)
			}
		})
	}
}

func BenchmarkGradeQuiz(b *testing.B) {
	quiz := domain.QuizContent{}
	answers := make(map[int]int)
	for i := 0; i < 20; i++ {
		quiz.Questions = append(quiz.Questions, domain.QuizQuestion{
			Question:      fmt.Sprintf("q%d", i),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
		})
		answers[i] = (i * 3) % 4
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := mission.GradeQuiz(quiz, answers); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRedeem(b *testing.B) {
	ctx := context.Background()
	store := memory.NewStore()
	bus := event.NewMemoryBus()
	clk := clock.NewSimulatedClock(start)

	participants := ledger.NewService(store.Participants(), store.Achievements(), bus, clk)
	svc := rewards.NewService(store.Rewards(), bus, clk)

	if err := store.UpsertReward(ctx, &domain.Reward{ID: "cert", Title: "Certificate", CoinsCost: 1, Stock: domain.UnlimitedStock}); err != nil {
		b.Fatal(err)
	}
	p, err := participants.Register(ctx, ledger.RegisterInput{Name: "Bench", Email: "bench@example.com", City: "Guayaquil"})
	if err != nil {
		b.Fatal(err)
	}
	if _, err := participants.Credit(ctx, p.ID, domain.Credit{Coins: int64(b.N) + 1}); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Redeem(ctx, p.ID, "cert"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCredit_Parallel(b *testing.B) {
	ctx := context.Background()
	store := memory.NewStore()
	clk := clock.NewSimulatedClock(start)
	participants := ledger.NewService(store.Participants(), store.Achievements(), event.NewMemoryBus(), clk)

	p, err := participants.Register(ctx, ledger.RegisterInput{Name: "Bench", Email: "bench@example.com", City: "Guayaquil"})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := participants.Credit(ctx, p.ID, domain.Credit{Points: 1, XP: 1}); err != nil {
				b.Fatal(err)
			}
		}
	})
}
