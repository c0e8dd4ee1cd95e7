package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
)

// Types lists the domain events that produce notifications
var Types = []event.Type{
	event.MissionCompleted,
	event.MissionQuizFailed,
	event.EvidenceReviewed,
	event.RewardRedeemed,
	event.RedemptionUsed,
	event.LeagueRolledOver,
}

// FromEvent builds the notification for evt. ok is false for event types
// that are not surfaced to participants.
func FromEvent(evt event.Event) (msg Message, ok bool, err error) {
	msg = Message{ID: uuid.NewString(), Type: string(evt.Type), Timestamp: time.Now().Unix()}

	switch evt.Type {
	case event.MissionCompleted:
		p, err := event.DecodePayload[event.MissionCompletedPayloadV1](evt.Payload)
		if err != nil {
			return msg, false, err
		}
		msg.ParticipantID = p.ParticipantID
		msg.Title = "Misión completada"
		msg.Body = fmt.Sprintf("Ganaste %d puntos y %d monedas.", p.PointsAwarded, p.CoinsAwarded)

	case event.MissionQuizFailed:
		p, err := event.DecodePayload[event.MissionQuizFailedPayloadV1](evt.Payload)
		if err != nil {
			return msg, false, err
		}
		msg.ParticipantID = p.ParticipantID
		msg.Title = "Quiz no aprobado"
		msg.Body = fmt.Sprintf("Obtuviste %.0f%%. Podrás intentarlo de nuevo el %s.", p.Score, p.RetryAfter.UTC().Format("2006-01-02"))

	case event.EvidenceReviewed:
		p, err := event.DecodePayload[event.EvidencePayloadV1](evt.Payload)
		if err != nil {
			return msg, false, err
		}
		msg.ParticipantID = p.ParticipantID
		msg.Title = "Evidencia revisada"
		msg.Body = fmt.Sprintf("Tu evidencia para %s quedó en estado %s.", missionLabel(p), p.Status)
		if p.Notes != "" {
			msg.Body += " " + p.Notes
		}

	case event.RewardRedeemed, event.RedemptionUsed:
		p, err := event.DecodePayload[event.RewardRedeemedPayloadV1](evt.Payload)
		if err != nil {
			return msg, false, err
		}
		msg.ParticipantID = p.ParticipantID
		if evt.Type == event.RewardRedeemed {
			msg.Title = "Recompensa canjeada"
			msg.Body = fmt.Sprintf("Tu código es %s.", p.RedemptionCode)
		} else {
			msg.Title = "Código utilizado"
			msg.Body = fmt.Sprintf("El código %s fue usado.", p.RedemptionCode)
		}

	case event.LeagueRolledOver:
		p, err := event.DecodePayload[event.LeagueRolledOverPayloadV1](evt.Payload)
		if err != nil {
			return msg, false, err
		}
		msg.Title = "Nueva semana de ligas"
		msg.Body = fmt.Sprintf("Comenzó el ciclo %s.", p.CurrentCycle)

	default:
		return msg, false, nil
	}
	return msg, true, nil
}

func missionLabel(p event.EvidencePayloadV1) string {
	if p.MissionTitle != "" {
		return p.MissionTitle
	}
	return p.MissionID
}
