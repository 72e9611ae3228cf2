package v1

import (
	"github.com/safecircle/peer_support_system/internal/models"
)

// DTOToSeekerProfile преобразует запрос подбора в транзиентный профиль искателя
func DTOToSeekerProfile(dto MatchRequest) *models.SeekerProfile {
	return &models.SeekerProfile{
		IncidentType:   dto.IncidentType,
		LocationRegion: dto.LocationRegion,
		Language:       dto.Language,
		AgeRange:       dto.AgeRange,
		Severity:       dto.Severity,
		Tags:           dto.Tags,
		DisplayName:    dto.DisplayName,
		ReportID:       dto.ReportID,
		ParticipantID:  dto.ParticipantID,
	}
}

// ModelToCircleResponse преобразует доменную модель круга в DTO для ответа
func ModelToCircleResponse(model *models.Circle) CircleResponse {
	return CircleResponse{
		ID:                      model.ID,
		Name:                    model.Name,
		Description:             model.Description,
		IncidentType:            model.IncidentType,
		LocationRegion:          model.LocationRegion,
		Language:                model.Language,
		MemberCount:             model.MemberCount,
		MaxMembers:              model.MaxMembers,
		Tags:                    model.Tags,
		AverageHelpfulnessScore: model.AverageHelpfulnessScore,
		CreatedAt:               model.CreatedAt,
	}
}

// ModelToMemberResponse преобразует доменную модель участника в DTO для ответа
func ModelToMemberResponse(model *models.CircleMember) MemberResponse {
	return MemberResponse{
		ParticipantID:    model.ParticipantID,
		DisplayName:      model.DisplayName,
		JoinedAt:         model.JoinedAt,
		MessageCount:     model.MessageCount,
		HelpfulnessScore: model.HelpfulnessScore,
	}
}

// ModelsToMemberResponses преобразует слайс моделей участников в слайс DTO
func ModelsToMemberResponses(members []*models.CircleMember) []MemberResponse {
	responses := make([]MemberResponse, len(members))
	for i, m := range members {
		responses[i] = ModelToMemberResponse(m)
	}
	return responses
}

// ModelToMessageResponse преобразует доменную модель сообщения в DTO для
// ответа. Поля риск-оценки - внутренние для модерации и наружу не отдаются.
func ModelToMessageResponse(model *models.CircleMessage) *MessageResponse {
	return &MessageResponse{
		ID:                model.ID,
		CircleID:          model.CircleID,
		SenderID:          model.SenderID,
		SenderDisplayName: model.SenderDisplayName,
		Body:              model.Body,
		ServerTimestamp:   model.ServerTimestamp,
		Reactions:         model.Reactions,
		Edited:            model.Edited,
		EditedAt:          model.EditedAt,
	}
}

// ModelsToMessageResponses преобразует слайс моделей сообщений в слайс DTO
func ModelsToMessageResponses(msgs []*models.CircleMessage) []*MessageResponse {
	responses := make([]*MessageResponse, len(msgs))
	for i, m := range msgs {
		responses[i] = ModelToMessageResponse(m)
	}
	return responses
}

// MatchResultToResponse преобразует результат подбора в DTO для ответа
func MatchResultToResponse(result *models.MatchResult) MatchResponse {
	return MatchResponse{
		Circle:      ModelToCircleResponse(result.Circle),
		Member:      ModelToMemberResponse(result.Member),
		MatchReason: result.MatchReason,
		IsNewCircle: result.IsNewCircle,
	}
}

// ModelToStatsResponse преобразует агрегированную статистику в DTO для ответа
func ModelToStatsResponse(model *models.CircleStats) StatsResponse {
	return StatsResponse{
		TotalCircles:  model.TotalCircles,
		TotalMembers:  model.TotalMembers,
		TotalMessages: model.TotalMessages,
		CirclesByType: model.CirclesByType,
	}
}
