package models

// IncidentTypeCount - количество активных кругов по типу инцидента
type IncidentTypeCount struct {
	IncidentType string `json:"incident_type"`
	Count        int    `json:"count"`
}

// CircleStats - агрегированная статистика по кругам для внешних потребителей
type CircleStats struct {
	TotalCircles  int                 `json:"total_circles"`
	TotalMembers  int                 `json:"total_members"`
	TotalMessages int                 `json:"total_messages"`
	CirclesByType []IncidentTypeCount `json:"circles_by_type"`
}
