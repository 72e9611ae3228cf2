package models

// SeekerProfile - транзиентный вход алгоритма подбора, не сохраняется как сущность
type SeekerProfile struct {
	IncidentType   string   `json:"incident_type"`
	LocationRegion string   `json:"location_region"`
	Language       string   `json:"language"`
	AgeRange       string   `json:"age_range,omitempty"`
	Severity       string   `json:"severity,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	DisplayName    string   `json:"display_name,omitempty"`
	ReportID       string   `json:"report_id,omitempty"`
	// ParticipantID передается при повторном обращении: если участник уже
	// состоит в выбранном круге, вступление становится no-op
	ParticipantID string `json:"participant_id,omitempty"`
}

// MatchResult - итог подбора: круг, созданное (или существующее) членство и
// человекочитаемое объяснение выбора
type MatchResult struct {
	Circle      *Circle
	Member      *CircleMember
	MatchReason string
	IsNewCircle bool
}
