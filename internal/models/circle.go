package models

import (
	"time"

	"github.com/google/uuid"
)

type Circle struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	Description             string    `json:"description"`
	IncidentType            string    `json:"incident_type"`
	LocationRegion          string    `json:"location_region"`
	Language                string    `json:"language"`
	MemberCount             int       `json:"member_count"`
	MaxMembers              int       `json:"max_members"`
	FacilitatorID           *string   `json:"facilitator_id,omitempty"`
	Tags                    []string  `json:"tags"`
	AverageHelpfulnessScore float64   `json:"average_helpfulness_score"`
	IsActive                bool      `json:"is_active"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// FacilitatorPresent сообщает, закреплен ли за кругом проверенный фасилитатор
func (c *Circle) FacilitatorPresent() bool {
	return c.FacilitatorID != nil && *c.FacilitatorID != ""
}

// HasCapacity сообщает, есть ли в круге свободное место
func (c *Circle) HasCapacity() bool {
	return c.IsActive && c.MemberCount < c.MaxMembers
}
