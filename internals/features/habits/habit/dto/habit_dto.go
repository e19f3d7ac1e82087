package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	hModel "habitku_backend/internals/features/habits/habit/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateHabitRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=80"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	TargetPerDay *int    `json:"target_per_day,omitempty" validate:"omitempty,min=1,max=50"`
}

// Normalize — trim dasar
func (r *CreateHabitRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

// ToModel — target default 1 kalau tidak dikirim
func (r *CreateHabitRequest) ToModel(userID uuid.UUID) *hModel.HabitModel {
	m := &hModel.HabitModel{
		UserID:       userID,
		Name:         r.Name,
		Description:  r.Description,
		TargetPerDay: 1,
		IsActive:     true,
	}
	if r.TargetPerDay != nil {
		m.TargetPerDay = *r.TargetPerDay
	}
	return m
}

// UpdateHabitRequest — partial update (pointer agar bisa bedakan omit vs null)
type UpdateHabitRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=80"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	TargetPerDay *int    `json:"target_per_day,omitempty" validate:"omitempty,min=1,max=50"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateHabitRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

// ApplyTo — terapkan hanya field yang dikirim
func (r *UpdateHabitRequest) ApplyTo(m *hModel.HabitModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.TargetPerDay != nil {
		m.TargetPerDay = *r.TargetPerDay
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type HabitResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	TargetPerDay int       `json:"target_per_day"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToHabitResponse(m *hModel.HabitModel) HabitResponse {
	return HabitResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		TargetPerDay: m.TargetPerDay,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToHabitResponses(ms []hModel.HabitModel) []HabitResponse {
	out := make([]HabitResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToHabitResponse(&ms[i]))
	}
	return out
}
