package models

import (
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// CreateStudioRequest запрос на создание студии
type CreateStudioRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	OpeningHour *int    `json:"openingHour,omitempty"` // Не указан - используется значение по умолчанию
	ClosingHour *int    `json:"closingHour,omitempty"`
}

// CreatePackageRequest запрос на создание пакета
type CreatePackageRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// StudioResponse ответ с данными студии
type StudioResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	OpeningHour *int      `json:"openingHour,omitempty"`
	ClosingHour *int      `json:"closingHour,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StudioListResponse ответ со списком студий
type StudioListResponse struct {
	Studios []StudioResponse `json:"studios"`
}

// PackageResponse ответ с данными пакета
type PackageResponse struct {
	ID              int64     `json:"id"`
	StudioID        int64     `json:"studioId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PackageListResponse ответ со списком пакетов студии
type PackageListResponse struct {
	StudioID int64             `json:"studioId"`
	Packages []PackageResponse `json:"packages"`
}

// FromDomainStudio конвертирует domain модель в DTO
func FromDomainStudio(s *domain.Studio) *StudioResponse {
	if s == nil {
		return nil
	}
	return &StudioResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		OpeningHour: s.OpeningHour,
		ClosingHour: s.ClosingHour,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainStudioList конвертирует список студий в DTO
func FromDomainStudioList(studios []*domain.Studio) *StudioListResponse {
	resp := &StudioListResponse{Studios: make([]StudioResponse, 0, len(studios))}
	for _, s := range studios {
		if dto := FromDomainStudio(s); dto != nil {
			resp.Studios = append(resp.Studios, *dto)
		}
	}
	return resp
}

// FromDomainPackage конвертирует domain модель в DTO
func FromDomainPackage(p *domain.Package) *PackageResponse {
	if p == nil {
		return nil
	}
	return &PackageResponse{
		ID:              p.ID,
		StudioID:        p.StudioID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		DurationMinutes: p.DurationMinutes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FromDomainPackageList конвертирует список пакетов в DTO
func FromDomainPackageList(studioID int64, packages []*domain.Package) *PackageListResponse {
	resp := &PackageListResponse{StudioID: studioID, Packages: make([]PackageResponse, 0, len(packages))}
	for _, p := range packages {
		if dto := FromDomainPackage(p); dto != nil {
			resp.Packages = append(resp.Packages, *dto)
		}
	}
	return resp
}
