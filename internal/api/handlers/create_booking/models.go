package create_booking

import (
	"time"

	createBooking "github.com/m04kA/StudioBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// ID пользователя берется из заголовка X-User-ID, а не из тела
type CreateBookingRequest struct {
	PackageID int64   `json:"packageId"`
	SlotID    int64   `json:"slotId"`
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	StudioID   int64   `json:"studioId"`
	PackageID  int64   `json:"packageId"`
	SlotID     int64   `json:"slotId"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:    userID,
		PackageID: r.PackageID,
		SlotID:    r.SlotID,
		Notes:     r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		StudioID:   resp.StudioID,
		PackageID:  resp.PackageID,
		SlotID:     resp.SlotID,
		Status:     resp.Status,
		TotalPrice: resp.TotalPrice,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
