package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64   // ID пользователя (из шлюза аутентификации)
	PackageID int64   // ID пакета
	SlotID    int64   // ID слота
	Notes     *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	UserID     int64
	StudioID   int64
	PackageID  int64
	SlotID     int64
	Status     string
	TotalPrice float64 // Цена пакета на момент бронирования
	Notes      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
