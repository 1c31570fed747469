package ensure_slots

import "time"

// Config часы работы по умолчанию для студий без заданного расписания
type Config struct {
	DefaultOpeningHour int
	DefaultClosingHour int
}

// Request запрос на генерацию слотов на одну дату
type Request struct {
	StudioID int64
	Date     time.Time
}

// Response результат генерации на одну дату
type Response struct {
	StudioID    int64
	Date        time.Time
	Created     int  // Количество созданных слотов
	Skipped     bool // Слоты на эту дату уже существовали
	EmptyWindow bool // Часы работы студии не дают ни одного слота (closing <= opening)
}

// DaysRequest запрос на генерацию слотов на несколько дней подряд
type DaysRequest struct {
	StudioID  int64
	StartDate time.Time
	NumDays   int
}

// DaysResponse результат генерации на несколько дней
type DaysResponse struct {
	StudioID      int64
	Created       int // Всего создано слотов
	DaysGenerated int // Дни, для которых сетка была создана
	DaysSkipped   int // Дни, где слоты уже были
	DaysEmpty     int // Дни без слотов из-за пустого окна работы
}
