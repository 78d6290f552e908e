package domain

import "time"

// EventKind — тип записи в таймлайне ордера.
type EventKind string

const (
	// EventKindLog — системная запись (создание, смена статуса).
	EventKindLog EventKind = "Log"
	// EventKindComment — комментарий ассессора.
	EventKindComment EventKind = "Comment"
	// EventKindFile — прикреплённый документ.
	EventKindFile EventKind = "File"
)

// TimelineEvent описывает событие в жизненном цикле ордера.
// Seq — позиция внутри таймлайна ордера (1-based, len+1 на момент добавления).
// Это счётчик последовательности, а не долговечный ключ: события не удаляются
// и не переупорядочиваются, поэтому счётчик стабилен.
type TimelineEvent struct {
	Seq       int
	Kind      EventKind
	Author    string
	Timestamp string
	Content   string
	FileName  string
}

// CreatedDateLayout — формат дат в том виде, в каком их показывает фронт:
// день/месяц/год. Разбор обязан идти именно в этом порядке.
const CreatedDateLayout = "02/01/2006 15:04"

// ParseCreatedDate разбирает дату строго как день-первый формат.
func ParseCreatedDate(value string) (time.Time, error) {
	return time.Parse(CreatedDateLayout, value)
}

// FormatCreatedDate приводит момент времени к отображаемому формату.
func FormatCreatedDate(t time.Time) string {
	return t.Format(CreatedDateLayout)
}
