package domain

import "errors"

var (
	// Ошибка отсутствующего счёта клиента.
	ErrAccountRequired = errors.New("client account is required")
	// Ошибка отсутствия хотя бы одной позиции в ордере.
	ErrAssetsRequired = errors.New("order must contain at least one asset allocation")
	// Ошибка отрицательного итога ордера.
	ErrTotalNegative = errors.New("total_centavos must be non-negative")
	// Ошибка отсутствующего идентификатора актива в позиции.
	ErrAssetIDRequired = errors.New("allocation asset id is required")
	// Ошибка некорректной суммы позиции (<= 0).
	ErrAllocationAmountInvalid = errors.New("allocation amount must be greater than zero")
	// Ошибка несоответствия итога ордера и сумм позиций.
	ErrTotalMismatch = errors.New("order total does not match allocations sum")
	// ErrOrderNotFound возвращается, если ордер не найден в хранилище.
	ErrOrderNotFound = errors.New("order not found")
	// ErrClientNotFound возвращается, если клиент отсутствует в справочнике.
	ErrClientNotFound = errors.New("client not found")
	// ErrAssetNotFound возвращается, если актив отсутствует в справочнике.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrAnnotationNotFound — по счёту нет сохранённых заметок.
	ErrAnnotationNotFound = errors.New("annotation not found")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// IsNotFound проверяет, является ли ошибка одним из вариантов "не найдено".
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrAssetNotFound) ||
		errors.Is(err, ErrAnnotationNotFound)
}
