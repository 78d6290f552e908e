// Package view — чистые функции построения списка ордеров для дашборда:
// фильтрация, сортировка и счётчики статусов. Пакет не мутирует вход
// и не держит состояния.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/anovainvest/allocations/internal/domain"
)

// Filter описывает параметры отбора. Пустой Status означает «все статусы»,
// пустой Term — без текстового поиска.
type Filter struct {
	Status domain.OrderStatus
	Term   string
}

// FilterAndSort возвращает новый слайс: сначала фильтр по статусу и
// подстроке (без учёта регистра, по id и имени клиента), затем стабильная
// сортировка — избранные выше, внутри групп новые выше.
func FilterAndSort(orders []*domain.Order, filter Filter) []*domain.Order {
	term := strings.ToLower(strings.TrimSpace(filter.Term))

	result := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if term != "" && !matchesTerm(order, term) {
			continue
		}
		result = append(result, order)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.IsFavorite != b.IsFavorite {
			return a.IsFavorite
		}
		return createdAt(a).After(createdAt(b))
	})

	return result
}

// StatusCounts считает ордера по каждому из шести статусов. Ключи
// присутствуют всегда, в том числе с нулевым значением.
func StatusCounts(orders []*domain.Order) map[domain.OrderStatus]int {
	counts := make(map[domain.OrderStatus]int, 6)
	for _, status := range domain.AllOrderStatuses() {
		counts[status] = 0
	}
	for _, order := range orders {
		counts[order.Status]++
	}
	return counts
}

func matchesTerm(order *domain.Order, term string) bool {
	return strings.Contains(strings.ToLower(order.ID), term) ||
		strings.Contains(strings.ToLower(order.ClientName), term)
}

// createdAt парсит дату создания; некорректная дата трактуется как нулевое
// время и уходит в конец своей группы.
func createdAt(order *domain.Order) time.Time {
	t, err := domain.ParseCreatedDate(order.CreatedDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
