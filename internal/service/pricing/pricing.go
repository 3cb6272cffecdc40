package pricing

import "github.com/zanaya/ZNY-BookingService/internal/domain"

// Quote итоговые суммы по черновику бронирования.
// Все цены целые (рупии без копеек), суммирование точное —
// клиент и сервер обязаны сходиться до единицы.
type Quote struct {
	KitSubtotal      int
	ServicesSubtotal int
	GrandTotal       int
}

// Calculate считает суммы по текущим выборам черновика.
// Чистая функция, черновик не изменяется.
func Calculate(draft *domain.BookingDraft) Quote {
	var q Quote

	for _, item := range draft.SelectedKitItems {
		q.KitSubtotal += item.Price
	}
	for _, svc := range draft.SelectedServices {
		q.ServicesSubtotal += svc.Price
	}
	q.GrandTotal = q.KitSubtotal + q.ServicesSubtotal

	return q
}
