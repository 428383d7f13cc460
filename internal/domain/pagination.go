package domain

import "strconv"

// Page описывает выбранную страницу списка
type Page struct {
	Number   int
	Size     int
	NumPages int
	Total    int64
}

// Offset смещение первой записи страницы
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// ResolvePage выбирает страницу по сырому параметру запроса.
// Пустое или нечисловое значение даёт первую страницу, номер вне диапазона
// (меньше единицы или больше числа страниц) даёт последнюю.
// Страниц всегда не меньше одной.
func ResolvePage(raw string, size int, total int64) Page {
	if size <= 0 {
		size = 1
	}

	numPages := int((total + int64(size) - 1) / int64(size))
	if numPages < 1 {
		numPages = 1
	}

	number, err := strconv.Atoi(raw)
	if err != nil {
		number = 1
	}
	if number < 1 || number > numPages {
		number = numPages
	}

	return Page{Number: number, Size: size, NumPages: numPages, Total: total}
}

// PageResult страница элементов вместе с итоговой информацией
type PageResult[T any] struct {
	Items    []T
	NumPages int
	Total    int64
}
