package domain

// Page — ограниченный срез отфильтрованной выборки плюс метаданные
// о его положении внутри целого. page_number — с нуля.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	IsFirst       bool  `json:"is_first"`
	IsLast        bool  `json:"is_last"`
}

// NewPage — собирает страницу из содержимого и общего числа элементов.
// total_pages = ceil(total/size) (0 при пустой выборке);
// is_first = page == 0; is_last = page >= total_pages-1 (истинно и при 0 страниц).
// Запрос страницы за пределами выборки — пустой content с корректными итогами.
func NewPage[T any](content []T, pageNumber, pageSize int, totalElements int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if pageSize > 0 && totalElements > 0 {
		totalPages = int((totalElements + int64(pageSize) - 1) / int64(pageSize))
	}

	return Page[T]{
		Content:       content,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		IsFirst:       pageNumber == 0,
		IsLast:        pageNumber >= totalPages-1,
	}
}
