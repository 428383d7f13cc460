package dto

import "github.com/GoArmGo/AdBoard/internal/domain"

// PageResponse конверт постраничного списка
type PageResponse[T any] struct {
	Items    []T   `json:"items"`
	NumPages int   `json:"num_pages"`
	Total    int64 `json:"total"`
}

type CategoryShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewCategoryShort(c *domain.Category) CategoryShort {
	return CategoryShort{ID: c.ID, Name: c.Name}
}

func NewCategoryPage(p *domain.PageResult[domain.Category]) PageResponse[CategoryShort] {
	items := make([]CategoryShort, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, NewCategoryShort(&p.Items[i]))
	}
	return PageResponse[CategoryShort]{Items: items, NumPages: p.NumPages, Total: p.Total}
}

// CategoryDeleted ответ на удаление категории
type CategoryDeleted struct {
	ID int64 `json:"id deleted"`
}

func NewAdPage(p *domain.PageResult[domain.AdView]) PageResponse[domain.AdView] {
	items := p.Items
	if items == nil {
		items = []domain.AdView{}
	}
	return PageResponse[domain.AdView]{Items: items, NumPages: p.NumPages, Total: p.Total}
}

type AdImageResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

func NewAdImageResponse(ad *domain.Ad) AdImageResponse {
	return AdImageResponse{ID: ad.ID, Name: ad.Name, Image: ad.Image}
}

type SelectionShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewSelectionList(selections []domain.Selection) []SelectionShort {
	out := make([]SelectionShort, 0, len(selections))
	for _, s := range selections {
		out = append(out, SelectionShort{ID: s.ID, Name: s.Name})
	}
	return out
}

type SelectionResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Items []int64 `json:"items"`
}

func NewSelectionResponse(s *domain.Selection) SelectionResponse {
	items := s.Items
	if items == nil {
		items = []int64{}
	}
	return SelectionResponse{ID: s.ID, Name: s.Name, Items: items}
}

type AccessResponse struct {
	Access string `json:"access"`
}
