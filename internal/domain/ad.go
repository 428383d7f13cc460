package domain

// Ad представляет объявление,
// соответствует таблице ads в бд.
// Image хранит ключ объекта в файловом хранилище; наружу use case отдаёт публичный URL.
type Ad struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Price       int64   `json:"price" db:"price"`
	Description *string `json:"description" db:"description"`
	Image       *string `json:"image" db:"image"`
	IsPublished bool    `json:"is_published" db:"is_published"`
	AuthorID    *int64  `json:"author" db:"author_id"`
	CategoryID  int64   `json:"category" db:"category_id"`
}

// AdView объявление с подставленными именами автора и категории
// и названиями адресов автора. Используется для списка и детальной информации.
type AdView struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	Description   *string  `json:"description"`
	Image         *string  `json:"image"`
	IsPublished   bool     `json:"is_published"`
	Author        *string  `json:"author"`
	Category      string   `json:"category"`
	LocationNames []string `json:"location_names"`
}

// AdChanges набор изменений объявления для частичного обновления.
type AdChanges struct {
	Name        *string
	Price       *int64
	Description *string
	IsPublished *bool
	AuthorID    *int64
	CategoryID  *int64
}

// Apply применяет изменения к объявлению
func (c AdChanges) Apply(ad *Ad) {
	if c.Name != nil {
		ad.Name = *c.Name
	}
	if c.Price != nil {
		ad.Price = *c.Price
	}
	if c.Description != nil {
		ad.Description = c.Description
	}
	if c.IsPublished != nil {
		ad.IsPublished = *c.IsPublished
	}
	if c.AuthorID != nil {
		ad.AuthorID = c.AuthorID
	}
	if c.CategoryID != nil {
		ad.CategoryID = *c.CategoryID
	}
}
