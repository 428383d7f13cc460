package domain

// Category представляет категорию объявлений,
// соответствует таблице categories в бд
type Category struct {
	ID       int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name     string `json:"name" db:"name"`
	IsActive bool   `json:"is_active" db:"is_active"`
}

func (Category) TableName() string {
	return "categories"
}
