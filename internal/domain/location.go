package domain

// Location представляет адрес/населённый пункт,
// соответствует таблице locations в бд
type Location struct {
	ID   int64    `json:"id" db:"id" gorm:"primaryKey"`
	Name string   `json:"name" db:"name"`
	Lat  *float64 `json:"lat" db:"lat"`
	Lng  *float64 `json:"lng" db:"lng"`
}

func (Location) TableName() string {
	return "locations"
}
