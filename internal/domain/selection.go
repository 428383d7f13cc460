package domain

// Selection представляет подборку объявлений пользователя,
// соответствует таблице selections в бд
type Selection struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	OwnerID int64   `json:"owner" db:"owner_id"`
	Items   []int64 `json:"items" db:"-"`
}

// SelectionView подборка с именем владельца и его адресами
type SelectionView struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Owner         string   `json:"owner"`
	Items         []int64  `json:"items"`
	LocationNames []string `json:"location_names"`
}

// SelectionChanges набор изменений подборки. Владелец не меняется никогда.
type SelectionChanges struct {
	Name  *string
	Items *[]int64
}
