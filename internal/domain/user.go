package domain

// Роли пользователей
const (
	RoleMember    = "member"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
type User struct {
	ID           int64   `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	PasswordHash string  `json:"-" db:"password_hash"`
	FirstName    *string `json:"first_name" db:"first_name"`
	LastName     *string `json:"last_name" db:"last_name"`
	Role         string  `json:"role" db:"role"`
	Age          *int    `json:"age" db:"age"`
}

// IsStaff сообщает, относится ли пользователь к модераторам или админам
func (u *User) IsStaff() bool {
	return u.Role == RoleModerator || u.Role == RoleAdmin
}

// UserProfile пользователь вместе с денормализованными полями:
// названиями его адресов и количеством опубликованных объявлений.
type UserProfile struct {
	User
	LocationNames []string `json:"location_names"`
	TotalAds      int64    `json:"total_ads"`
}

// UserChanges набор изменений пользователя для частичного обновления.
// nil-поля не меняются.
type UserChanges struct {
	Username      *string
	Password      *string
	FirstName     *string
	LastName      *string
	Role          *string
	Age           *int
	LocationNames []string
}
