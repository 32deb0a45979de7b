package models

import "time"

// Page представляет страницу сайта — единицу контента, файлы которой версионируются.
// Содержит указатель на текущую (материализованную в рабочем каталоге) версию.
type Page struct {
	ID                   int64     `db:"id" json:"id"`
	UserID               int64     `db:"user_id" json:"user_id"`
	Name                 string    `db:"name" json:"name"`
	CurrentVersionID     *int64    `db:"current_version_id" json:"current_version_id,omitempty"`         // может быть NULL
	CurrentVersionNumber *int64    `db:"current_version_number" json:"current_version_number,omitempty"` // может быть NULL
	LastVersionNumber    int64     `db:"last_version_number" json:"-"`                                   // монотонный счётчик версий, номера не переиспользуются
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// CreatePageRequest представляет тело запроса на создание страницы.
type CreatePageRequest struct {
	Name string `json:"name"`
}
