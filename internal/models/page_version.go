package models

import (
	"encoding/json"
	"time"
)

// PageVersion представляет один снимок файлов страницы и его метаданные.
// Сам снимок хранится в S3/MinIO как единый zip-архив, доступный по ObjectKey.
type PageVersion struct {
	ID            int64      `db:"id" json:"id"`                         // Уникальный ID версии
	PageID        int64      `db:"page_id" json:"page_id"`               // ID страницы-владельца
	VersionNumber int64      `db:"version_number" json:"version_number"` // Порядковый номер версии (1..N, не переиспользуется)
	Description   string     `db:"description" json:"description"`       // Описание версии, может быть пустым
	Tag           *string    `db:"tag" json:"tag,omitempty"`             // Метка защиты: пока не NULL — версию нельзя удалить
	ObjectKey     string     `db:"object_key" json:"object_key"`         // Ключ архива в S3/MinIO
	SizeBytes     *int64     `db:"size_bytes" json:"size_bytes,omitempty"`
	AuditID       *int64     `db:"audit_id" json:"audit_id,omitempty"` // Ссылка на запись аудита, вызвавшую снимок (информационная)
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"` // Заполняется только при изменении метаданных
}

// Protected сообщает, защищена ли версия меткой от удаления.
func (v *PageVersion) Protected() bool {
	return v.Tag != nil && *v.Tag != ""
}

// CreateVersionRequest представляет тело запроса на создание снимка.
type CreateVersionRequest struct {
	Description string `json:"description"`
	AuditID     *int64 `json:"audit_id,omitempty"`
}

// UpdateVersionRequest представляет тело запроса на изменение метаданных версии.
// Каждое поле применяется, только если оно присутствует в запросе (частичное обновление).
type UpdateVersionRequest struct {
	Description *string `json:"description,omitempty"`
	Tag         *string `json:"tag,omitempty"`
}

// UnmarshalJSON различает отсутствующее поле tag и явный null:
// отсутствие — метка не меняется, явный null снимает защиту так же,
// как пустая строка. Обычный *string эту разницу теряет.
func (r *UpdateVersionRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Description *string         `json:"description"`
		Tag         json.RawMessage `json:"tag"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Description = raw.Description
	if len(raw.Tag) == 0 {
		// Поле не передано
		r.Tag = nil
		return nil
	}
	if string(raw.Tag) == "null" {
		empty := ""
		r.Tag = &empty
		return nil
	}

	var tag string
	if err := json.Unmarshal(raw.Tag, &tag); err != nil {
		return err
	}
	r.Tag = &tag
	return nil
}
