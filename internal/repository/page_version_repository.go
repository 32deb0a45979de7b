package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/maynagashev/pagevault/internal/models"
)

// PageVersionRepository определяет методы для работы с метаданными версий страниц.
type PageVersionRepository interface {
	CreateVersion(ctx context.Context, version *models.PageVersion) (int64, error)
	ListByPageID(ctx context.Context, pageID int64) ([]models.PageVersion, error)
	GetByID(ctx context.Context, pageID, versionID int64) (*models.PageVersion, error)
	// UpdateMetadata применяет частичное обновление: только переданные (не nil) поля.
	// Пустая строка в tag снимает защиту (в БД сохраняется NULL).
	UpdateMetadata(ctx context.Context, pageID, versionID int64, description, tag *string) (*models.PageVersion, error)
	Delete(ctx context.Context, pageID, versionID int64) error
	// DeleteAllByPageID удаляет все версии страницы и возвращает ключи их архивов,
	// чтобы вызывающий мог очистить объектное хранилище.
	DeleteAllByPageID(ctx context.Context, pageID int64) ([]string, error)
}

// postgresPageVersionRepository реализует PageVersionRepository для PostgreSQL.
type postgresPageVersionRepository struct {
	db *sqlx.DB
}

// NewPostgresPageVersionRepository создает новый экземпляр репозитория версий.
func NewPostgresPageVersionRepository(db *sqlx.DB) PageVersionRepository {
	return &postgresPageVersionRepository{db: db}
}

// CreateVersion создает новую запись о версии страницы.
// Номер версии должен быть выдан заранее счётчиком страницы (PageRepository.NextVersionNumber).
func (r *postgresPageVersionRepository) CreateVersion(
	ctx context.Context,
	version *models.PageVersion,
) (int64, error) {
	query := `INSERT INTO page_versions (page_id, version_number, description, tag, object_key, size_bytes, audit_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var versionID int64

	err := r.db.QueryRowxContext(ctx, query,
		version.PageID, version.VersionNumber, version.Description, version.Tag,
		version.ObjectKey, version.SizeBytes, version.AuditID,
	).Scan(&versionID)

	if err != nil {
		// Проверяем на ошибку уникальности (object_key либо пара page_id+version_number)
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[PageVerRepo] Ошибка создания версии: дубликат ключа '%s' (страница %d, номер %d)",
				version.ObjectKey, version.PageID, version.VersionNumber)
			return 0, fmt.Errorf("версия с такими ключами уже существует: %w", err)
		}
		log.Printf("[PageVerRepo] Непредвиденная ошибка при создании версии '%s': %v", version.ObjectKey, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание версии: %w", err)
	}

	log.Printf("[PageVerRepo] Версия (ID: %d, номер %d) успешно создана для страницы ID %d",
		versionID, version.VersionNumber, version.PageID)
	return versionID, nil
}

// ListByPageID возвращает все версии страницы, новые — первыми.
// Отсутствие версий — пустой список, а не ошибка.
func (r *postgresPageVersionRepository) ListByPageID(
	ctx context.Context,
	pageID int64,
) ([]models.PageVersion, error) {
	query := `SELECT id, page_id, version_number, description, tag, object_key, size_bytes,
	                 audit_id, created_at, updated_at
	          FROM page_versions
	          WHERE page_id=$1
	          ORDER BY created_at DESC, version_number DESC`

	versions := make([]models.PageVersion, 0)
	err := r.db.SelectContext(ctx, &versions, query, pageID)
	if err != nil {
		log.Printf("[PageVerRepo] Ошибка при получении списка версий для страницы ID %d: %v", pageID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка версий: %w", err)
	}

	log.Printf("[PageVerRepo] Получено %d версий для страницы ID %d", len(versions), pageID)
	return versions, nil
}

// GetByID находит конкретную версию страницы.
func (r *postgresPageVersionRepository) GetByID(
	ctx context.Context,
	pageID, versionID int64,
) (*models.PageVersion, error) {
	query := `SELECT id, page_id, version_number, description, tag, object_key, size_bytes,
	                 audit_id, created_at, updated_at
	          FROM page_versions WHERE page_id=$1 AND id=$2`
	var version models.PageVersion

	err := r.db.GetContext(ctx, &version, query, pageID, versionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[PageVerRepo] Версия с ID %d не найдена у страницы ID %d", versionID, pageID)
			return nil, ErrVersionNotFound
		}
		log.Printf("[PageVerRepo] Ошибка при поиске версии ID %d: %v", versionID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение версии: %w", err)
	}
	return &version, nil
}

// UpdateMetadata изменяет описание и/или метку версии и проставляет updated_at.
// nil-поле остаётся без изменений; пустая строка в tag превращается в NULL (снятие защиты).
func (r *postgresPageVersionRepository) UpdateMetadata(
	ctx context.Context,
	pageID, versionID int64,
	description, tag *string,
) (*models.PageVersion, error) {
	query := `UPDATE page_versions
	          SET description = COALESCE($3, description),
	              tag = CASE WHEN $4::text IS NULL THEN tag ELSE NULLIF($4, '') END,
	              updated_at = now()
	          WHERE page_id=$1 AND id=$2
	          RETURNING id, page_id, version_number, description, tag, object_key, size_bytes,
	                    audit_id, created_at, updated_at`
	var version models.PageVersion

	err := r.db.GetContext(ctx, &version, query, pageID, versionID, description, tag)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[PageVerRepo] Версия с ID %d не найдена у страницы ID %d при обновлении метаданных",
				versionID, pageID)
			return nil, ErrVersionNotFound
		}
		log.Printf("[PageVerRepo] Ошибка обновления метаданных версии ID %d: %v", versionID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на обновление метаданных версии: %w", err)
	}

	log.Printf("[PageVerRepo] Метаданные версии ID %d (страница %d) успешно обновлены", versionID, pageID)
	return &version, nil
}

// Delete удаляет запись о версии.
// Отсутствие записи — ErrVersionNotFound, чтобы вызывающий мог отличить
// «уже удалена» от «удалена этим вызовом».
func (r *postgresPageVersionRepository) Delete(ctx context.Context, pageID, versionID int64) error {
	query := `DELETE FROM page_versions WHERE page_id=$1 AND id=$2`

	result, err := r.db.ExecContext(ctx, query, pageID, versionID)
	if err != nil {
		log.Printf("[PageVerRepo] Ошибка удаления версии ID %d: %v", versionID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление версии: %w", err)
	}
	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		log.Printf("[PageVerRepo] Версия с ID %d не найдена у страницы ID %d при удалении", versionID, pageID)
		return ErrVersionNotFound
	}

	log.Printf("[PageVerRepo] Версия ID %d (страница %d) успешно удалена", versionID, pageID)
	return nil
}

// DeleteAllByPageID удаляет все версии страницы без учёта меток защиты:
// метки защищают от точечного удаления, а не от сноса самой страницы.
func (r *postgresPageVersionRepository) DeleteAllByPageID(
	ctx context.Context,
	pageID int64,
) ([]string, error) {
	query := `DELETE FROM page_versions WHERE page_id=$1 RETURNING object_key`

	objectKeys := make([]string, 0)
	err := r.db.SelectContext(ctx, &objectKeys, query, pageID)
	if err != nil {
		log.Printf("[PageVerRepo] Ошибка каскадного удаления версий страницы ID %d: %v", pageID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на каскадное удаление версий: %w", err)
	}

	log.Printf("[PageVerRepo] Удалено %d версий страницы ID %d", len(objectKeys), pageID)
	return objectKeys, nil
}

// Кастомные ошибки репозитория версий.
var (
	ErrVersionNotFound = errors.New("версия страницы не найдена")
)
