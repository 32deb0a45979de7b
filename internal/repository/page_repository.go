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

// PageRepository определяет методы для работы с метаданными страниц.
type PageRepository interface {
	CreatePage(ctx context.Context, page *models.Page) (int64, error)
	GetPageByID(ctx context.Context, pageID int64) (*models.Page, error)
	ListPagesByUserID(ctx context.Context, userID int64) ([]models.Page, error)
	// NextVersionNumber атомарно выдаёт следующий номер версии страницы.
	// Счётчик монотонный: выданные номера не переиспользуются даже после удаления версий.
	NextVersionNumber(ctx context.Context, pageID int64) (int64, error)
	UpdateCurrentVersion(ctx context.Context, pageID, versionID, versionNumber int64) error
	DeletePage(ctx context.Context, pageID int64) error
}

// postgresPageRepository реализует PageRepository для PostgreSQL.
type postgresPageRepository struct {
	db *sqlx.DB
}

// NewPostgresPageRepository создает новый экземпляр репозитория страниц.
func NewPostgresPageRepository(db *sqlx.DB) PageRepository {
	return &postgresPageRepository{db: db}
}

// CreatePage создает новую страницу и возвращает её ID.
func (r *postgresPageRepository) CreatePage(ctx context.Context, page *models.Page) (int64, error) {
	query := `INSERT INTO pages (user_id, name) VALUES ($1, $2) RETURNING id`
	var pageID int64

	err := r.db.QueryRowxContext(ctx, query, page.UserID, page.Name).Scan(&pageID)
	if err != nil {
		// Проверяем на нарушение уникальности имени страницы у пользователя
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[PageRepo] Ошибка создания страницы: имя '%s' уже занято у пользователя %d", page.Name, page.UserID)
			return 0, ErrPageNameTaken
		}
		log.Printf("[PageRepo] Непредвиденная ошибка при создании страницы '%s': %v", page.Name, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание страницы: %w", err)
	}

	log.Printf("[PageRepo] Страница '%s' успешно создана с ID %d", page.Name, pageID)
	return pageID, nil
}

// GetPageByID находит страницу по её ID.
func (r *postgresPageRepository) GetPageByID(ctx context.Context, pageID int64) (*models.Page, error) {
	query := `SELECT id, user_id, name, current_version_id, current_version_number,
	                 last_version_number, created_at, updated_at
	          FROM pages WHERE id=$1`
	var page models.Page

	err := r.db.GetContext(ctx, &page, query, pageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[PageRepo] Страница с ID %d не найдена", pageID)
			return nil, ErrPageNotFound
		}
		log.Printf("[PageRepo] Ошибка при поиске страницы ID %d: %v", pageID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение страницы: %w", err)
	}
	return &page, nil
}

// ListPagesByUserID возвращает все страницы пользователя, новые — первыми.
func (r *postgresPageRepository) ListPagesByUserID(ctx context.Context, userID int64) ([]models.Page, error) {
	query := `SELECT id, user_id, name, current_version_id, current_version_number,
	                 last_version_number, created_at, updated_at
	          FROM pages WHERE user_id=$1 ORDER BY created_at DESC`

	pages := make([]models.Page, 0)
	err := r.db.SelectContext(ctx, &pages, query, userID)
	if err != nil {
		log.Printf("[PageRepo] Ошибка при получении списка страниц пользователя %d: %v", userID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка страниц: %w", err)
	}

	log.Printf("[PageRepo] Получено %d страниц для пользователя %d", len(pages), userID)
	return pages, nil
}

// NextVersionNumber атомарно инкрементирует счётчик версий страницы и возвращает
// новое значение. Счётчик живёт в строке страницы, поэтому два конкурирующих
// вызова никогда не получат одинаковый номер.
func (r *postgresPageRepository) NextVersionNumber(ctx context.Context, pageID int64) (int64, error) {
	query := `UPDATE pages SET last_version_number = last_version_number + 1, updated_at = now()
	          WHERE id=$1 RETURNING last_version_number`
	var number int64

	err := r.db.QueryRowxContext(ctx, query, pageID).Scan(&number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[PageRepo] Страница с ID %d не найдена при выдаче номера версии", pageID)
			return 0, ErrPageNotFound
		}
		log.Printf("[PageRepo] Ошибка выдачи номера версии для страницы ID %d: %v", pageID, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на выдачу номера версии: %w", err)
	}

	log.Printf("[PageRepo] Странице ID %d выдан номер версии %d", pageID, number)
	return number, nil
}

// UpdateCurrentVersion переводит указатель текущей версии страницы на указанную версию.
func (r *postgresPageRepository) UpdateCurrentVersion(
	ctx context.Context,
	pageID, versionID, versionNumber int64,
) error {
	query := `UPDATE pages SET current_version_id=$2, current_version_number=$3, updated_at = now()
	          WHERE id=$1`

	result, err := r.db.ExecContext(ctx, query, pageID, versionID, versionNumber)
	if err != nil {
		log.Printf("[PageRepo] Ошибка обновления текущей версии страницы ID %d: %v", pageID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление текущей версии: %w", err)
	}
	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		log.Printf("[PageRepo] Страница с ID %d не найдена при обновлении текущей версии", pageID)
		return ErrPageNotFound
	}

	log.Printf("[PageRepo] Текущая версия страницы ID %d обновлена: версия ID %d (номер %d)",
		pageID, versionID, versionNumber)
	return nil
}

// DeletePage удаляет запись о странице.
// Версии страницы должны быть удалены заранее (каскад выполняет сервисный слой,
// которому нужны ключи архивов для очистки объектного хранилища).
func (r *postgresPageRepository) DeletePage(ctx context.Context, pageID int64) error {
	query := `DELETE FROM pages WHERE id=$1`

	result, err := r.db.ExecContext(ctx, query, pageID)
	if err != nil {
		log.Printf("[PageRepo] Ошибка удаления страницы ID %d: %v", pageID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление страницы: %w", err)
	}
	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		log.Printf("[PageRepo] Страница с ID %d не найдена при удалении", pageID)
		return ErrPageNotFound
	}

	log.Printf("[PageRepo] Страница ID %d успешно удалена", pageID)
	return nil
}

// Кастомные ошибки репозитория страниц.
var (
	ErrPageNotFound  = errors.New("страница не найдена")
	ErrPageNameTaken = errors.New("имя страницы уже занято")
)
