package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/maynagashev/pagevault/internal/models"
	"github.com/maynagashev/pagevault/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Колонки таблицы pages в порядке SELECT-запросов репозитория.
var pageColumns = []string{
	"id", "user_id", "name", "current_version_id", "current_version_number",
	"last_version_number", "created_at", "updated_at",
}

// Вспомогательная функция для создания мока БД и репозитория страниц.
func setupPageRepoMock(t *testing.T) (repository.PageRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewPostgresPageRepository(sqlxDB)
	return repo, mock
}

func TestNewPostgresPageRepository(t *testing.T) {
	repo := repository.NewPostgresPageRepository(nil)
	assert.NotNil(t, repo)
}

func TestCreatePage(t *testing.T) {
	tests := []struct {
		name        string
		page        *models.Page
		mockSetup   func(mock sqlmock.Sqlmock, page *models.Page)
		expectedID  int64
		expectedErr error
	}{
		{
			name: "Успешное создание",
			page: &models.Page{UserID: 1, Name: "landing"},
			mockSetup: func(mock sqlmock.Sqlmock, page *models.Page) {
				rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(10))
				query := regexp.QuoteMeta(`INSERT INTO pages (user_id, name) VALUES ($1, $2) RETURNING id`)
				mock.ExpectQuery(query).WithArgs(page.UserID, page.Name).WillReturnRows(rows)
			},
			expectedID:  10,
			expectedErr: nil,
		},
		{
			name: "Имя страницы занято",
			page: &models.Page{UserID: 1, Name: "landing"},
			mockSetup: func(mock sqlmock.Sqlmock, page *models.Page) {
				query := regexp.QuoteMeta(`INSERT INTO pages (user_id, name) VALUES ($1, $2) RETURNING id`)
				pqErr := &pq.Error{Code: "23505"} // unique_violation
				mock.ExpectQuery(query).WithArgs(page.UserID, page.Name).WillReturnError(pqErr)
			},
			expectedID:  0,
			expectedErr: repository.ErrPageNameTaken,
		},
		{
			name: "Ошибка базы данных",
			page: &models.Page{UserID: 1, Name: "broken"},
			mockSetup: func(mock sqlmock.Sqlmock, page *models.Page) {
				query := regexp.QuoteMeta(`INSERT INTO pages (user_id, name) VALUES ($1, $2) RETURNING id`)
				mock.ExpectQuery(query).WithArgs(page.UserID, page.Name).WillReturnError(errors.New("database error"))
			},
			expectedID:  0,
			expectedErr: errors.New("ошибка выполнения запроса на создание страницы"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupPageRepoMock(t)
			tt.mockSetup(mock, tt.page)

			pageID, err := repo.CreatePage(context.Background(), tt.page)

			if tt.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedErr, repository.ErrPageNameTaken) {
					assert.ErrorIs(t, err, repository.ErrPageNameTaken)
				} else {
					assert.Contains(t, err.Error(), tt.expectedErr.Error())
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, pageID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetPageByID(t *testing.T) {
	now := time.Now()
	selectFragment := regexp.QuoteMeta(`SELECT id, user_id, name, current_version_id, current_version_number,`)

	t.Run("Страница найдена", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		rows := sqlmock.NewRows(pageColumns).
			AddRow(int64(10), int64(1), "landing", int64(5), int64(3), int64(7), now, now)
		mock.ExpectQuery(selectFragment).WithArgs(int64(10)).WillReturnRows(rows)

		page, err := repo.GetPageByID(context.Background(), 10)
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, int64(10), page.ID)
		assert.Equal(t, int64(1), page.UserID)
		assert.Equal(t, "landing", page.Name)
		require.NotNil(t, page.CurrentVersionID)
		assert.Equal(t, int64(5), *page.CurrentVersionID)
		require.NotNil(t, page.CurrentVersionNumber)
		assert.Equal(t, int64(3), *page.CurrentVersionNumber)
		assert.Equal(t, int64(7), page.LastVersionNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Страница без текущей версии", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		rows := sqlmock.NewRows(pageColumns).
			AddRow(int64(11), int64(1), "draft", nil, nil, int64(0), now, now)
		mock.ExpectQuery(selectFragment).WithArgs(int64(11)).WillReturnRows(rows)

		page, err := repo.GetPageByID(context.Background(), 11)
		require.NoError(t, err)
		assert.Nil(t, page.CurrentVersionID)
		assert.Nil(t, page.CurrentVersionNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Страница не найдена", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		mock.ExpectQuery(selectFragment).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetPageByID(context.Background(), 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrPageNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListPagesByUserID(t *testing.T) {
	now := time.Now()
	selectFragment := regexp.QuoteMeta(`SELECT id, user_id, name, current_version_id, current_version_number,`)

	t.Run("Список из двух страниц", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		rows := sqlmock.NewRows(pageColumns).
			AddRow(int64(10), int64(1), "landing", int64(5), int64(3), int64(3), now, now).
			AddRow(int64(11), int64(1), "blog", nil, nil, int64(0), now, now)
		mock.ExpectQuery(selectFragment).WithArgs(int64(1)).WillReturnRows(rows)

		pages, err := repo.ListPagesByUserID(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "landing", pages[0].Name)
		assert.Equal(t, "blog", pages[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустой список", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		mock.ExpectQuery(selectFragment).WithArgs(int64(2)).WillReturnRows(sqlmock.NewRows(pageColumns))

		pages, err := repo.ListPagesByUserID(context.Background(), 2)
		require.NoError(t, err)
		assert.Empty(t, pages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNextVersionNumber(t *testing.T) {
	updateFragment := regexp.QuoteMeta(`UPDATE pages SET last_version_number = last_version_number + 1, updated_at = now()`)

	t.Run("Счётчик инкрементируется", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		rows := sqlmock.NewRows([]string{"last_version_number"}).AddRow(int64(4))
		mock.ExpectQuery(updateFragment).WithArgs(int64(10)).WillReturnRows(rows)

		number, err := repo.NextVersionNumber(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(4), number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Страница не найдена", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		mock.ExpectQuery(updateFragment).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

		_, err := repo.NextVersionNumber(context.Background(), 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrPageNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateCurrentVersion(t *testing.T) {
	updateFragment := regexp.QuoteMeta(`UPDATE pages SET current_version_id=$2, current_version_number=$3, updated_at = now()`)

	t.Run("Указатель обновлён", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		mock.ExpectExec(updateFragment).
			WithArgs(int64(10), int64(5), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateCurrentVersion(context.Background(), 10, 5, 3)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Страница не найдена", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		mock.ExpectExec(updateFragment).
			WithArgs(int64(99), int64(5), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateCurrentVersion(context.Background(), 99, 5, 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrPageNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeletePage(t *testing.T) {
	deleteFragment := regexp.QuoteMeta(`DELETE FROM pages WHERE id=$1`)

	t.Run("Страница удалена", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		mock.ExpectExec(deleteFragment).WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeletePage(context.Background(), 10)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Страница не найдена", func(t *testing.T) {
		repo, mock := setupPageRepoMock(t)
		mock.ExpectExec(deleteFragment).WithArgs(int64(99)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeletePage(context.Background(), 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrPageNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
