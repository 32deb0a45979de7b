package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/maynagashev/pagevault/internal/mocks"
	"github.com/maynagashev/pagevault/internal/models"
	"github.com/maynagashev/pagevault/internal/repository"
	"github.com/maynagashev/pagevault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Вспомогательная структура с зависимостями сервиса страниц.
type pageServiceFixture struct {
	pageRepo    *mocks.PageRepository
	versionRepo *mocks.PageVersionRepository
	fileStorage *mocks.FileStorage
	contentDir  string
	service     services.PageService
}

func setupPageService(t *testing.T) *pageServiceFixture {
	t.Helper()
	f := &pageServiceFixture{
		pageRepo:    new(mocks.PageRepository),
		versionRepo: new(mocks.PageVersionRepository),
		fileStorage: new(mocks.FileStorage),
		contentDir:  t.TempDir(),
	}
	f.service = services.NewPageService(f.pageRepo, f.versionRepo, f.fileStorage, f.contentDir, services.NewPageLocks())
	return f
}

func (f *pageServiceFixture) assertExpectations(t *testing.T) {
	f.pageRepo.AssertExpectations(t)
	f.versionRepo.AssertExpectations(t)
	f.fileStorage.AssertExpectations(t)
}

func TestPageService_CreatePage(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное создание страницы", func(t *testing.T) {
		f := setupPageService(t)
		created := &models.Page{ID: 10, UserID: 1, Name: "landing"}
		f.pageRepo.EXPECT().
			CreatePage(ctx, &models.Page{UserID: 1, Name: "landing"}).
			Return(int64(10), nil).Once()
		f.pageRepo.EXPECT().GetPageByID(ctx, int64(10)).Return(created, nil).Once()

		page, err := f.service.CreatePage(ctx, 1, "landing")
		require.NoError(t, err)
		assert.Equal(t, created, page)

		// Рабочий каталог материализован сразу
		info, statErr := os.Stat(filepath.Join(f.contentDir, "10"))
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
		f.assertExpectations(t)
	})

	t.Run("Пустое имя страницы", func(t *testing.T) {
		f := setupPageService(t)

		_, err := f.service.CreatePage(ctx, 1, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrEmptyPageName)
		f.assertExpectations(t)
	})

	t.Run("Имя страницы уже занято", func(t *testing.T) {
		f := setupPageService(t)
		f.pageRepo.EXPECT().
			CreatePage(ctx, &models.Page{UserID: 1, Name: "landing"}).
			Return(int64(0), repository.ErrPageNameTaken).Once()

		_, err := f.service.CreatePage(ctx, 1, "landing")
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrPageNameTaken)
		f.assertExpectations(t)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		f := setupPageService(t)
		f.pageRepo.EXPECT().
			CreatePage(ctx, &models.Page{UserID: 1, Name: "landing"}).
			Return(int64(0), errors.New("database error")).Once()

		_, err := f.service.CreatePage(ctx, 1, "landing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "внутренняя ошибка сервера при создании страницы")
		f.assertExpectations(t)
	})
}

func TestPageService_ListPages(t *testing.T) {
	ctx := context.Background()

	t.Run("Список страниц пользователя", func(t *testing.T) {
		f := setupPageService(t)
		pages := []models.Page{{ID: 10, UserID: 1, Name: "landing"}, {ID: 11, UserID: 1, Name: "docs"}}
		f.pageRepo.EXPECT().ListPagesByUserID(ctx, int64(1)).Return(pages, nil).Once()

		result, err := f.service.ListPages(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, pages, result)
		f.assertExpectations(t)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		f := setupPageService(t)
		f.pageRepo.EXPECT().ListPagesByUserID(ctx, int64(1)).Return(nil, errors.New("database error")).Once()

		_, err := f.service.ListPages(ctx, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "внутренняя ошибка сервера при получении списка страниц")
		f.assertExpectations(t)
	})
}

func TestPageService_GetPage(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное получение", func(t *testing.T) {
		f := setupPageService(t)
		page := &models.Page{ID: 10, UserID: 1, Name: "landing"}
		f.pageRepo.EXPECT().GetPageByID(ctx, int64(10)).Return(page, nil).Once()

		result, err := f.service.GetPage(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, page, result)
		f.assertExpectations(t)
	})

	t.Run("Чужая страница", func(t *testing.T) {
		f := setupPageService(t)
		page := &models.Page{ID: 10, UserID: 1, Name: "landing"}
		f.pageRepo.EXPECT().GetPageByID(ctx, int64(10)).Return(page, nil).Once()

		_, err := f.service.GetPage(ctx, 2, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrForbidden)
		f.assertExpectations(t)
	})

	t.Run("Страница не найдена", func(t *testing.T) {
		f := setupPageService(t)
		f.pageRepo.EXPECT().GetPageByID(ctx, int64(99)).Return(nil, repository.ErrPageNotFound).Once()

		_, err := f.service.GetPage(ctx, 1, 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrPageNotFound)
		f.assertExpectations(t)
	})
}

func TestPageService_DeletePage(t *testing.T) {
	ctx := context.Background()
	ownedPage := &models.Page{ID: 10, UserID: 1, Name: "landing"}

	t.Run("Каскадное удаление страницы с версиями", func(t *testing.T) {
		f := setupPageService(t)
		dir := filepath.Join(f.contentDir, "10")
		writeFiles(t, dir, map[string]string{"index.html": "<html></html>"})

		keys := []string{"pages/10/versions/a.zip", "pages/10/versions/b.zip"}
		f.pageRepo.EXPECT().GetPageByID(ctx, int64(10)).Return(ownedPage, nil).Once()
		f.versionRepo.EXPECT().DeleteAllByPageID(ctx, int64(10)).Return(keys, nil).Once()
		f.fileStorage.EXPECT().DeleteFile(ctx, "pages/10/versions/a.zip").Return(nil).Once()
		f.fileStorage.EXPECT().DeleteFile(ctx, "pages/10/versions/b.zip").Return(nil).Once()
		f.pageRepo.EXPECT().DeletePage(ctx, int64(10)).Return(nil).Once()

		err := f.service.DeletePage(ctx, 1, 10)
		require.NoError(t, err)

		_, statErr := os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr), "рабочий каталог должен быть удален")
		f.assertExpectations(t)
	})

	t.Run("Сбой удаления архива не прерывает каскад", func(t *testing.T) {
		f := setupPageService(t)

		keys := []string{"pages/10/versions/a.zip", "pages/10/versions/b.zip"}
		f.pageRepo.EXPECT().GetPageByID(ctx, int64(10)).Return(ownedPage, nil).Once()
		f.versionRepo.EXPECT().DeleteAllByPageID(ctx, int64(10)).Return(keys, nil).Once()
		f.fileStorage.EXPECT().DeleteFile(ctx, "pages/10/versions/a.zip").Return(errors.New("storage error")).Once()
		f.fileStorage.EXPECT().DeleteFile(ctx, "pages/10/versions/b.zip").Return(nil).Once()
		f.pageRepo.EXPECT().DeletePage(ctx, int64(10)).Return(nil).Once()

		err := f.service.DeletePage(ctx, 1, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "страница удалена, но часть архивов осталась в хранилище")
		f.assertExpectations(t)
	})

	t.Run("Чужая страница", func(t *testing.T) {
		f := setupPageService(t)
		f.pageRepo.EXPECT().GetPageByID(ctx, int64(10)).Return(ownedPage, nil).Once()

		err := f.service.DeletePage(ctx, 2, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrForbidden)
		f.assertExpectations(t)
	})

	t.Run("Страница не найдена", func(t *testing.T) {
		f := setupPageService(t)
		f.pageRepo.EXPECT().GetPageByID(ctx, int64(99)).Return(nil, repository.ErrPageNotFound).Once()

		err := f.service.DeletePage(ctx, 1, 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrPageNotFound)
		f.assertExpectations(t)
	})
}
