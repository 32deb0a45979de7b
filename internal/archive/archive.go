// Package archive реализует кодек архивов версий: упаковку каталога страницы
// в единый zip-блоб и обратную распаковку. Относительные пути внутри архива
// всегда хранятся с прямыми слэшами, поэтому архив переносим между платформами.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// BinaryPlaceholder — значение-заглушка для содержимого, которое не удалось
// декодировать как текст. Благодаря ей вычисление диффа определено для всех файлов.
const BinaryPlaceholder = "[binary]"

// Кастомные ошибки кодека.
var (
	ErrCorruptArchive = errors.New("повреждённый или некорректный архив")
	ErrEntryNotFound  = errors.New("запись не найдена в архиве")
)

// Pack рекурсивно обходит каталог sourceDir и упаковывает каждый обычный файл
// (с его относительным путём) в один zip-блоб.
// Возвращает ошибку, если каталог не существует или файл стал недоступен во время обхода.
func Pack(sourceDir string) ([]byte, error) {
	if _, err := os.Stat(sourceDir); err != nil {
		return nil, fmt.Errorf("каталог '%s' недоступен: %w", sourceDir, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	root := os.DirFS(sourceDir)
	err := fs.WalkDir(root, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("ошибка обхода '%s': %w", path, walkErr)
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		src, openErr := root.Open(path)
		if openErr != nil {
			return fmt.Errorf("ошибка чтения файла '%s': %w", path, openErr)
		}
		defer src.Close() //nolint:errcheck // Файл открыт только на чтение

		// fs.WalkDir отдаёт пути с прямыми слэшами на любой платформе
		dst, createErr := zw.Create(path)
		if createErr != nil {
			return fmt.Errorf("ошибка создания записи архива '%s': %w", path, createErr)
		}
		if _, copyErr := io.Copy(dst, src); copyErr != nil {
			return fmt.Errorf("ошибка записи '%s' в архив: %w", path, copyErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err = zw.Close(); err != nil {
		return nil, fmt.Errorf("ошибка завершения архива: %w", err)
	}
	return buf.Bytes(), nil
}

// Unpack извлекает все записи архива в каталог destDir, создавая подкаталоги
// по мере необходимости и перезаписывая существующие файлы.
// Возвращает ErrCorruptArchive, если блоб не является корректным архивом.
func Unpack(data []byte, destDir string) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if !validEntryName(entry.Name) {
			return fmt.Errorf("%w: недопустимое имя записи '%s'", ErrCorruptArchive, entry.Name)
		}

		target := filepath.Join(destDir, filepath.FromSlash(entry.Name))
		if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("ошибка создания каталога для '%s': %w", entry.Name, err)
		}

		if err = extractEntry(entry, target); err != nil {
			return err
		}
	}
	return nil
}

// extractEntry распаковывает одну запись архива в файл target.
func extractEntry(entry *zip.File, target string) error {
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("%w: ошибка открытия записи '%s': %w", ErrCorruptArchive, entry.Name, err)
	}
	defer src.Close() //nolint:errcheck // Запись открыта только на чтение

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("ошибка создания файла '%s': %w", target, err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("ошибка распаковки записи '%s': %w", entry.Name, err)
	}
	if err = dst.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия файла '%s': %w", target, err)
	}
	return nil
}

// ReadEntryText возвращает текст одной записи архива без распаковки остальных.
// Возвращает ErrEntryNotFound, если записи с таким именем нет.
func ReadEntryText(data []byte, name string) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	for _, entry := range zr.File {
		if entry.Name != name {
			continue
		}
		content, readErr := readEntry(entry)
		if readErr != nil {
			return "", readErr
		}
		return DecodeText(content), nil
	}
	return "", fmt.Errorf("%w: '%s'", ErrEntryNotFound, name)
}

// ListEntriesText декодирует каждую запись архива как текст.
// Бинарное содержимое представляется заглушкой BinaryPlaceholder, а не ошибкой.
func ListEntriesText(data []byte) (map[string]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	files := make(map[string]string, len(zr.File))
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		content, readErr := readEntry(entry)
		if readErr != nil {
			return nil, readErr
		}
		files[entry.Name] = DecodeText(content)
	}
	return files, nil
}

// readEntry читает содержимое одной записи архива целиком.
func readEntry(entry *zip.File) ([]byte, error) {
	src, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка открытия записи '%s': %w", ErrCorruptArchive, entry.Name, err)
	}
	defer src.Close() //nolint:errcheck // Запись открыта только на чтение

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка чтения записи '%s': %w", ErrCorruptArchive, entry.Name, err)
	}
	return content, nil
}

// DecodeText возвращает содержимое как текст, либо BinaryPlaceholder,
// если байты не являются корректным UTF-8.
func DecodeText(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}
	return BinaryPlaceholder
}

// validEntryName отклоняет абсолютные пути и выход за пределы каталога назначения.
func validEntryName(name string) bool {
	if name == "" || strings.HasPrefix(name, "/") {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
