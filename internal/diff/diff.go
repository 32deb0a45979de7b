// Package diff реализует построчное сравнение наборов файлов двух версий страницы.
// Выравнивание строк считается классическим алгоритмом LCS (longest common
// subsequence) за O(n·m) — этого достаточно для файлов разметки и исходников.
package diff

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/maynagashev/pagevault/internal/archive"
)

// Тип изменения файла между двумя версиями.
const (
	FileAdded    = "added"
	FileDeleted  = "deleted"
	FileModified = "modified"
)

// Тип строки внутри ханка.
const (
	LineAdd     = "add"
	LineRemove  = "remove"
	LineContext = "context"
)

// Line — одна строка ханка: добавленная, удалённая или контекстная.
// Number — номер строки (с единицы): для добавленных — в новой версии,
// для остальных — в старой.
type Line struct {
	Type    string `json:"type"`
	Content string `json:"line"`
	Number  int    `json:"line_number"`
}

// Hunk — непрерывный блок построчных изменений внутри файла.
type Hunk struct {
	OldStart int    `json:"old_start"`
	NewStart int    `json:"new_start"`
	Lines    []Line `json:"lines"`
}

// FileDiff — изменения одного файла между двумя наборами.
type FileDiff struct {
	Path  string `json:"path"`
	Type  string `json:"type"`
	Hunks []Hunk `json:"hunks"`
}

// FileSets сравнивает два набора (путь → текст) и возвращает изменения по файлам.
// Файлы с одинаковым содержимым в результат не попадают.
// Результат отсортирован по пути, чтобы вывод был воспроизводимым.
func FileSets(newFiles, oldFiles map[string]string) []FileDiff {
	paths := make([]string, 0, len(newFiles)+len(oldFiles))
	seen := make(map[string]bool, len(newFiles)+len(oldFiles))
	for path := range newFiles {
		paths = append(paths, path)
		seen[path] = true
	}
	for path := range oldFiles {
		if !seen[path] {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	diffs := make([]FileDiff, 0, len(paths))
	for _, path := range paths {
		newText, inNew := newFiles[path]
		oldText, inOld := oldFiles[path]

		switch {
		case inNew && !inOld:
			diffs = append(diffs, FileDiff{
				Path:  path,
				Type:  FileAdded,
				Hunks: []Hunk{wholeFileHunk(newText, LineAdd)},
			})
		case !inNew && inOld:
			diffs = append(diffs, FileDiff{
				Path:  path,
				Type:  FileDeleted,
				Hunks: []Hunk{wholeFileHunk(oldText, LineRemove)},
			})
		case newText != oldText:
			hunks := Hunks(oldText, newText)
			if len(hunks) == 0 {
				continue // Пустой дифф для различающегося текста — в результат не попадает
			}
			diffs = append(diffs, FileDiff{Path: path, Type: FileModified, Hunks: hunks})
		}
	}
	return diffs
}

// wholeFileHunk строит единственный ханк, добавляющий или удаляющий все строки файла.
func wholeFileHunk(text, lineType string) Hunk {
	lines := strings.Split(text, "\n")
	hunk := Hunk{OldStart: 1, NewStart: 1, Lines: make([]Line, 0, len(lines))}
	for i, line := range lines {
		hunk.Lines = append(hunk.Lines, Line{Type: lineType, Content: line, Number: i + 1})
	}
	return hunk
}

// Hunks вычисляет построчные изменения между двумя текстами.
//
// Оба текста разбиваются на строки (перевод строки — разделитель, в значения
// не входит). По таблице LCS восстанавливается список совпавших пар строк,
// затем обе последовательности обходятся параллельно: серии старых строк до
// очередного совпадения становятся удалениями, серии новых — добавлениями,
// а каждая совпавшая строка закрывает текущий ханк контекстной записью.
// Хвостовой ханк вбирает все несовпавшие строки после последней пары.
func Hunks(oldText, newText string) []Hunk {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")
	matches := lcsMatches(oldLines, newLines)

	var hunks []Hunk
	var current *Hunk
	oi, ni := 0, 0

	ensure := func() {
		if current == nil {
			current = &Hunk{OldStart: oi + 1, NewStart: ni + 1}
		}
	}

	for _, m := range matches {
		for oi < m.old {
			ensure()
			current.Lines = append(current.Lines, Line{Type: LineRemove, Content: oldLines[oi], Number: oi + 1})
			oi++
		}
		for ni < m.new {
			ensure()
			current.Lines = append(current.Lines, Line{Type: LineAdd, Content: newLines[ni], Number: ni + 1})
			ni++
		}
		// Совпавшая строка закрывает накопленный ханк контекстной записью
		if current != nil {
			current.Lines = append(current.Lines, Line{Type: LineContext, Content: oldLines[oi], Number: oi + 1})
			hunks = append(hunks, *current)
			current = nil
		}
		oi++
		ni++
	}

	for oi < len(oldLines) {
		ensure()
		current.Lines = append(current.Lines, Line{Type: LineRemove, Content: oldLines[oi], Number: oi + 1})
		oi++
	}
	for ni < len(newLines) {
		ensure()
		current.Lines = append(current.Lines, Line{Type: LineAdd, Content: newLines[ni], Number: ni + 1})
		ni++
	}
	if current != nil {
		hunks = append(hunks, *current)
	}
	return hunks
}

// match — пара индексов совпавших строк (старая, новая).
type match struct {
	old int
	new int
}

// lcsMatches строит таблицу динамического программирования LCS
// (dp[i][j] — длина LCS первых i старых и первых j новых строк) и обратным
// проходом восстанавливает упорядоченный список совпавших пар.
func lcsMatches(oldLines, newLines []string) []match {
	n, m := len(oldLines), len(newLines)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if oldLines[i-1] == newLines[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	matches := make([]match, 0, dp[n][m])
	i, j := n, m
	for i > 0 && j > 0 {
		switch {
		case oldLines[i-1] == newLines[j-1]:
			matches = append(matches, match{old: i - 1, new: j - 1})
			i--
			j--
		case dp[i-1][j] >= dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	// Разворачиваем: пары восстановлены с конца
	for l, r := 0, len(matches)-1; l < r; l, r = l+1, r-1 {
		matches[l], matches[r] = matches[r], matches[l]
	}
	return matches
}

// ReadFileSet рекурсивно читает рабочий каталог страницы и возвращает набор
// (относительный путь → текст) — «текущее состояние» для сравнения.
// Бинарное содержимое представляется той же заглушкой, что и при чтении архива.
func ReadFileSet(dir string) (map[string]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("каталог '%s' недоступен: %w", dir, err)
	}

	files := make(map[string]string)
	root := os.DirFS(dir)
	err := fs.WalkDir(root, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("ошибка обхода '%s': %w", path, walkErr)
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		content, readErr := fs.ReadFile(root, path)
		if readErr != nil {
			return fmt.Errorf("ошибка чтения файла '%s': %w", path, readErr)
		}
		files[path] = archive.DecodeText(content)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
