package services

import "sync"

// pageLocks сериализует изменяющие операции по каждой странице.
//
// Создание снимка читает счётчик версий и рабочий каталог, а откат
// перезаписывает каталог в несколько шагов — без сериализации два
// конкурирующих вызова могли бы перемешать состояние каталога.
// Операции над разными страницами друг другу не мешают.
type pageLocks struct {
	locks sync.Map // map[int64]*sync.Mutex
}

// NewPageLocks создает общий набор блокировок страниц.
// Один экземпляр разделяется всеми сервисами, изменяющими страницы.
func NewPageLocks() *pageLocks { //nolint:revive // Неэкспортируемый тип намеренно: наружу нужен только конструктор
	return &pageLocks{}
}

// lock захватывает блокировку страницы и возвращает функцию освобождения.
func (l *pageLocks) lock(pageID int64) func() {
	mu, _ := l.locks.LoadOrStore(pageID, &sync.Mutex{})
	m := mu.(*sync.Mutex) //nolint:errcheck // В map кладутся только *sync.Mutex
	m.Lock()
	return m.Unlock
}

// forget удаляет блокировку уничтоженной страницы, иначе набор растёт
// с каждой когда-либо тронутой страницей. Вызывается под самой блокировкой:
// опоздавший конкурент всё равно получит «страница не найдена» при поиске.
func (l *pageLocks) forget(pageID int64) {
	l.locks.Delete(pageID)
}
