package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageLocks_SerializesSamePage(t *testing.T) {
	locks := NewPageLocks()
	const workers = 50

	// Без сериализации инкремент без атомиков дал бы потерянные записи
	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := locks.lock(1)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestPageLocks_IndependentPages(t *testing.T) {
	locks := NewPageLocks()

	// Блокировка одной страницы не мешает взять блокировку другой
	unlockFirst := locks.lock(1)
	defer unlockFirst()

	done := make(chan struct{})
	go func() {
		unlock := locks.lock(2)
		unlock()
		close(done)
	}()
	<-done
}

func TestPageLocks_Forget(t *testing.T) {
	locks := NewPageLocks()

	unlock := locks.lock(7)
	_, found := locks.locks.Load(int64(7))
	assert.True(t, found, "после lock запись должна существовать")

	locks.forget(7)
	unlock()

	_, found = locks.locks.Load(int64(7))
	assert.False(t, found, "после forget запись должна быть удалена")

	// Повторная блокировка после forget создает свежую запись
	unlock = locks.lock(7)
	unlock()
	_, found = locks.locks.Load(int64(7))
	assert.True(t, found)
}
