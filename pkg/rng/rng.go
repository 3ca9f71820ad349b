package rng

import (
	"crypto/rand"
	"encoding/binary"
	mathRand "math/rand"
	"sync"
)

// Source - источник равномерных случайных чисел в [0, n)
type Source interface {
	Intn(n int) int
}

// locked - math/rand с мьютексом, безопасен для нескольких горутин
type locked struct {
	mtx sync.Mutex
	r   *mathRand.Rand
}

// New - источник с сидом из crypto/rand
func New() Source {
	var seed int64
	if err := binary.Read(rand.Reader, binary.LittleEndian, &seed); err != nil {
		seed = mathRand.Int63()
	}
	return NewSeeded(seed)
}

// NewSeeded - детерминированный источник для симуляций и тестов
func NewSeeded(seed int64) Source {
	return &locked{r: mathRand.New(mathRand.NewSource(seed))}
}

func (l *locked) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.r.Intn(n)
}

// Sequence отдает заранее записанные значения по кругу (значение берется по модулю n)
type Sequence struct {
	mtx    sync.Mutex
	values []int
	pos    int
	calls  []int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Intn(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.calls = append(s.calls, n)
	if n <= 0 || len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Calls - аргументы n всех вызовов Intn по порядку
func (s *Sequence) Calls() []int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return append([]int(nil), s.calls...)
}
