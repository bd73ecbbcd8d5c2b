// go test -v -cpu=8 -run=none -bench=. -benchtime=5s -benchmem bench_test.go
package bench

import (
	"container/list"
	"math/rand"
	"testing"

	"github.com/gammazero/deque"
	"github.com/phuslu/ringlist"
	"github.com/phuslu/ringlist/mem"
)

const (
	listsize = 4096
	keysize  = 16
)

var indexes = func() (x [1024]int) {
	r := rand.New(rand.NewSource(42))
	for i := range x {
		x[i] = r.Intn(2*listsize) - listsize
	}
	return
}()

func BenchmarkRinglistGet(b *testing.B) {
	l := ringlist.New[int](ringlist.WithCapacity[int](listsize))
	for i := 0; i < listsize; i++ {
		l.PushBack(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = l.Get(indexes[i&1023])
	}
}

func BenchmarkContainerListGet(b *testing.B) {
	l := list.New()
	for i := 0; i < listsize; i++ {
		l.PushBack(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n := indexes[i&1023]
		if n < 0 {
			n += listsize
		}
		e := l.Front()
		for ; n > 0; n-- {
			e = e.Next()
		}
		_ = e.Value
	}
}

func BenchmarkDequeAt(b *testing.B) {
	var q deque.Deque[int]
	for i := 0; i < listsize; i++ {
		q.PushBack(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n := indexes[i&1023]
		if n < 0 {
			n += listsize
		}
		_ = q.At(n)
	}
}

func BenchmarkRinglistInsertRemove(b *testing.B) {
	l := ringlist.New[int](ringlist.WithCapacity[int](listsize + 1))
	for i := 0; i < listsize; i++ {
		l.PushBack(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n := indexes[i&1023]
		l.Insert(n, i)
		l.Remove(n)
	}
}

func BenchmarkContainerListInsertRemove(b *testing.B) {
	l := list.New()
	for i := 0; i < listsize; i++ {
		l.PushBack(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n := indexes[i&1023]
		if n < 0 {
			n += listsize
		}
		e := l.Front()
		for ; n > 0; n-- {
			e = e.Next()
		}
		l.Remove(l.InsertBefore(i, e))
	}
}

var key = []byte("0123456789abcdef")[:keysize]

func BenchmarkHashBKDR(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = mem.BKDR(key)
	}
}

func BenchmarkHashDJB(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = mem.DJB(key)
	}
}

func BenchmarkHashSip(b *testing.B) {
	var k [16]byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = mem.SipHash(k, key)
	}
}

func BenchmarkHashXX(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = mem.XXHash(key)
	}
}
