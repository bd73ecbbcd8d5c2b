// Copyright 2023 Phus Lu. All rights reserved.

package ringlist

import (
	"runtime"
	"sync/atomic"
)

type spinlock struct {
	lock atomic.Uint32
}

func (l *spinlock) Lock() {
	for {
		for i := 0; l.lock.Load() == 1; i++ {
			if i&63 == 63 {
				runtime.Gosched()
			}
		}
		if l.lock.CompareAndSwap(0, 1) {
			return
		}
	}
}

func (l *spinlock) Unlock() {
	l.lock.Store(0)
}
