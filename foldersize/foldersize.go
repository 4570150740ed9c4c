package main

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/pingcap/tidb/util/mvmap"
)

// Every directory contributes its own metadata block on top of its entries.
const dirSelfSize = 4096

// MaxWorkers caps how many directory walks may run concurrently.
var MaxWorkers = runtime.NumCPU()

// Walker computes directory tree sizes with one fork-join task per
// subdirectory and indexes every visited directory's subtree size by path.
type Walker struct {
	slots chan struct{}

	mu    sync.Mutex
	sizes *mvmap.MVMap
}

func NewWalker() *Walker {
	n := MaxWorkers
	if n < 1 {
		n = 1
	}
	return &Walker{
		slots: make(chan struct{}, n),
		sizes: mvmap.NewMVMap(),
	}
}

// FolderSize returns the total size in bytes of the tree rooted at path:
// all file sizes plus dirSelfSize per directory. Symlinks are not followed
// and count their own size. Entries that cannot be read are logged and
// contribute nothing; only an unusable root is an error.
func (w *Walker) FolderSize(path string) (int64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}
	return w.walk(path), nil
}

// Size looks up the subtree size recorded for a directory during a walk.
// The second result is false for paths that were never visited.
func (w *Walker) Size(path string) (int64, bool) {
	w.mu.Lock()
	vals := w.sizes.Get([]byte(path), nil)
	w.mu.Unlock()
	if len(vals) == 0 {
		return 0, false
	}
	// Re-walked paths append; the latest walk wins.
	return *(*int64)(unsafe.Pointer(&vals[len(vals)-1][0])), true
}

// walk returns the subtree size of one directory. Each subdirectory runs as
// a concurrent task when a worker slot is free and inline otherwise, and the
// parent joins all children before recording its total. Children fold their
// results into the parent's accumulator, so every add must be atomic or
// concurrent updates would be lost.
func (w *Walker) walk(path string) int64 {
	entries, err := os.ReadDir(path)
	if err != nil {
		log.Println("readdir:", err)
		return 0
	}

	size := int64(dirSelfSize)

	var wg sync.WaitGroup
	for _, entry := range entries {
		name := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			wg.Add(1)
			task := func() {
				defer wg.Done()
				atomic.AddInt64(&size, w.walk(name))
			}
			select {
			case w.slots <- struct{}{}:
				go func() {
					defer func() { <-w.slots }()
					task()
				}()
			default:
				task()
			}
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Println("lstat:", err)
			continue
		}
		atomic.AddInt64(&size, info.Size())
	}
	wg.Wait()

	total := atomic.LoadInt64(&size)
	w.record(path, total)
	return total
}

func (w *Walker) record(path string, size int64) {
	val := make([]byte, 8)
	*(*int64)(unsafe.Pointer(&val[0])) = size
	w.mu.Lock()
	w.sizes.Put([]byte(path), val)
	w.mu.Unlock()
}
