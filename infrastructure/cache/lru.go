package cache

import (
	"container/list"
	"strconv"
	"sync"

	"golang.org/x/image/font"
)

// FaceCache is a bounded LRU of parsed font faces keyed by font path and
// point size. Parsing a TTF and building a face is the expensive part of
// composition; the URL shrink-to-fit loop alone can probe a dozen sizes.
type FaceCache struct {
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	mutex    sync.Mutex
}

type entry struct {
	key  string
	face font.Face
}

// NewFaceCache creates a face cache with the specified capacity.
func NewFaceCache(capacity int) *FaceCache {
	if capacity < 1 {
		capacity = 1
	}
	return &FaceCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		queue:    list.New(),
	}
}

// Set adds or updates the face for a (path, size) pair.
func (c *FaceCache) Set(path string, size float64, face font.Face) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := cacheKey(path, size)

	if element, exists := c.items[key]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*entry).face = face
		return
	}

	element := c.queue.PushFront(&entry{key: key, face: face})
	c.items[key] = element

	if c.queue.Len() > c.capacity {
		c.evict()
	}
}

// Get retrieves the face for a (path, size) pair, marking it recently used.
func (c *FaceCache) Get(path string, size float64) (font.Face, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	element, exists := c.items[cacheKey(path, size)]
	if !exists {
		return nil, false
	}

	c.queue.MoveToFront(element)
	return element.Value.(*entry).face, true
}

// Size returns the current number of cached faces.
func (c *FaceCache) Size() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.queue.Len()
}

// evict removes the least recently used face. Caller holds the lock.
func (c *FaceCache) evict() {
	element := c.queue.Back()
	if element == nil {
		return
	}
	c.queue.Remove(element)
	delete(c.items, element.Value.(*entry).key)
}

func cacheKey(path string, size float64) string {
	return path + ":" + strconv.FormatFloat(size, 'f', 1, 64)
}
