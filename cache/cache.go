package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// The cache is a package used for large objects that are built or loaded
// exactly once per process and shared read-only afterwards: the midgame edge
// table and the opening book.

type cache struct {
	sync.Mutex
	objects map[string]interface{}
}

type loadFunc func(key string) (interface{}, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache = &cache{objects: make(map[string]interface{})}

func (c *cache) load(key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(key string, loadFunc loadFunc) (interface{}, error) {
	var ok bool
	var obj interface{}
	c.Lock()
	defer c.Unlock()
	if obj, ok = c.objects[key]; !ok {
		err := c.load(key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

// Load fetches the object stored under name, building it with loadFunc the
// first time it is requested.
func Load(name string, loadFunc loadFunc) (interface{}, error) {
	return GlobalObjectCache.get(name, loadFunc)
}
