package api

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"opticat/internal/importer"
)

// sessionRegistry 内存会话表，过期会话自动清理
type sessionRegistry struct {
	cache *gocache.Cache
}

func newSessionRegistry(ttl time.Duration) *sessionRegistry {
	return &sessionRegistry{cache: gocache.New(ttl, 10*time.Minute)}
}

func (r *sessionRegistry) put(sess *importer.Session) {
	r.cache.SetDefault(sess.ID, sess)
}

func (r *sessionRegistry) get(id string) (*importer.Session, bool) {
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*importer.Session), true
}

// touch 访问后续期，避免长预览期间会话被回收
func (r *sessionRegistry) touch(sess *importer.Session) {
	r.cache.SetDefault(sess.ID, sess)
}
