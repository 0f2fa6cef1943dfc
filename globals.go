package domkit

import (
	"github.com/domkit/domkit/internal/store"
)

// Set stores a value in the instance-local globals map. Nothing is
// persisted; other instances do not see it.
func (d *Doc) Set(key string, v interface{}) {
	d.globals.Store(key, v)
}

// Get reads a value from the instance-local globals map.
func (d *Doc) Get(key string) (interface{}, bool) {
	return d.globals.Load(key)
}

// Save persists a value under key in the durable store, using the
// same JSON codec as the network helpers.
func (d *Doc) Save(key string, v interface{}) error {
	s, err := d.openStore()
	if err != nil {
		return err
	}
	return s.Save(key, v)
}

// LoadValue retrieves a persisted value. A missing key yields the
// caller-supplied default.
func (d *Doc) LoadValue(key string, def interface{}) interface{} {
	s, err := d.openStore()
	if err != nil {
		return def
	}
	return s.Load(key, def)
}

// openStore opens the backing store on first use.
func (d *Doc) openStore() (*store.Store, error) {
	d.storeMu.Lock()
	defer d.storeMu.Unlock()

	if d.store != nil {
		return d.store, nil
	}

	s, err := store.Open(d.cfg.Storage.Dir)
	if err != nil {
		return nil, err
	}
	d.store = s
	return s, nil
}
