package vocabulary

import (
	"github.com/hashicorp/go-hclog"
)

// Store tracks the active vocabulary key and lazily loads its entries.
// A Store is not safe for concurrent use.
type Store struct {
	registry *Registry
	loader   *Loader
	logger   hclog.Logger

	active  Definition
	current *Vocabulary
}

// NewStore creates a store with key active. Nothing is loaded until Active
// is called. A nil registry uses DefaultRegistry, a nil loader reads the
// bundled vocabularies and a nil logger discards output.
func NewStore(registry *Registry, loader *Loader, key string, logger hclog.Logger) (*Store, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if loader == nil {
		loader = NewLoader(nil, logger)
	}

	def, err := registry.Resolve(key)
	if err != nil {
		return nil, err
	}

	return &Store{
		registry: registry,
		loader:   loader,
		logger:   logger,
		active:   def,
	}, nil
}

// Registry returns the registry the store resolves keys against.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Key returns the active vocabulary key.
func (s *Store) Key() string {
	return s.active.Key
}

// Loaded reports whether the active vocabulary has been materialised.
func (s *Store) Loaded() bool {
	return s.current != nil
}

// Switch makes key the active vocabulary and drops the cached entries. An
// unknown key leaves the store unchanged. Resource errors surface on the
// next call to Active.
func (s *Store) Switch(key string) error {
	def, err := s.registry.Resolve(key)
	if err != nil {
		return err
	}

	s.logger.Debug("switching vocabulary", "from", s.active.Key, "to", def.Key)
	s.active = def
	s.current = nil
	return nil
}

// Active returns the active vocabulary, loading it on first access.
func (s *Store) Active() (*Vocabulary, error) {
	if s.current != nil {
		return s.current, nil
	}

	v, err := s.loader.Load(s.active)
	if err != nil {
		return nil, err
	}
	s.current = v
	return v, nil
}

// Invalidate drops the cached vocabulary and any parsed resources so the
// next access re-reads the backing store.
func (s *Store) Invalidate() {
	s.current = nil
	s.loader.Invalidate()
}

// Borrow runs fn with key temporarily active. The previously active key and
// its cached vocabulary are restored when Borrow returns, including when the
// load or fn fails or fn panics.
func (s *Store) Borrow(key string, fn func(*Vocabulary) error) error {
	def, err := s.registry.Resolve(key)
	if err != nil {
		return err
	}

	prevDef, prevCurrent := s.active, s.current
	defer func() {
		s.active, s.current = prevDef, prevCurrent
		s.logger.Trace("restored vocabulary", "key", prevDef.Key)
	}()

	if def.Key != prevDef.Key {
		s.logger.Debug("borrowing vocabulary", "key", def.Key, "active", prevDef.Key)
		s.active, s.current = def, nil
	}

	v, err := s.Active()
	if err != nil {
		return err
	}
	return fn(v)
}
