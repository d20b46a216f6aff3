package content

import (
	"fmt"
	"log"

	"github.com/lixenwraith/codedraw/config"
)

// Service loads the content pack at startup and exposes a Supplier
type Service struct {
	pack     *Pack
	supplier *Supplier
	source   string
}

// NewService creates a new content service
func NewService() *Service {
	return &Service{}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "content"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *config.Config - content path, line length and seed
// A configured path that fails to load falls back to the built-in pack
func (s *Service) Init(args ...any) error {
	cfg := config.Default()
	if len(args) > 0 {
		c, ok := args[0].(*config.Config)
		if !ok || c == nil {
			return fmt.Errorf("content: expected *config.Config, got %T", args[0])
		}
		cfg = c
	}

	s.pack, s.source = load(cfg.Content)
	lines, shapes := s.pack.Counts()
	log.Printf("Content from %s: %d lines, %d shapes", s.source, lines, shapes)

	s.supplier = NewSupplier(s.pack, cfg.Engine.Seed)
	return nil
}

func load(cc config.ContentConfig) (*Pack, string) {
	if cc.Path == "" {
		return DefaultPack(), "built-in pack"
	}

	m := NewManager(cc.MaxLineLength)
	if err := m.Discover(cc.Path); err != nil {
		log.Printf("Content discovery failed, using built-in pack: %v", err)
		return DefaultPack(), "built-in pack"
	}
	pack, err := m.LoadAll()
	if err != nil {
		log.Printf("Content load failed, using built-in pack: %v", err)
		return DefaultPack(), "built-in pack"
	}
	return pack, cc.Path
}

// Start implements service.Service
func (s *Service) Start() error {
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	return nil
}

// Supplier returns the line and shape source, nil before Init
func (s *Service) Supplier() *Supplier {
	return s.supplier
}

// Pack returns the loaded content
func (s *Service) Pack() *Pack {
	return s.pack
}

// Source describes where the content came from
func (s *Service) Source() string {
	return s.source
}
