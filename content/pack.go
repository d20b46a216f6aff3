package content

import (
	_ "embed"
	"fmt"
)

//go:embed default_pack.yaml
var defaultPackYAML []byte

// DefaultPack returns a fresh copy of the built-in content
func DefaultPack() *Pack {
	pack, err := NewManager(0).ParseYAML(defaultPackYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in content pack: %v", err))
	}
	return pack
}
