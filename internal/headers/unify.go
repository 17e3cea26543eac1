package headers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteUmbrellas writes one umbrella header per recorded filename into dir.
// Each umbrella is a sequence of guarded #include directives referencing the
// architecture-suffixed variants staged next to it, so client code includes
// one filename and the preprocessor picks the right architecture.
func WriteUmbrellas(dir string, reg Registry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create umbrella dir %s: %w", dir, err)
	}
	for _, name := range reg.Names() {
		if err := writeUmbrella(dir, name, reg.Guards(name)); err != nil {
			return err
		}
	}
	return nil
}

func writeUmbrella(dir, name string, guards []Guard) error {
	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]

	var body strings.Builder
	for _, g := range guards {
		body.WriteString(g.Prefix)
		fmt.Fprintf(&body, "#include <%s_%s%s>\n", stem, g.Arch, ext)
		body.WriteString(g.Suffix)
		body.WriteString("\n")
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write umbrella header %s: %w", path, err)
	}
	return nil
}
