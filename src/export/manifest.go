package export

import (
	"encoding/json"
	"fmt"
	"os"
)

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// rewriteManifestWithout rewrites the manifest at path excluding every entry
// whose Name equals drop. Used by the skip policy so the manifest converges
// to only the successfully exported items.
func rewriteManifestWithout(path, drop string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("rewrite manifest %s: %w", path, err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("rewrite manifest %s: %w", path, err)
	}
	kept := make([]json.RawMessage, 0, len(entries))
	for _, e := range entries {
		var peek struct {
			Name string `json:"Name"`
		}
		if err := json.Unmarshal(e, &peek); err != nil {
			return fmt.Errorf("rewrite manifest %s: %w", path, err)
		}
		if peek.Name == drop {
			continue
		}
		kept = append(kept, e)
	}
	return writeJSON(path, kept)
}
