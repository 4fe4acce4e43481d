package catalog

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"
)

// File is the YAML document replacing the built-in catalog.
//
//	entries:
//	  - key: alias.ci
//	    value: commit
//	  - key: core.editor
//	    value: notepad
//	    platforms: [windows]
type File struct {
	Entries []*Definition `yaml:"entries" json:"entries"`
}

// Loader reads catalog files through afs, so any afs URL scheme works.
type Loader struct {
	fs      afs.Service
	options []storage.Option
}

// NewLoader creates a loader; options are passed to every download (for
// example an embed.FS).
func NewLoader(fs afs.Service, options ...storage.Option) *Loader {
	if fs == nil {
		fs = afs.New()
	}
	return &Loader{fs: fs, options: options}
}

// Load downloads and parses the catalog at URL.
func (l *Loader) Load(ctx context.Context, URL string) ([]*Definition, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL, l.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", URL, err)
	}
	file := &File{}
	if err = yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", URL, err)
	}
	if err = Validate(file.Entries); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", URL, err)
	}
	return file.Entries, nil
}
