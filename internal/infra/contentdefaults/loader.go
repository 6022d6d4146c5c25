// Package contentdefaults supplies seed payloads for content blocks that have
// no database record yet.
package contentdefaults

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"showcase/config"
	"showcase/internal/domain/entity"
	"showcase/internal/domain/service"
	"showcase/internal/errors"
)

//go:embed builtin/*.json
var builtinFS embed.FS

// loader searches each source in order. Within a source the language-specific
// file {type}Content.{lang}.json wins over the generic {type}Content.json.
type loader struct {
	sources []fs.FS
	logger  *slog.Logger
}

// New reads defaults from the configured directory, then from the payloads
// compiled into the binary.
func New(cfg *config.Config, logger *slog.Logger) service.ContentDefaults {
	var sources []fs.FS
	if cfg.Content != nil && cfg.Content.DefaultsDir != "" {
		sources = append(sources, os.DirFS(cfg.Content.DefaultsDir))
	}

	return newLoader(logger, append(sources, builtinSource())...)
}

func newLoader(logger *slog.Logger, sources ...fs.FS) *loader {
	return &loader{sources: sources, logger: logger}
}

func builtinSource() fs.FS {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}

	return sub
}

// FileNames returns the candidate file names for a content block, most specific first.
func FileNames(contentType entity.ContentType, language entity.Language) []string {
	base := string(contentType) + "Content"

	return []string{
		base + "." + strings.ToLower(string(language)) + ".json",
		base + ".json",
	}
}

func (l *loader) Load(_ context.Context, contentType entity.ContentType, language entity.Language) (map[string]any, error) {
	names := FileNames(contentType, language)

	for _, source := range l.sources {
		for _, name := range names {
			raw, err := fs.ReadFile(source, name)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}

				return nil, errors.Wrapf(err, "read default content %s", name)
			}

			var data map[string]any
			if err := json.Unmarshal(raw, &data); err != nil {
				return nil, errors.Wrapf(err, "parse default content %s", name)
			}

			l.logger.Debug("Loaded default content",
				slog.String("type", string(contentType)),
				slog.String("language", string(language)),
				slog.String("file", name),
			)

			return data, nil
		}
	}

	return nil, service.ErrNoDefaultContent
}
