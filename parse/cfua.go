package parse

// Package parse loads and saves CFUA documents on disk. The text format itself
// lives in parse/cfua; this layer only adds file access and logging.

import (
	"fmt"
	"os"
	"sync"

	"github.com/dzjyyds666/cfua/parse/cfua"
	"github.com/dzjyyds666/cfua/pkg"
	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the parse package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the parse package's logger.
// This must be called before any load or save operations.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// LoadFile reads and parses the CFUA file at path. Read failures are returned
// as cfua I/O errors; syntax errors are returned unchanged.
func LoadFile(path string, opts ...cfua.Option) (*cfua.Document, error) {
	exist, err := pkg.CheckFileExist(path)
	if err != nil {
		return nil, cfua.IOError(err)
	}
	if !exist {
		return nil, cfua.IOError(fmt.Errorf("%s: %w", path, os.ErrNotExist))
	}

	data, err := pkg.ReadText(path)
	if err != nil {
		return nil, cfua.IOError(err)
	}

	doc, err := cfua.Parse(data, opts...)
	if err != nil {
		Logger().Debug("parse failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	Logger().Debug("loaded file",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Int("pairs", doc.Len()))
	return doc, nil
}

// SaveFile writes doc to path in canonical form, replacing any existing file.
func SaveFile(path string, doc *cfua.Document) error {
	data, err := cfua.Marshal(doc)
	if err != nil {
		return err
	}
	if err := pkg.WriteText(path, data); err != nil {
		return cfua.IOError(err)
	}

	Logger().Debug("saved file",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Int("pairs", doc.Len()))
	return nil
}
