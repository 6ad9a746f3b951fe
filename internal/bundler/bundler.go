// Package bundler implements the multi-file scan queue: starting from a set
// of entry files it parses each one, collects its import records, and
// enqueues the modules they reference.
package bundler

import (
	"os"
	"path"

	"github.com/jacobjonsson/packet/pkg/ast"
	"github.com/jacobjonsson/packet/pkg/logger"
	"github.com/jacobjonsson/packet/pkg/packet"
	"github.com/jacobjonsson/packet/pkg/source"
)

// FS abstracts file access so the queue can be driven by an in-memory tree
// in tests.
type FS interface {
	ReadFile(path string) (string, error)
}

// OSFS reads from the real filesystem.
type OSFS struct{}

func (OSFS) ReadFile(name string) (string, error) {
	data, err := os.ReadFile(name)
	return string(data), err
}

// MockFS serves files from a map of path to contents.
type MockFS struct {
	Files map[string]string
}

func (m MockFS) ReadFile(name string) (string, error) {
	contents, ok := m.Files[name]
	if !ok {
		return "", os.ErrNotExist
	}
	return contents, nil
}

// File is one parsed module.
type File struct {
	Path     string
	Program  *ast.Program
	Messages []logger.Message
}

// Bundler walks the module graph breadth-first.
type Bundler struct {
	fs      FS
	queue   []string
	visited map[string]bool

	// Files holds every parsed module in discovery order.
	Files []*File
}

// New creates a bundler over the given filesystem.
func New(fs FS) *Bundler {
	return &Bundler{fs: fs, visited: make(map[string]bool)}
}

// Scan parses the entry files and every relative module they import.
// Files that cannot be read are skipped; parse diagnostics are recorded on
// the file entry.
func (b *Bundler) Scan(entries []string) {
	b.queue = append(b.queue, entries...)
	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		if b.visited[next] {
			continue
		}
		b.visited[next] = true
		b.scanFile(next)
	}
}

func (b *Bundler) scanFile(filePath string) {
	contents, err := b.fs.ReadFile(filePath)
	if err != nil {
		return
	}

	src := source.New(filePath, contents)
	sink := &logger.Recorder{}
	program, _ := packet.ParseSource(src, sink)

	file := &File{Path: filePath, Program: program, Messages: sink.Messages}
	b.Files = append(b.Files, file)

	for _, record := range importRecords(program) {
		if resolved, ok := resolve(filePath, record); ok {
			b.queue = append(b.queue, resolved)
		}
	}
}

// importRecords collects the module sources referenced by a program.
func importRecords(program *ast.Program) []string {
	var records []string
	for _, stmt := range program.Statements {
		switch s := stmt.(type) {
		case *ast.ImportDeclaration:
			records = append(records, s.Source.Value)
		case *ast.ExportAllDeclaration:
			records = append(records, s.Source.Value)
		case *ast.ExportNamedSpecifiers:
			if s.Source != nil {
				records = append(records, s.Source.Value)
			}
		}
	}
	return records
}

// resolve turns a relative import specifier into a path next to the
// importing file. Bare specifiers are not resolvable here.
func resolve(importer string, specifier string) (string, bool) {
	if len(specifier) == 0 || specifier[0] != '.' {
		return "", false
	}
	return path.Join(path.Dir(importer), specifier), true
}
