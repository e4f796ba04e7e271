package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem is an in-memory FileSystem used by tests. It records how
// many directory listings were requested so tests can assert that a code path
// never enumerated the project tree.
type MockFileSystem struct {
	files      map[string]*MockFile
	readOnly   map[string]bool
	currentDir string

	readDirCalls []string
}

// MockFile represents a file or directory in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
	// Target is the absolute path a symlink points to
	Target string
}

type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

type mockDirEntry struct {
	info fs.FileInfo
}

func (m *mockDirEntry) Name() string               { return m.info.Name() }
func (m *mockDirEntry) IsDir() bool                { return m.info.IsDir() }
func (m *mockDirEntry) Type() fs.FileMode          { return m.info.Mode().Type() }
func (m *mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

// NewMockFileSystem creates an empty MockFileSystem rooted at /workspace
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:      make(map[string]*MockFile),
		readOnly:   make(map[string]bool),
		currentDir: "/workspace",
	}
}

// AddFile adds a file, creating missing parent directories
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
	}
	mfs.addParents(cleanPath)
}

// AddDir adds a directory, creating missing parent directories
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}
	mfs.addParents(cleanPath)
}

func (mfs *MockFileSystem) addParents(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.files[dir] = &MockFile{
				Mode:    0755 | fs.ModeDir,
				ModTime: time.Now(),
				IsDir:   true,
			}
		}
		dir = filepath.Dir(dir)
	}
}

// AddSymlink adds a symlink at link pointing to target. A relative target is
// taken relative to the link's directory.
func (mfs *MockFileSystem) AddSymlink(link, target string) {
	cleanLink := filepath.Clean(link)
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(cleanLink), target)
	}
	mfs.files[cleanLink] = &MockFile{
		Mode:    fs.ModeSymlink | 0777,
		ModTime: time.Now(),
		Target:  filepath.Clean(target),
	}
	mfs.addParents(cleanLink)
}

// resolve follows symlinks in every component of path.
func (mfs *MockFileSystem) resolve(path string) string {
	cleanPath := filepath.Clean(path)
	for hops := 0; hops < 40; hops++ {
		link, target, ok := mfs.firstLink(cleanPath)
		if !ok {
			return cleanPath
		}
		rest, err := filepath.Rel(link, cleanPath)
		if err != nil {
			return cleanPath
		}
		cleanPath = filepath.Join(target, rest)
	}
	return cleanPath
}

func (mfs *MockFileSystem) firstLink(cleanPath string) (string, string, bool) {
	current := ""
	if filepath.IsAbs(cleanPath) {
		current = string(filepath.Separator)
	}
	for _, part := range strings.Split(cleanPath, string(filepath.Separator)) {
		if part == "" {
			continue
		}
		current = filepath.Join(current, part)
		if f, ok := mfs.files[current]; ok && f.Target != "" {
			return current, f.Target, true
		}
	}
	return "", "", false
}

// SetReadOnly makes WriteFile fail with fs.ErrPermission for files directly
// inside dir.
func (mfs *MockFileSystem) SetReadOnly(dir string) {
	mfs.readOnly[filepath.Clean(dir)] = true
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	file, exists := mfs.files[mfs.resolve(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, errors.New("is a directory")
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	cleanPath := mfs.resolve(path)

	dir := filepath.Dir(cleanPath)
	if dir != "." && dir != "/" {
		parent, exists := mfs.files[dir]
		if !exists || !parent.IsDir {
			return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
	}
	if mfs.readOnly[dir] {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}

	mfs.files[cleanPath] = &MockFile{
		Content: data,
		Mode:    perm,
		ModTime: time.Now(),
	}
	return nil
}

func (mfs *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	mfs.readDirCalls = append(mfs.readDirCalls, filepath.Clean(path))

	cleanPath := mfs.resolve(path)
	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if !file.IsDir {
		return nil, errors.New("not a directory")
	}

	var entries []fs.DirEntry
	for p, f := range mfs.files {
		if p == cleanPath || filepath.Dir(p) != cleanPath {
			continue
		}
		entries = append(entries, &mockDirEntry{info: &mockFileInfo{
			name:    filepath.Base(p),
			size:    int64(len(f.Content)),
			mode:    f.Mode,
			modTime: f.ModTime,
			isDir:   f.IsDir,
		}})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

// Stat follows symlinks
func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(path)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}

	return &mockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(file.Content)),
		mode:    file.Mode,
		modTime: file.ModTime,
		isDir:   file.IsDir,
	}, nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[mfs.resolve(path)]
	return exists
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

// SetCurrentDir sets the directory Getwd reports
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = dir
}

// ReadDirCalls returns the cleaned paths passed to ReadDir, in call order
func (mfs *MockFileSystem) ReadDirCalls() []string {
	return append([]string(nil), mfs.readDirCalls...)
}
