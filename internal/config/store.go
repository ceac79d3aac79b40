package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// FileName is the name of the dotenv file inside DefaultDir.
const FileName = ".env"

// DefaultPath returns the configuration file used when no path is given.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), FileName)
}

// Store reads and writes the dotenv configuration file. It keeps no cached
// state: every Load reads the file and every Save writes it through.
type Store struct {
	path string
	log  logger.Logger
}

// NewStore returns a store backed by the file at path. A nil log falls back to
// the Wails console logger.
func NewStore(path string, log logger.Logger) *Store {
	if path == "" {
		path = DefaultPath()
	}
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	return &Store{path: path, log: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the value of every recognised key. A missing file or key
// yields "". When the file does not parse as a whole, it is read line by line
// and only the lines that fail are skipped.
func (s *Store) Load() Values {
	values := emptyValues()

	env, err := godotenv.Read(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return values
	}
	if err != nil {
		s.log.Warning(fmt.Sprintf("config: skipping unparseable lines in %s: %v", s.path, err))
		env = s.readLenient()
	}

	for _, k := range Keys() {
		values[k] = env[string(k)]
	}
	return values
}

// Save writes every non-empty value in updates. Empty values leave the stored
// entry as it is; they never clear it. Lines for other keys, comments and
// blank lines are kept in place.
func (s *Store) Save(updates Values) error {
	pending := make(map[Key]string, len(updates))
	for k, v := range updates {
		if !k.Valid() {
			return fmt.Errorf("%w: %s", ErrUnknownKey, k)
		}
		if v == "" {
			continue
		}
		pending[k] = v
	}
	if len(pending) == 0 {
		return nil
	}

	rendered := make(map[Key]string, len(pending))
	for k, v := range pending {
		line, err := renderLine(k, v)
		if err != nil {
			return err
		}
		rendered[k] = line
	}

	lines, err := readLines(s.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	written := make(map[Key]bool, len(rendered))
	for i, line := range lines {
		name, ok := lineKey(line)
		if !ok {
			continue
		}
		replacement, found := rendered[Key(name)]
		if !found {
			continue
		}
		lines[i] = replacement + lineEnding(line)
		written[Key(name)] = true
	}

	eol := fileEnding(lines)
	for _, k := range Keys() {
		replacement, found := rendered[k]
		if !found || written[k] {
			continue
		}
		if n := len(lines); n > 0 && lineEnding(lines[n-1]) == "" {
			lines[n-1] += eol
		}
		lines = append(lines, replacement+eol)
	}

	if err := writeFileAtomic(s.path, []byte(strings.Join(lines, ""))); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	s.log.Debug(fmt.Sprintf("config: saved %d key(s) to %s", len(rendered), s.path))
	return nil
}

// renderLine formats a single KEY="value" line with godotenv's quoting rules.
// Marshal writes integer-looking values bare, which drops leading zeros, so
// every candidate is parsed back and single quotes are the fallback.
func renderLine(k Key, v string) (string, error) {
	line, err := godotenv.Marshal(map[string]string{string(k): v})
	if err != nil {
		return "", fmt.Errorf("render %s: %w", k, err)
	}
	if readsBack(line, k, v) {
		return line, nil
	}
	line = fmt.Sprintf("%s='%s'", k, v)
	if readsBack(line, k, v) {
		return line, nil
	}
	return "", fmt.Errorf("render %s: value cannot be stored verbatim", k)
}

// readLenient parses each KEY=VALUE line on its own. Later lines win, as
// they do for godotenv.
func (s *Store) readLenient() map[string]string {
	env := make(map[string]string)
	lines, err := readLines(s.path)
	if err != nil {
		s.log.Warning(fmt.Sprintf("config: cannot read %s: %v", s.path, err))
		return env
	}
	for i, line := range lines {
		if _, ok := lineKey(line); !ok {
			continue
		}
		parsed, err := godotenv.Unmarshal(line)
		if err != nil {
			s.log.Debug(fmt.Sprintf("config: %s line %d skipped: %v", s.path, i+1, err))
			continue
		}
		for k, v := range parsed {
			env[k] = v
		}
	}
	return env
}

func readsBack(line string, k Key, v string) bool {
	parsed, err := godotenv.Unmarshal(line)
	return err == nil && parsed[string(k)] == v
}

// readLines returns the file split after each newline, every element keeping
// its line ending. A missing file is empty.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// lineKey extracts the variable name from a KEY=VALUE or export KEY=VALUE line.
func lineKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))
	idx := strings.Index(trimmed, "=")
	if idx <= 0 {
		return "", false
	}
	name := strings.TrimSpace(trimmed[:idx])
	return name, name != ""
}

func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}

// fileEnding is the line ending of the first terminated line, "\n" by default.
func fileEnding(lines []string) string {
	for _, line := range lines {
		if eol := lineEnding(line); eol != "" {
			return eol
		}
	}
	return "\n"
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	mode := fs.FileMode(0600)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, ".env-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
