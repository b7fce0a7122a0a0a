// Package storage persists high scores as one msgpack record file per player.
package storage

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// FileExt is the extension of score record files.
const FileExt = ".score"

// maxNameLength bounds the player part of a record file name.
const maxNameLength = 16

// Record is one player's persisted best score.
type Record struct {
	Score   int       `msgpack:"score"`
	Player  string    `msgpack:"player"`
	SavedAt time.Time `msgpack:"savedAt"`
}

// FileStore keeps a single player's high score in dir.
type FileStore struct {
	dir    string
	player string
	now    func() time.Time
}

// NewFileStore returns a store for player's record inside dir. The directory
// is created on the first Save.
func NewFileStore(dir, player string) *FileStore {
	return &FileStore{dir: dir, player: player, now: time.Now}
}

// Path returns the record file path.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, FileName(s.player))
}

// Load returns the stored score. A missing record is not an error and yields
// 0; an unreadable or corrupt record yields 0 and an error.
func (s *FileStore) Load() (int, error) {
	rec, err := readRecord(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rec.Score, nil
}

// Save replaces the stored record with score. The file is written to a
// temporary name first and renamed into place.
func (s *FileStore) Save(score int) error {
	data, err := msgpack.Marshal(Record{
		Score:   score,
		Player:  s.player,
		SavedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding score record: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating score directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*"+FileExt)
	if err != nil {
		return fmt.Errorf("creating temp record: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp record: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("replacing record: %w", err)
	}
	return nil
}

// List returns every readable record in dir, highest score first. Corrupt
// files and temporaries are skipped. A missing directory yields no records.
func List(dir string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing scores: %w", err)
	}

	var records []Record
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, FileExt) || strings.HasPrefix(name, ".") {
			continue
		}
		rec, err := readRecord(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		records = append(records, rec)
	}

	slices.SortFunc(records, func(a, b Record) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Player, b.Player)
	})
	return records, nil
}

// FileName maps a player name to a safe record file name. Anything outside
// [a-z0-9_-] is replaced by '_'; empty names map to "player".
func FileName(player string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(player) {
		if b.Len() >= maxNameLength {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "player" + FileExt
	}
	return b.String() + FileExt
}

func readRecord(path string) (Record, error) {
	var rec Record
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, err
	}
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return rec, nil
}
