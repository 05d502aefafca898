package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/game"
)

const gameFile = "savegame.json"

// FS stores puzzles as JSON files under per-difficulty subdirectories
// (easy/ medium/ hard/ expert/) and the savegame at the root. Flat .json
// files at the root are read as a legacy layout.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) SavePuzzle(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("puzzle is missing an ID")
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	for _, d := range domain.Difficulties {
		if p, found, err := s.readPuzzle(s.pathFor(id, d)); found {
			if err == nil {
				// The folder decided the save path, so it is authoritative.
				p.Difficulty = d
			}
			return p, err
		}
	}
	// legacy flat layout
	if p, found, err := s.readPuzzle(filepath.Join(s.dir, id+".json")); found {
		return p, err
	}
	return nil, fmt.Errorf("puzzle %q: %w", id, domain.ErrNotFound)
}

func (s *FS) readPuzzle(path string) (p *domain.Puzzle, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, true, err
	}
	p = new(domain.Puzzle)
	if err := json.Unmarshal(data, p); err != nil {
		return nil, true, err
	}
	return p, true, nil
}

func (s *FS) ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, d := range domain.Difficulties {
		metas, err := s.listDir(filepath.Join(s.dir, d.String()), &d)
		if err != nil {
			return nil, err
		}
		out = append(out, metas...)
	}
	// legacy flat files keep whatever difficulty their document says
	metas, err := s.listDir(s.dir, nil)
	if err != nil {
		return nil, err
	}
	return append(out, metas...), nil
}

func (s *FS) listDir(dir string, folder *domain.Difficulty) ([]domain.PuzzleMeta, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.PuzzleMeta
	for _, e := range ents {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || name == gameFile {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var p domain.Puzzle
		if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
			logrus.WithFields(logrus.Fields{
				"path": filepath.Join(dir, name),
			}).Warn("skipping unreadable puzzle file")
			continue
		}
		diff := p.Difficulty
		if folder != nil {
			diff = *folder
		}
		out = append(out, domain.PuzzleMeta{
			ID:         p.ID,
			Name:       p.Name,
			Difficulty: diff,
			Clues:      p.Clues,
			CreatedAt:  p.CreatedAt,
		})
	}
	return out, nil
}

func (s *FS) SaveGame(ctx context.Context, st *game.State) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, gameFile), data, 0o644)
}

func (s *FS) LoadGame(ctx context.Context) (*game.State, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, gameFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("saved game: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	var st game.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}
