package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gifnksm/numelace/internal/domain"
)

// Save inserts p. A missing ID gets a fresh UUIDv7, a missing CreatedAt
// gets the current time; both are written back to p. Saving the same ID
// twice is a silent no-op.
func (s *Store) Save(ctx context.Context, p *domain.Puzzle) error {
	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV7()).String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO puzzles
		(id, name, seed, difficulty, clues, givens, solution, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		p.ID,
		p.Name,
		p.Seed,
		int(p.Difficulty),
		p.Clues,
		encodeBoard(p.Givens),
		encodeBoard(p.Solution),
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save puzzle: %w", err)
	}
	return nil
}

// Load returns the puzzle with the given id, or ErrNotFound.
func (s *Store) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, seed, difficulty, clues, givens, solution, created_at
		FROM puzzles WHERE id = ?
	`, id)

	var p domain.Puzzle
	var diff int
	var givens, solution string
	err := row.Scan(&p.ID, &p.Name, &p.Seed, &diff, &p.Clues, &givens, &solution, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load puzzle: %w", err)
	}
	p.Difficulty = domain.Difficulty(diff)
	if p.Givens, err = decodeBoard(givens); err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	if p.Solution, err = decodeBoard(solution); err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	return &p, nil
}

// List returns puzzle metadata, newest first.
func (s *Store) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, difficulty, clues, created_at
		FROM puzzles ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		var diff int
		if err := rows.Scan(&m.ID, &m.Name, &diff, &m.Clues, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("list puzzles: %w", err)
		}
		m.Difficulty = domain.Difficulty(diff)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	return out, nil
}

func encodeBoard(b domain.Board) string {
	buf := make([]byte, domain.CellCount)
	for i, v := range b.Cells {
		if v == 0 {
			buf[i] = '.'
		} else {
			buf[i] = '0' + v
		}
	}
	return string(buf)
}

func decodeBoard(s string) (domain.Board, error) {
	var b domain.Board
	if len(s) != domain.CellCount {
		return b, fmt.Errorf("board text has %d cells, want %d", len(s), domain.CellCount)
	}
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '.' || ch == '0':
		case ch >= '1' && ch <= '9':
			b.Cells[i] = ch - '0'
		default:
			return b, fmt.Errorf("board text has invalid cell %q at %d", ch, i)
		}
	}
	return b, nil
}
