package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/formdeck/formdeck/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo against the session's
// in-memory SQLite database.
type SQLiteTemplateRepo struct {
	db *sql.DB
}

// NewSQLiteTemplateRepo creates a new SQLiteTemplateRepo.
func NewSQLiteTemplateRepo(db *sql.DB) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: db}
}

func (r *SQLiteTemplateRepo) Append(ctx context.Context, t *domain.Template) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting append transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO templates (id, name, description, position, created_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM templates), ?)`
	if _, err := tx.ExecContext(ctx, query,
		t.ID, t.Name, t.Description, t.CreatedAt.UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}
	if err := insertChildren(ctx, tx, t); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing append: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) Replace(ctx context.Context, t *domain.Template) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting replace transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE templates SET name = ?, description = ? WHERE id = ?`,
		t.Name, t.Description, t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating template: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	// Whole-document replace: drop the old tree (fields cascade) and
	// reinsert from the draft.
	if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE template_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing sections: %w", err)
	}
	if err := insertChildren(ctx, tx, t); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing replace: %w", err)
	}
	return nil
}

func insertChildren(ctx context.Context, tx *sql.Tx, t *domain.Template) error {
	for si, sec := range t.Sections {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sections (id, template_id, title, position) VALUES (?, ?, ?, ?)`,
			sec.ID, t.ID, sec.Title, si,
		); err != nil {
			return fmt.Errorf("inserting section: %w", err)
		}
		for fi, f := range sec.Fields {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO fields (id, section_id, type, label, required, placeholder, options, label_style, position)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				f.ID, sec.ID, string(f.Type), f.Label, boolToInt(f.Required),
				f.Placeholder, joinOptions(f.Options), string(f.LabelStyle), fi,
			); err != nil {
				return fmt.Errorf("inserting field: %w", err)
			}
		}
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at FROM templates WHERE id = ?`, id)

	t := &domain.Template{}
	var createdAt string
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning template: %w", err)
	}
	t.CreatedAt = parseTime(createdAt)

	if err := r.loadChildren(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTemplateRepo) loadChildren(ctx context.Context, t *domain.Template) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title FROM sections WHERE template_id = ? ORDER BY position`, t.ID)
	if err != nil {
		return fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sec domain.Section
		if err := rows.Scan(&sec.ID, &sec.Title); err != nil {
			return fmt.Errorf("scanning section: %w", err)
		}
		t.Sections = append(t.Sections, sec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating sections: %w", err)
	}

	for i := range t.Sections {
		if err := r.loadFields(ctx, &t.Sections[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteTemplateRepo) loadFields(ctx context.Context, sec *domain.Section) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, label, required, placeholder, options, label_style
			FROM fields WHERE section_id = ? ORDER BY position`, sec.ID)
	if err != nil {
		return fmt.Errorf("listing fields: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f domain.Field
		var fieldType, options, labelStyle string
		var required int
		if err := rows.Scan(&f.ID, &fieldType, &f.Label, &required, &f.Placeholder, &options, &labelStyle); err != nil {
			return fmt.Errorf("scanning field: %w", err)
		}
		f.Type = domain.FieldType(fieldType)
		f.Required = intToBool(required)
		f.Options = splitOptions(options)
		f.LabelStyle = domain.LabelStyle(labelStyle)
		sec.Fields = append(sec.Fields, f)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating fields: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]*domain.Template, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM templates ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning template id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}

	templates := make([]*domain.Template, 0, len(ids))
	for _, id := range ids {
		t, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

func (r *SQLiteTemplateRepo) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM templates WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking template existence: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteTemplateRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM templates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting templates: %w", err)
	}
	return n, nil
}

func (r *SQLiteTemplateRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	return nil
}
