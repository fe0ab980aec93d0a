package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/campuslf/lostfound/internal/imagestore"
	"github.com/campuslf/lostfound/internal/model"
)

// timeFormat matches SQLite's CURRENT_TIMESTAMP text shape, so date()
// comparisons and lexicographic ordering agree. Always UTC.
const timeFormat = "2006-01-02 15:04:05"

var itemColumns = []string{
	"id", "title", "description", "category", "status",
	"reporter_name", "reporter_contact", "image_path", "created_at",
}

// NewItem holds the fields for a report submission.
type NewItem struct {
	Title           string
	Description     string
	Category        string
	Status          string
	ReporterName    string
	ReporterContact string

	// Optional upload. ImageName is only used for its extension.
	ImageData []byte
	ImageName string
}

// AddItem saves the image (if any) and inserts one row. If the insert fails
// after the image was written, the orphaned file is deleted again so the row
// and the file stay consistent on the create path.
func AddItem(ctx context.Context, db *sql.DB, images *imagestore.Store, item NewItem) (*model.Item, error) {
	if !model.ValidStatus(item.Status) {
		return nil, fmt.Errorf("invalid status %q", item.Status)
	}
	if item.Category != "" && !model.ValidCategory(item.Category) {
		return nil, fmt.Errorf("invalid category %q", item.Category)
	}

	var imagePath any
	if len(item.ImageData) > 0 {
		name, err := images.Save(item.ImageData, item.ImageName)
		if err != nil {
			return nil, fmt.Errorf("saving image: %w", err)
		}
		imagePath = name
	}

	query, args, err := sq.Insert("items").
		Columns("title", "description", "category", "status",
			"reporter_name", "reporter_contact", "image_path", "created_at").
		Values(item.Title, item.Description, item.Category, item.Status,
			item.ReporterName, item.ReporterContact, imagePath,
			time.Now().UTC().Format(timeFormat)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		// Compensate: don't leave an orphaned file behind.
		if name, ok := imagePath.(string); ok {
			if derr := images.Delete(name); derr != nil && !errors.Is(derr, imagestore.ErrNotFound) {
				slog.Warn("failed to clean up orphaned image", "image", name, "error", derr)
			}
		}
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if it doesn't exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	query, args, err := sq.Select(itemColumns...).From("items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building item query: %w", err)
	}

	item, err := scanItem(db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// RemoveItem best-effort deletes the associated image file, then deletes
// the row. A missing file is ignored; an I/O failure is logged and swallowed
// so the row still gets deleted. The two steps are not crash-atomic.
func RemoveItem(ctx context.Context, db *sql.DB, images *imagestore.Store, id int64) error {
	var imagePath sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image_path FROM items WHERE id = ?`, id,
	).Scan(&imagePath)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("looking up item image: %w", err)
	}

	if imagePath.Valid && imagePath.String != "" {
		if err := images.Delete(imagePath.String); err != nil && !errors.Is(err, imagestore.ErrNotFound) {
			slog.Warn("failed to delete item image", "item", id, "image", imagePath.String, "error", err)
		}
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// MarkFound sets an item's status to "found". Idempotent; re-applying to an
// already-found item is a no-op in effect.
func MarkFound(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET status = ? WHERE id = ?`, model.StatusFound, id,
	)
	if err != nil {
		return fmt.Errorf("marking item found: %w", err)
	}
	return nil
}

// Filter holds the optional search filters. Zero values mean "no filter";
// Category additionally treats the "Any" sentinel as absent. StartDate and
// EndDate are calendar dates (2006-01-02), compared inclusively against the
// item's creation date with time-of-day ignored.
type Filter struct {
	Keyword   string
	Status    string
	Category  string
	StartDate string
	EndDate   string
	Limit     uint64
}

// SearchItems returns items matching all given filters, newest first.
// An empty result is an empty slice, never an error.
func SearchItems(ctx context.Context, db *sql.DB, f Filter) ([]model.Item, error) {
	q := sq.Select(itemColumns...).From("items").OrderBy("created_at DESC")

	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q = q.Where(sq.Or{
			sq.Like{"title": kw},
			sq.Like{"description": kw},
		})
	}
	if f.Category != "" && f.Category != model.CategoryAny {
		q = q.Where(sq.Eq{"category": f.Category})
	}
	if f.StartDate != "" {
		q = q.Where(sq.Expr("date(created_at) >= date(?)", f.StartDate))
	}
	if f.EndDate != "" {
		q = q.Where(sq.Expr("date(created_at) <= date(?)", f.EndDate))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building search query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*model.Item, error) {
	item := &model.Item{}
	var description, category, reporterName, reporterContact, imagePath sql.NullString
	err := s.Scan(&item.ID, &item.Title, &description, &category, &item.Status,
		&reporterName, &reporterContact, &imagePath, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.Description = description.String
	item.Category = category.String
	item.ReporterName = reporterName.String
	item.ReporterContact = reporterContact.String
	item.ImagePath = imagePath.String
	return item, nil
}
