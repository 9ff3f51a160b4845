package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// TagRepository news tag storage
type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	GetByID(ctx context.Context, id int64) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
	Update(ctx context.Context, tag *model.Tag) error
	Delete(ctx context.Context, id int64) error
	CountExisting(ctx context.Context, ids []int64) (int, error)
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// NewsRepository news storage
type NewsRepository interface {
	Create(ctx context.Context, n *model.News) error
	GetByID(ctx context.Context, id int64) (*model.News, error)
	GetBySlug(ctx context.Context, slug string) (*model.News, error)
	List(ctx context.Context, filter model.NewsFilter) ([]model.News, int64, error)
	Update(ctx context.Context, n *model.News) error
	Delete(ctx context.Context, id int64) error
	SetTags(ctx context.Context, newsID int64, tagIDs []int64) error
	TagsByNews(ctx context.Context, newsIDs []int64) (map[int64][]model.Tag, error)
	PublishDue(ctx context.Context, now time.Time) (int64, error)
	IncrementViews(ctx context.Context, id int64) error
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// TransactionalNewsRepository NewsRepository that can join a transaction
type TransactionalNewsRepository interface {
	NewsRepository
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	WithTx(tx *sqlx.Tx) NewsRepository
}

type tagRepository struct {
	baseRepository
}

// NewTagRepository creates the tag repository
func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{baseRepository{db: db}}
}

func (r *tagRepository) Create(ctx context.Context, tag *model.Tag) error {
	id, err := r.insert(ctx, "tag", `INSERT INTO tags (name, slug) VALUES (:name, :slug)`, tag)
	if err != nil {
		return err
	}
	tag.ID = id
	return nil
}

func (r *tagRepository) GetByID(ctx context.Context, id int64) (*model.Tag, error) {
	tag := &model.Tag{}
	if err := r.getByID(ctx, tag, "tags", "tag", id); err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *tagRepository) List(ctx context.Context) ([]model.Tag, error) {
	items := []model.Tag{}
	err := r.conn().SelectContext(ctx, &items, `SELECT * FROM tags ORDER BY name, id`)
	return items, err
}

func (r *tagRepository) Update(ctx context.Context, tag *model.Tag) error {
	return r.execOne(ctx, "tag", `UPDATE tags SET name = :name, slug = :slug WHERE id = :id`, tag)
}

func (r *tagRepository) Delete(ctx context.Context, id int64) error {
	return RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM news_tags WHERE tag_id = ?`, id); err != nil {
			return err
		}
		return baseRepository{db: r.db, tx: tx}.deleteByID(ctx, "tags", "tag", id)
	})
}

// CountExisting counts how many of ids exist
func (r *tagRepository) CountExisting(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`SELECT COUNT(*) FROM tags WHERE id IN (?)`, ids)
	if err != nil {
		return 0, err
	}
	var n int
	err = r.conn().GetContext(ctx, &n, r.db.Rebind(query), args...)
	return n, err
}

func (r *tagRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return r.slugTaken(ctx, "tags", slug, excludeID)
}

type newsRepository struct {
	baseRepository
}

// NewNewsRepository creates the news repository
func NewNewsRepository(db *sqlx.DB) TransactionalNewsRepository {
	return &newsRepository{baseRepository{db: db}}
}

// WithTx returns a repository bound to tx
func (r *newsRepository) WithTx(tx *sqlx.Tx) NewsRepository {
	return &newsRepository{baseRepository{db: r.db, tx: tx}}
}

func (r *newsRepository) Create(ctx context.Context, n *model.News) error {
	id, err := r.insert(ctx, "news", `INSERT INTO news
		(title, slug, summary, content, image_url, category_id, author_id, status, published_at, read_time)
		VALUES (:title, :slug, :summary, :content, :image_url, :category_id, :author_id, :status, :published_at, :read_time)`, n)
	if err != nil {
		return err
	}
	n.ID = id
	return nil
}

func (r *newsRepository) GetByID(ctx context.Context, id int64) (*model.News, error) {
	n := &model.News{}
	if err := r.getByID(ctx, n, "news", "news", id); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *newsRepository) GetBySlug(ctx context.Context, slug string) (*model.News, error) {
	n := &model.News{}
	if err := r.conn().GetContext(ctx, n, `SELECT * FROM news WHERE slug = ?`, slug); err != nil {
		return nil, translate(err, "news")
	}
	return n, nil
}

// List returns one page of news, newest first, plus the filtered total
func (r *newsRepository) List(ctx context.Context, filter model.NewsFilter) ([]model.News, int64, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.CategoryID > 0 {
		where = append(where, "n.category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.CategorySlug != "" {
		where = append(where, "n.category_id IN (SELECT id FROM news_categories WHERE slug = ?)")
		args = append(args, filter.CategorySlug)
	}
	if filter.TagSlug != "" {
		where = append(where, "n.id IN (SELECT nt.news_id FROM news_tags nt JOIN tags t ON t.id = nt.tag_id WHERE t.slug = ?)")
		args = append(args, filter.TagSlug)
	}
	if filter.Status != "" {
		where = append(where, "n.status = ?")
		args = append(args, filter.Status)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		where = append(where, "(n.title LIKE ? OR n.summary LIKE ?)")
		args = append(args, likePattern(q), likePattern(q))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.conn().GetContext(ctx, &total, `SELECT COUNT(*) FROM news n`+clause, args...); err != nil {
		return nil, 0, err
	}

	items := []model.News{}
	query := `SELECT n.* FROM news n` + clause +
		` ORDER BY CASE WHEN n.published_at IS NULL THEN 1 ELSE 0 END, n.published_at DESC, n.id DESC LIMIT ? OFFSET ?`
	if err := r.conn().SelectContext(ctx, &items, query, append(args, filter.Limit, filter.Offset)...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *newsRepository) Update(ctx context.Context, n *model.News) error {
	return r.execOne(ctx, "news", `UPDATE news SET title = :title, slug = :slug, summary = :summary, content = :content,
		image_url = :image_url, category_id = :category_id, author_id = :author_id, status = :status,
		published_at = :published_at, read_time = :read_time, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, n)
}

func (r *newsRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "news", "news", id)
}

// SetTags replaces the tag set of a news item. Callers wrap it in a transaction.
func (r *newsRepository) SetTags(ctx context.Context, newsID int64, tagIDs []int64) error {
	if _, err := r.conn().ExecContext(ctx, `DELETE FROM news_tags WHERE news_id = ?`, newsID); err != nil {
		return err
	}
	seen := make(map[int64]bool, len(tagIDs))
	for _, tagID := range tagIDs {
		if seen[tagID] {
			continue
		}
		seen[tagID] = true
		if _, err := r.conn().ExecContext(ctx, `INSERT INTO news_tags (news_id, tag_id) VALUES (?, ?)`, newsID, tagID); err != nil {
			return translate(err, "news tag")
		}
	}
	return nil
}

// TagsByNews loads tags for several news items in one query
func (r *newsRepository) TagsByNews(ctx context.Context, newsIDs []int64) (map[int64][]model.Tag, error) {
	result := make(map[int64][]model.Tag, len(newsIDs))
	if len(newsIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT nt.news_id, t.id, t.name, t.slug, t.created_at
		FROM news_tags nt JOIN tags t ON t.id = nt.tag_id
		WHERE nt.news_id IN (?) ORDER BY t.name, t.id`, newsIDs)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		NewsID int64 `db:"news_id"`
		model.Tag
	}
	if err := r.conn().SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.NewsID] = append(result[row.NewsID], row.Tag)
	}
	return result, nil
}

// PublishDue flips scheduled news whose publish time has passed
func (r *newsRepository) PublishDue(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.conn().ExecContext(ctx, `UPDATE news SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE status = ? AND published_at IS NOT NULL AND published_at <= ?`,
		model.NewsPublished, model.NewsScheduled, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *newsRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.conn().ExecContext(ctx, `UPDATE news SET view_count = view_count + 1 WHERE id = ?`, id)
	return err
}

func (r *newsRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return r.slugTaken(ctx, "news", slug, excludeID)
}
