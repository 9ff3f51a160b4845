package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
	"kentkonut/internal/types"
)

// FooterRepository footer sections and their items
type FooterRepository interface {
	CreateSection(ctx context.Context, s *model.FooterSection) error
	GetSection(ctx context.Context, id int64) (*model.FooterSection, error)
	ListSections(ctx context.Context) ([]model.FooterSection, error)
	UpdateSection(ctx context.Context, s *model.FooterSection) error
	DeleteSection(ctx context.Context, id int64) error
	ReorderSections(ctx context.Context, items []types.ReorderItem) error

	CreateItem(ctx context.Context, it *model.FooterItem) error
	GetItem(ctx context.Context, id int64) (*model.FooterItem, error)
	ListItems(ctx context.Context, sectionID int64) ([]model.FooterItem, error)
	UpdateItem(ctx context.Context, it *model.FooterItem) error
	DeleteItem(ctx context.Context, id int64) error
	ReorderItems(ctx context.Context, items []types.ReorderItem) error

	// ListActiveWithItems active sections with their active items attached
	ListActiveWithItems(ctx context.Context) ([]model.FooterSection, error)
}

type footerRepository struct {
	baseRepository
}

// NewFooterRepository creates the footer repository
func NewFooterRepository(db *sqlx.DB) FooterRepository {
	return &footerRepository{baseRepository{db: db}}
}

func (r *footerRepository) CreateSection(ctx context.Context, s *model.FooterSection) error {
	id, err := r.insert(ctx, "footer section", `INSERT INTO footer_sections (section_key, title, type, display_order, is_active)
		VALUES (:section_key, :title, :type, :display_order, :is_active)`, s)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *footerRepository) GetSection(ctx context.Context, id int64) (*model.FooterSection, error) {
	s := &model.FooterSection{}
	if err := r.getByID(ctx, s, "footer_sections", "footer section", id); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *footerRepository) ListSections(ctx context.Context) ([]model.FooterSection, error) {
	items := []model.FooterSection{}
	err := r.conn().SelectContext(ctx, &items, `SELECT * FROM footer_sections ORDER BY display_order, id`)
	return items, err
}

func (r *footerRepository) UpdateSection(ctx context.Context, s *model.FooterSection) error {
	return r.execOne(ctx, "footer section", `UPDATE footer_sections SET section_key = :section_key, title = :title,
		type = :type, display_order = :display_order, is_active = :is_active, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`, s)
}

// DeleteSection removes the section together with its items
func (r *footerRepository) DeleteSection(ctx context.Context, id int64) error {
	return RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM footer_items WHERE section_id = ?`, id); err != nil {
			return err
		}
		return baseRepository{db: r.db, tx: tx}.deleteByID(ctx, "footer_sections", "footer section", id)
	})
}

func (r *footerRepository) ReorderSections(ctx context.Context, items []types.ReorderItem) error {
	return r.reorder(ctx, "footer_sections", "footer section", items)
}

func (r *footerRepository) CreateItem(ctx context.Context, it *model.FooterItem) error {
	id, err := r.insert(ctx, "footer item", `INSERT INTO footer_items (section_id, label, url, icon, type, display_order, is_active)
		VALUES (:section_id, :label, :url, :icon, :type, :display_order, :is_active)`, it)
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

func (r *footerRepository) GetItem(ctx context.Context, id int64) (*model.FooterItem, error) {
	it := &model.FooterItem{}
	if err := r.getByID(ctx, it, "footer_items", "footer item", id); err != nil {
		return nil, err
	}
	return it, nil
}

func (r *footerRepository) ListItems(ctx context.Context, sectionID int64) ([]model.FooterItem, error) {
	items := []model.FooterItem{}
	err := r.conn().SelectContext(ctx, &items,
		`SELECT * FROM footer_items WHERE section_id = ? ORDER BY display_order, id`, sectionID)
	return items, err
}

func (r *footerRepository) UpdateItem(ctx context.Context, it *model.FooterItem) error {
	return r.execOne(ctx, "footer item", `UPDATE footer_items SET section_id = :section_id, label = :label, url = :url,
		icon = :icon, type = :type, display_order = :display_order, is_active = :is_active,
		updated_at = CURRENT_TIMESTAMP WHERE id = :id`, it)
}

func (r *footerRepository) DeleteItem(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "footer_items", "footer item", id)
}

func (r *footerRepository) ReorderItems(ctx context.Context, items []types.ReorderItem) error {
	return r.reorder(ctx, "footer_items", "footer item", items)
}

func (r *footerRepository) ListActiveWithItems(ctx context.Context) ([]model.FooterSection, error) {
	sections := []model.FooterSection{}
	if err := r.conn().SelectContext(ctx, &sections,
		`SELECT * FROM footer_sections WHERE is_active = TRUE ORDER BY display_order, id`); err != nil {
		return nil, err
	}

	var items []model.FooterItem
	if err := r.conn().SelectContext(ctx, &items, `SELECT i.* FROM footer_items i
		JOIN footer_sections s ON s.id = i.section_id
		WHERE s.is_active = TRUE AND i.is_active = TRUE ORDER BY i.display_order, i.id`); err != nil {
		return nil, err
	}

	bySection := make(map[int64][]model.FooterItem, len(sections))
	for _, it := range items {
		bySection[it.SectionID] = append(bySection[it.SectionID], it)
	}
	for i := range sections {
		sections[i].Items = bySection[sections[i].ID]
		if sections[i].Items == nil {
			sections[i].Items = []model.FooterItem{}
		}
	}
	return sections, nil
}
