// Package seed fills a fresh database with the corporate and footer skeleton
// editors expect to find in the panel. Built-in media categories come with the
// migrations. Running it twice changes nothing.
package seed

import (
	"context"

	"kentkonut/internal/model"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

type corporateBlock struct {
	typ   model.CorporateType
	title string
}

var corporateBlocks = []corporateBlock{
	{model.CorporateAbout, "Hakkımızda"},
	{model.CorporateVision, "Vizyonumuz"},
	{model.CorporateMission, "Misyonumuz"},
	{model.CorporateStrategy, "Stratejimiz"},
	{model.CorporateGoals, "Hedeflerimiz"},
}

type footerSection struct {
	key   string
	title string
	typ   string
}

var footerSections = []footerSection{
	{"kurumsal", "Kurumsal", "LINKS"},
	{"hizmetler", "Hizmetler", "LINKS"},
	{"iletisim", "İletişim", "CONTACT"},
	{"sosyal-medya", "Sosyal Medya", "SOCIAL"},
}

// Result rows created by Run
type Result struct {
	CorporateBlocks int
	FooterSections  int
}

// Run creates the missing corporate blocks (inactive until an editor fills them)
// and footer sections
func Run(ctx context.Context, corporate *service.CorporateService, footer *service.FooterService, log *logger.Logger) (Result, error) {
	var res Result

	existing, err := corporate.List(ctx, "", false)
	if err != nil {
		return res, err
	}
	haveType := make(map[model.CorporateType]bool, len(existing))
	for _, c := range existing {
		haveType[c.Type] = true
	}
	for i, b := range corporateBlocks {
		if haveType[b.typ] {
			continue
		}
		typ, title, order, inactive := string(b.typ), b.title, i, false
		if _, err := corporate.Create(ctx, types.CorporateContentRequest{
			Type: &typ, Title: &title, Order: &order, IsActive: &inactive,
		}); err != nil {
			return res, err
		}
		res.CorporateBlocks++
	}

	sections, err := footer.ListSections(ctx)
	if err != nil {
		return res, err
	}
	haveKey := make(map[string]bool, len(sections))
	for _, s := range sections {
		haveKey[s.SectionKey] = true
	}
	for i, s := range footerSections {
		if haveKey[s.key] {
			continue
		}
		key, title, typ, order := s.key, s.title, s.typ, i
		if _, err := footer.CreateSection(ctx, types.FooterSectionRequest{
			Key: &key, Title: &title, Type: &typ, Order: &order,
		}); err != nil {
			return res, err
		}
		res.FooterSections++
	}

	log.Info("seed finished", "corporate_blocks", res.CorporateBlocks, "footer_sections", res.FooterSections)
	return res, nil
}
