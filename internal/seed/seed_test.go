package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kentkonut/internal/repository"
	"kentkonut/internal/service"
	"kentkonut/pkg/database/databasetest"
	"kentkonut/pkg/logger"
)

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	corporate := service.NewCorporateService(repository.NewCorporateContentRepository(db), nil, logger.NewNop())
	footer := service.NewFooterService(repository.NewFooterRepository(db), nil, logger.NewNop())

	res, err := Run(ctx, corporate, footer, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Result{CorporateBlocks: 5, FooterSections: 4}, res)

	public, err := corporate.List(ctx, "", true)
	require.NoError(t, err)
	assert.Empty(t, public, "seeded blocks stay hidden until edited")

	res, err = Run(ctx, corporate, footer, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	sections, err := footer.ListSections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 4)
	assert.Equal(t, "kurumsal", sections[0].SectionKey)
}
