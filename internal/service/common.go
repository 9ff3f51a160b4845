package service

import (
	"context"
	"fmt"
	"strings"

	"kentkonut/internal/constants"
	"kentkonut/internal/types"
	"kentkonut/internal/utils"
)

// TaskQueue background executor, satisfied by *async.Worker
type TaskQueue interface {
	AddTask(name string, fn func(ctx context.Context) error) bool
}

type slugChecker func(ctx context.Context, slug string, excludeID int64) (bool, error)

const maxSlugAttempts = 5

// resolveSlug validates an explicit slug or derives one from title.
// An explicit slug that is taken is a conflict; a derived one gets a random suffix.
func resolveSlug(ctx context.Context, explicit *string, title string, excludeID int64, taken slugChecker) (string, error) {
	if explicit != nil && strings.TrimSpace(*explicit) != "" {
		s := strings.TrimSpace(*explicit)
		used, err := taken(ctx, s, excludeID)
		if err != nil {
			return "", err
		}
		if used {
			return "", constants.NewError(constants.ErrConflict, constants.MsgSlugExists)
		}
		return s, nil
	}

	base := utils.Slugify(title)
	if base == "" {
		return "", constants.NewError(constants.ErrBadRequest, "Başlıktan kısa ad üretilemedi")
	}
	candidate := base
	for i := 0; i < maxSlugAttempts; i++ {
		used, err := taken(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		candidate = utils.SlugWithSuffix(base)
	}
	return "", constants.NewError(constants.ErrConflict, constants.MsgSlugExists)
}

// setIf copies *src into *dst when src is not nil
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// required reports a missing create field as a bad request
func required[T any](v *T, field string) (T, error) {
	if v == nil {
		var zero T
		return zero, constants.NewError(constants.ErrBadRequest, fmt.Sprintf("%s alanı zorunludur", field))
	}
	return *v, nil
}

// nullableID turns 0 into nil so foreign keys can be cleared
func nullableID(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

func normalize(p types.Pagination) types.Pagination {
	p.Normalize()
	return p
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s", constants.ErrNotFound, what)
}
