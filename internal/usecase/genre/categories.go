package genre

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainerrors "catalog/internal/errors"
	"catalog/internal/repository"
)

// ensureCategoriesExist returns a related aggregate error listing, in request
// order and without repeats, the ids the category repository does not know.
func ensureCategoriesExist(ctx context.Context, categories repository.CategoryRepository, ids []uuid.UUID) error {
	found, err := categories.GetIDListByIDs(ctx, ids)
	if err != nil {
		return err
	}

	existing := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}

	var missing []string
	for _, id := range distinct(ids) {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return domainerrors.RelatedAggregatef("Related category id (or ids) not found: %s", strings.Join(missing, ", "))
	}
	return nil
}

// categoryNames looks up the names of ids with a single repository call.
func categoryNames(ctx context.Context, categories repository.CategoryRepository, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	found, err := categories.GetListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range found {
		names[c.ID] = c.Name
	}
	return names, nil
}

// distinct returns ids without repeats, in first-seen order.
func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
