package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/giftforge/giftforge/internal/service"
)

// resolveGiftID expands a full UUID or unambiguous prefix into a gift id,
// searching across both parties' gifts.
func resolveGiftID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("gift ID is required")
	}

	seen := make(map[string]bool)
	var ids []string
	for _, party := range []struct {
		userID        string
		asGrandparent bool
	}{
		{service.DefaultGrandparentID, true},
		{service.DefaultGrandchildID, false},
	} {
		views, err := app.Gifts.ListByUser(ctx, party.userID, party.asGrandparent)
		if err != nil {
			return "", err
		}
		for _, v := range views {
			if !seen[v.Gift.ID] {
				seen[v.Gift.ID] = true
				ids = append(ids, v.Gift.ID)
			}
		}
	}

	// Exact match first.
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		// Fall through to the service; a gift owned by a non-demo party is
		// still addressable by full id.
		if _, err := app.Gifts.GetByID(ctx, input); err != nil {
			return "", fmt.Errorf("gift not found: %q", input)
		}
		return input, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("gift ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
