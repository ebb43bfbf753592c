package catalog

import (
	"fmt"
	"sort"
)

type IssueKind string

const (
	IssueUnknownCategory  IssueKind = "unknown_category"
	IssueOrphanedMenuItem IssueKind = "orphaned_menu_item"
	IssueDanglingFavorite IssueKind = "dangling_favorite"
	IssueMissingLocation  IssueKind = "missing_location"
	IssueDuplicateID      IssueKind = "duplicate_restaurant_id"
)

type Issue struct {
	Kind    IssueKind `json:"kind"`
	Subject string    `json:"subject"`
	Detail  string    `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Kind, i.Subject, i.Detail)
}

// Validate checks referential integrity of raw collections. The runtime
// index tolerates every problem reported here; this is for offline audits.
// favorites maps a user id to that user's favorite restaurant ids.
func Validate(restaurants []Restaurant, items []MenuItem, categories []Category, favorites map[string][]string) []Issue {
	var issues []Issue

	knownCategories := make(map[int]bool, len(categories))
	for _, c := range categories {
		knownCategories[c.ID] = true
	}

	ids := make(map[string]bool, len(restaurants))
	for _, r := range restaurants {
		if ids[r.ID] {
			issues = append(issues, Issue{Kind: IssueDuplicateID, Subject: r.ID, Detail: r.Name})
			continue
		}
		ids[r.ID] = true

		if len(knownCategories) > 0 && !knownCategories[r.CategoryID] {
			issues = append(issues, Issue{
				Kind:    IssueUnknownCategory,
				Subject: r.ID,
				Detail:  fmt.Sprintf("category_id %d", r.CategoryID),
			})
		}
		if r.Location == nil {
			issues = append(issues, Issue{Kind: IssueMissingLocation, Subject: r.ID, Detail: r.Name})
		}
	}

	for _, it := range items {
		if !ids[it.RestaurantID] {
			issues = append(issues, Issue{
				Kind:    IssueOrphanedMenuItem,
				Subject: it.ID,
				Detail:  fmt.Sprintf("restaurant_id %q not found", it.RestaurantID),
			})
		}
	}

	users := make([]string, 0, len(favorites))
	for user := range favorites {
		users = append(users, user)
	}
	sort.Strings(users)
	for _, user := range users {
		for _, id := range favorites[user] {
			if !ids[id] {
				issues = append(issues, Issue{
					Kind:    IssueDanglingFavorite,
					Subject: user,
					Detail:  fmt.Sprintf("restaurant_id %q not found", id),
				})
			}
		}
	}

	return issues
}
