package learn

import (
	"CourseForge/internal/models"

	"github.com/google/uuid"
)

// Resolve finds the cursor position in the flattened play sequence. The
// locator matches an item's address key (lesson id, or section id for quiz
// and assignment items) or its section id, whichever comes first. The
// sequence is a straight line with one predecessor and one successor:
// the last item of one section is followed by the first item of the next.
//
// A Nil locator and a locator matching nothing both return all nils; the
// caller decides between "redirect to the first item" and "404".
func Resolve(items []models.LearningItem, locator uuid.UUID) (current, previous, next *models.LearningItem) {
	if locator == uuid.Nil {
		return nil, nil, nil
	}

	for i := range items {
		if items[i].AddressKey != locator && items[i].SectionID != locator {
			continue
		}
		cur := items[i]
		current = &cur
		if i > 0 {
			prev := items[i-1]
			previous = &prev
		}
		if i < len(items)-1 {
			nxt := items[i+1]
			next = &nxt
		}
		return current, previous, next
	}

	return nil, nil, nil
}
