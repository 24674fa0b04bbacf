package services

import (
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
)

// Derive computes an entry's aggregate status from its members' statuses.
//
// Excluded members do not participate. With no remaining members the entry
// is not applied. When some remaining members have not applied yet while
// others are already ahead, the mix reads as "applying" regardless of the
// plain minimum; otherwise the aggregate is the minimum code, i.e. the
// member furthest behind.
func Derive(members []models.PurchaseMember) models.Status {
	minStatus := models.Status(0)
	first := true
	hasNotApplied := false
	hasOther := false

	for _, m := range members {
		if m.Status == models.StatusExcluded {
			continue
		}
		if first || m.Status < minStatus {
			minStatus = m.Status
		}
		first = false
		if m.Status == models.StatusNotApplied {
			hasNotApplied = true
		} else {
			hasOther = true
		}
	}

	if first {
		// No valid members, including the everyone-excluded case.
		return models.StatusNotApplied
	}
	if hasNotApplied && hasOther {
		return models.StatusApplying
	}
	return minStatus
}

// anyPurchased reports whether any member reached purchased.
func anyPurchased(members []models.PurchaseMember) bool {
	for _, m := range members {
		if m.Status == models.StatusPurchased {
			return true
		}
	}
	return false
}
