package services

import (
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"gorm.io/gorm"
)

// MemberSummary is one member's purchase roll-up within an entry.
type MemberSummary struct {
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Amount   int    `json:"amount"`
}

// EntrySummary rolls purchase quantities and amounts up across the members
// of one entry.
type EntrySummary struct {
	EntryID       string          `json:"entryId"`
	Members       []MemberSummary `json:"members"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalAmount   int             `json:"totalAmount"`
}

// SummarizeEntry sums stored purchase items per member and in total,
// preserving the entry's member order. Members without items appear with
// zeros.
func SummarizeEntry(db *gorm.DB, entryID string) (*EntrySummary, error) {
	entry, err := GetEntry(db, entryID)
	if err != nil {
		return nil, err
	}

	var items []models.PurchaseItem
	if err := db.Where("entry_id = ?", entryID).Find(&items).Error; err != nil {
		return nil, err
	}

	summary := &EntrySummary{
		EntryID: entryID,
		Members: make([]MemberSummary, 0, len(entry.Members)),
	}
	byMember := make(map[string]*MemberSummary, len(entry.Members))
	for _, m := range entry.Members {
		summary.Members = append(summary.Members, MemberSummary{
			MemberID: m.MemberID,
			Name:     m.Name,
		})
		byMember[m.MemberID] = &summary.Members[len(summary.Members)-1]
	}

	for _, item := range items {
		ms, ok := byMember[item.MemberID]
		if !ok {
			// Items of a member since removed from the entry still count
			// toward the totals.
			summary.TotalQuantity += item.Quantity
			summary.TotalAmount += item.Amount
			continue
		}
		ms.Quantity += item.Quantity
		ms.Amount += item.Amount
		summary.TotalQuantity += item.Quantity
		summary.TotalAmount += item.Amount
	}

	return summary, nil
}
