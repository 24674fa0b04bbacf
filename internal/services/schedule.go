package services

import (
	"sort"
	"time"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"gorm.io/gorm"
)

// Event kinds in display priority order.
const (
	EventApplyOpen     = "applyStart"
	EventApplyClose    = "applyEnd"
	EventResult        = "resultDate"
	EventPurchaseOpen  = "purchaseStart"
	EventPurchaseClose = "purchaseEnd"
)

type eventKind struct {
	label    string
	priority int
}

var eventKinds = map[string]eventKind{
	EventApplyOpen:     {label: "応募", priority: 1},
	EventApplyClose:    {label: "応〆", priority: 2},
	EventResult:        {label: "当落", priority: 3},
	EventPurchaseOpen:  {label: "購入", priority: 4},
	EventPurchaseClose: {label: "購〆", priority: 5},
}

const unknownEventPriority = 99

var weekdaySymbols = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// ScheduleEvent is one dated (or undecided) occurrence in the unified
// timeline. Date and Time are empty for undecided events.
type ScheduleEvent struct {
	EntryID     string `json:"entryId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	ShopName    string `json:"shopName"`
	Type        string `json:"type"`
	Label       string `json:"label"`
	Date        string `json:"date"` // MM/DD(weekday)
	Time        string `json:"time"` // HH:mm

	sortDate string
}

// ProductRef identifies a product present in the schedule, for filter
// controls.
type ProductRef struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
}

// ScheduleView is the aggregated timeline.
type ScheduleView struct {
	Events   []ScheduleEvent `json:"events"`
	Products []ProductRef    `json:"products"`
}

// Schedule flattens every entry's date fields into labeled events within
// ±1 calendar month of now, sorted by date, time, and event priority.
// Undecided dates are always included and sort after every dated event.
// Any read failure aborts the whole computation.
func Schedule(db *gorm.DB, now time.Time) (*ScheduleView, error) {
	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	var shops []models.Shop
	if err := db.Find(&shops).Error; err != nil {
		return nil, err
	}
	var entries []models.Entry
	if err := db.Find(&entries).Error; err != nil {
		return nil, err
	}

	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	// Entries denormalize the shop label; the lookup resolves it back to
	// the full shop name when one matches.
	shopNames := make(map[string]string, len(shops))
	for _, s := range shops {
		shopNames[s.ShortName] = s.Name
	}

	windowStart := models.StartOfDay(now).AddDate(0, -1, 0)
	windowEnd := models.StartOfDay(now).AddDate(0, 1, 0)
	undecidedSort := windowEnd.AddDate(0, 0, 1).Format("2006-01-02")

	var events []ScheduleEvent
	seen := make(map[string]bool)
	var refs []ProductRef

	emit := func(e models.Entry, kind string, t *time.Time) {
		ev := ScheduleEvent{
			EntryID:     e.ID,
			ProductID:   e.ProductID,
			ProductName: productNames[e.ProductID],
			ShopName:    e.ShopShortName,
			Type:        kind,
			Label:       eventKinds[kind].label,
		}
		if full, ok := shopNames[e.ShopShortName]; ok {
			ev.ShopName = full
		}

		if t == nil {
			// Undecided: no window filter, empty display, pinned after
			// every dated event.
			ev.sortDate = undecidedSort
		} else {
			day := models.StartOfDay(*t)
			if day.Before(windowStart) || day.After(windowEnd) {
				return
			}
			ev.sortDate = day.Format("2006-01-02")
			ev.Date = t.Format("01/02") + "(" + weekdaySymbols[t.Weekday()] + ")"
			ev.Time = t.Format("15:04")
		}
		events = append(events, ev)
	}

	for _, e := range entries {
		switch e.Status {
		case models.StatusNotApplied, models.StatusApplying, models.StatusApplied:
			emit(e, EventApplyOpen, e.ApplyStart)
			emit(e, EventApplyClose, e.ApplyEnd)
			if e.Status == models.StatusApplied {
				emit(e, EventResult, e.ResultDate)
			}
		case models.StatusWon:
			emit(e, EventPurchaseOpen, e.PurchaseStart)
			emit(e, EventPurchaseClose, e.PurchaseEnd)
		}

		if !seen[e.ProductID] {
			seen[e.ProductID] = true
			refs = append(refs, ProductRef{
				ProductID:   e.ProductID,
				ProductName: productNames[e.ProductID],
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.sortDate != b.sortDate {
			return a.sortDate < b.sortDate
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return eventPriority(a.Type) < eventPriority(b.Type)
	})
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].ProductName < refs[j].ProductName
	})

	if events == nil {
		events = []ScheduleEvent{}
	}
	if refs == nil {
		refs = []ProductRef{}
	}
	return &ScheduleView{Events: events, Products: refs}, nil
}

func eventPriority(kind string) int {
	if k, ok := eventKinds[kind]; ok {
		return k.priority
	}
	return unknownEventPriority
}
