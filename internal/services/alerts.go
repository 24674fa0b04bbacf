package services

import (
	"time"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/models"
	"gorm.io/gorm"
)

// AlertCounts counts entries approaching each of the three deadlines.
type AlertCounts struct {
	ApplyEnd    int `json:"applyEnd"`
	ResultDate  int `json:"resultDate"`
	PurchaseEnd int `json:"purchaseEnd"`
}

func (c AlertCounts) any() bool {
	return c.ApplyEnd > 0 || c.ResultDate > 0 || c.PurchaseEnd > 0
}

// ProductAlert is the deadline report of one current product.
type ProductAlert struct {
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	Counts      AlertCounts `json:"counts"`
}

// AlertReport is the full deadline report: current products individually,
// past products summed into a single bucket. Past is null when no past
// product has a counter.
type AlertReport struct {
	Products []ProductAlert `json:"products"`
	Past     *AlertCounts   `json:"past"`
}

// DeadlineAlerts scans every product and entry and reports, per current
// product, how many entries approach each deadline within the 7-day window,
// plus one aggregate bucket for past products. Products without a release
// date can never alert. Any read failure aborts the whole computation.
func DeadlineAlerts(db *gorm.DB, now time.Time) (*AlertReport, error) {
	var products []models.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	var entries []models.Entry
	if err := db.Find(&entries).Error; err != nil {
		return nil, err
	}

	// Approaching: today <= T <= today+7, compared by calendar date.
	windowStart := models.StartOfDay(now)
	windowEnd := models.EndOfDay(now.AddDate(0, 0, 7))
	approaching := func(t *time.Time) bool {
		return t != nil && !t.Before(windowStart) && !t.After(windowEnd)
	}

	type bucket struct {
		product models.Product
		current bool
		counts  AlertCounts
	}
	buckets := make(map[string]*bucket, len(products))
	order := make([]string, 0, len(products))
	for _, p := range products {
		if p.ReleaseDate == nil {
			// Neither current nor past; excluded from alerting entirely.
			continue
		}
		buckets[p.ID] = &bucket{product: p, current: p.Current(now)}
		order = append(order, p.ID)
	}

	for _, e := range entries {
		b, ok := buckets[e.ProductID]
		if !ok {
			continue
		}
		// Each condition is checked independently; an entry may count
		// toward more than one deadline.
		if e.Status == models.StatusNotApplied && approaching(e.ApplyEnd) {
			b.counts.ApplyEnd++
		}
		if (e.Status == models.StatusApplying || e.Status == models.StatusApplied) && approaching(e.ResultDate) {
			b.counts.ResultDate++
		}
		if e.Status == models.StatusWon && approaching(e.PurchaseEnd) {
			b.counts.PurchaseEnd++
		}
	}

	report := &AlertReport{Products: []ProductAlert{}}
	var past AlertCounts
	for _, id := range order {
		b := buckets[id]
		if !b.counts.any() {
			continue
		}
		if b.current {
			report.Products = append(report.Products, ProductAlert{
				ProductID:   b.product.ID,
				ProductName: b.product.Name,
				Counts:      b.counts,
			})
			continue
		}
		// Past products lose their identity; only the sum is kept.
		past.ApplyEnd += b.counts.ApplyEnd
		past.ResultDate += b.counts.ResultDate
		past.PurchaseEnd += b.counts.PurchaseEnd
	}
	if past.any() {
		report.Past = &past
	}

	return report, nil
}
