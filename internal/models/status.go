package models

// Status is the lifecycle code shared by entries and by the members embedded
// in an entry. The numeric values are the storage/wire codes and match the
// OP002 option table.
type Status int

const (
	StatusNotApplied Status = 0
	StatusExcluded   Status = 9
	StatusApplying   Status = 10
	StatusApplied    Status = 20
	StatusWon        Status = 30
	StatusPurchased  Status = 40
	StatusLost       Status = 99
)

// statusOrder is the authoritative display order, mirroring OP002.
var statusOrder = map[Status]int{
	StatusNotApplied: 1,
	StatusApplying:   2,
	StatusApplied:    3,
	StatusWon:        4,
	StatusPurchased:  5,
	StatusLost:       6,
	StatusExcluded:   7,
}

var statusNames = map[Status]string{
	StatusNotApplied: "未応募",
	StatusApplying:   "応募中",
	StatusApplied:    "応募済",
	StatusWon:        "当選",
	StatusPurchased:  "購入済",
	StatusLost:       "落選",
	StatusExcluded:   "対象外",
}

// Valid reports whether s is one of the defined lifecycle codes.
func (s Status) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// Order returns the display order of s; unknown codes sort last.
func (s Status) Order() int {
	if o, ok := statusOrder[s]; ok {
		return o
	}
	return len(statusOrder) + 1
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "不明"
}
