package word

import "github.com/heartmarshall/stepspeak-backend/internal/domain"

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Filter narrows and pages word listings. A nil Status means all statuses.
type Filter struct {
	Status *domain.WordStatus
	Limit  int
	Offset int
}

// normalize clamps paging values to sane bounds.
func (f Filter) normalize() Filter {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
