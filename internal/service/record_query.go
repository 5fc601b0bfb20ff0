package service

import (
	"context"

	"salesledger/internal/apperr"
	"salesledger/internal/model"
	"salesledger/internal/repository"
	"salesledger/internal/timeutil"
)

// listFilter builds the repository filter for the list read paths: an
// optional single calendar day (inclusive of both boundary instants) and an
// optional customer code, each independent of the other.
func listFilter(date, customerCode string) (repository.RecordFilter, error) {
	filter := repository.RecordFilter{CustomerCode: customerCode}
	if date != "" {
		day, err := timeutil.ParseDate(date)
		if err != nil {
			return repository.RecordFilter{}, apperr.Validation("invalid date")
		}
		from, to := timeutil.DayWindow(day)
		filter.From = &from
		filter.To = &to
	}
	return filter, nil
}

// collectCodes returns the distinct customer codes present in a result set,
// in first-seen order.
func collectCodes[T any](records []T, code func(T) string) []string {
	seen := make(map[string]struct{}, len(records))
	codes := make([]string, 0, len(records))
	for _, rec := range records {
		c := code(rec)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		codes = append(codes, c)
	}
	return codes
}

// joinCustomers attaches directory entries to a record result set by code.
// The join is best-effort presentation enrichment: records whose code
// matches no customer keep a nil customer rather than failing.
func joinCustomers[T, R any](
	ctx context.Context,
	customers repository.CustomerRepository,
	records []T,
	code func(T) string,
	build func(T, *model.Customer) R,
) ([]R, error) {
	matches, err := customers.ListByCodes(ctx, collectCodes(records, code))
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]model.Customer, len(matches))
	for _, c := range matches {
		byCode[c.Code] = c
	}
	rows := make([]R, 0, len(records))
	for _, rec := range records {
		var customer *model.Customer
		if c, ok := byCode[code(rec)]; ok {
			customer = &c
		}
		rows = append(rows, build(rec, customer))
	}
	return rows, nil
}
