// Package sheets loads tracked targets and tag rules from the published
// CSV exports of the reference spreadsheets, behind a TTL cache.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Row is one reference sheet row keyed by normalized header name.
type Row map[string]string

// RowFetcher reads all rows of a named tabular source.
type RowFetcher interface {
	Fetch(ctx context.Context, url string) ([]Row, error)
}

type CSVFetcher struct {
	httpClient *http.Client
}

func NewCSVFetcher(timeout time.Duration) *CSVFetcher {
	return &CSVFetcher{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (f *CSVFetcher) Fetch(ctx context.Context, url string) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = normalizeKey(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(rec) {
				continue
			}
			row[h] = normalizeValue(rec[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeValue applies NFKC, strips zero-width characters and trims.
func normalizeValue(s string) string {
	s = norm.NFKC.String(s)
	s = strings.NewReplacer("\u200b", "", "\ufeff", "").Replace(s)
	return strings.TrimSpace(s)
}

// normalizeKey folds a header name: normalized, lowercase, spaces to
// underscores, so "ID Профиля" and "id_профиля" address the same column.
func normalizeKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(normalizeValue(s)), " ", "_")
}

// first returns the first non-empty value among the given column names.
func (r Row) first(keys ...string) string {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}
