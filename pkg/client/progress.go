package client

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
	"github.com/Alijeyrad/sorriso_backend/pkg/report"
)

type PhotoItem struct {
	URI       string `json:"uri"`
	Date      string `json:"date"`
	DateLabel string `json:"dateLabel"`
}

// Progress is what the wizard's last step shows, computed locally from the
// fetched records with the same engine the API uses.
type Progress struct {
	Filter     string
	Records    []diary.DailyRecord
	Report     report.Aggregate
	Odontogram report.OdontogramSummary
	Photos     []PhotoItem
}

// FormatDateLabel turns YYYY-MM-DD into DD/MM/YYYY and returns anything
// else unchanged.
func FormatDateLabel(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || lo.Contains(parts, "") {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// PhotoItems lists the records' usable photos in record order.
func PhotoItems(records []diary.DailyRecord) []PhotoItem {
	return lo.FilterMap(records, func(r diary.DailyRecord, _ int) (PhotoItem, bool) {
		uri := diary.NormalizePhotoURI(r.PhotoDataURL)
		if uri == "" {
			return PhotoItem{}, false
		}
		return PhotoItem{URI: uri, Date: r.Date, DateLabel: FormatDateLabel(r.Date)}, true
	})
}

// ComputeProgress filters records to date (all when empty) and derives the
// report, odontogram summary and photo gallery.
func ComputeProgress(records []diary.DailyRecord, date string) Progress {
	filtered := report.OnDate(records, date)
	return Progress{
		Filter:     date,
		Records:    filtered,
		Report:     report.BuildReport(filtered),
		Odontogram: report.SummarizeOdontogram(filtered),
		Photos:     PhotoItems(filtered),
	}
}

// Progress fetches every record of the patient and computes progress
// locally, without a report round trip.
func (c *Client) Progress(ctx context.Context, patientID, date string) (*Progress, error) {
	records, err := c.FetchRecords(ctx, patientID, "")
	if err != nil {
		return nil, err
	}
	p := ComputeProgress(records, date)
	return &p, nil
}
