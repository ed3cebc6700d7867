package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"ppltrack/internal/catalog"
	"ppltrack/internal/repository"
)

// DefaultExportFileName is the suggested file name for history exports.
const DefaultExportFileName = "ppl_tracker_history.csv"

var exportHeader = []string{"Session ID", "Date", "Workout", "Exercise", "Set", "Reps", "Weight", "Volume", "Unit"}

type exportService struct {
	sessions repository.SessionRepo
	catalog  *catalog.Catalog
}

func NewExportService(sessions repository.SessionRepo, cat *catalog.Catalog) ExportService {
	return &exportService{sessions: sessions, catalog: cat}
}

// WriteCSV streams the full session history as one row per set and
// returns the number of data rows written. Template ids that no longer
// resolve render as "Custom Workout".
func (s *exportService) WriteCSV(ctx context.Context, w io.Writer) (int, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("writing csv header: %w", err)
	}

	rows := 0
	for _, session := range sessions {
		title := s.catalog.TemplateTitle(session.TemplateID)
		for _, ex := range session.Exercises {
			for i, set := range ex.Sets {
				record := []string{
					session.ID,
					session.Date,
					title,
					ex.Name,
					strconv.Itoa(i + 1),
					strconv.Itoa(set.Reps),
					strconv.FormatFloat(set.Weight, 'f', -1, 64),
					strconv.FormatFloat(set.Volume, 'f', -1, 64),
					string(session.Unit),
				}
				if err := cw.Write(record); err != nil {
					return rows, fmt.Errorf("writing csv row: %w", err)
				}
				rows++
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("flushing csv: %w", err)
	}
	return rows, nil
}
