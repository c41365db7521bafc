package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	m "github.com/mouse-blink/lintsweep/internal/model"
)

const reportExt = ".msgpack"

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) error
	LoadReports(dir m.Path) ([]m.RunReport, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore that keeps one msgpack file per
// run under the reports directory.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveReport(dir m.Path, report m.RunReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	content, err := msgpack.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	name := fmt.Sprintf("%s-%d%s", report.Operation, report.StartedAt.UnixNano(), reportExt)

	return os.WriteFile(filepath.Join(string(dir), name), content, 0o600)
}

func (rs *reportStore) LoadReports(dir m.Path) ([]m.RunReport, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return []m.RunReport{}, nil
		}

		return nil, err
	}

	var reports []m.RunReport

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(string(dir), entry.Name()))
		if err != nil {
			return nil, err
		}

		var report m.RunReport

		if err := msgpack.Unmarshal(content, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", entry.Name(), err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].StartedAt.Before(reports[j].StartedAt)
	})

	return reports, nil
}
