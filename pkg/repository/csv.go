package repository

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// Column names of the launch table
const (
	ColumnLaunchSite             = "Launch Site"
	ColumnPayloadMass            = "Payload Mass (kg)"
	ColumnClass                  = "class"
	ColumnBoosterVersionCategory = "Booster Version Category"
)

var requiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterVersionCategory,
}

// columnIndex maps each required column to its position in a row
type columnIndex map[string]int

func newColumnIndex(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		// the first column may carry a UTF-8 BOM
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}

	idx := make(columnIndex, len(requiredColumns))
	var missing []string
	for _, col := range requiredColumns {
		pos, ok := positions[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		idx[col] = pos
	}

	if len(missing) > 0 {
		return nil, goerr.New("required columns are missing",
			goerr.V("missing", missing),
			goerr.V("header", header),
			goerr.T(model.ErrTagInvalidSchema))
	}

	return idx, nil
}

func (idx columnIndex) record(row []string) (model.LaunchRecord, error) {
	field := func(col string) string {
		pos := idx[col]
		if pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}

	payload, err := strconv.ParseFloat(field(ColumnPayloadMass), 64)
	if err != nil {
		return model.LaunchRecord{}, goerr.Wrap(err, "invalid payload mass",
			goerr.V("value", field(ColumnPayloadMass)))
	}

	class, err := strconv.Atoi(field(ColumnClass))
	if err != nil {
		return model.LaunchRecord{}, goerr.Wrap(err, "invalid class",
			goerr.V("value", field(ColumnClass)))
	}

	rec := model.LaunchRecord{
		Site:                   types.SiteID(field(ColumnLaunchSite)),
		PayloadMassKg:          payload,
		Outcome:                types.OutcomeClass(class),
		BoosterVersionCategory: field(ColumnBoosterVersionCategory),
	}
	if err := rec.Validate(); err != nil {
		return model.LaunchRecord{}, err
	}

	return rec, nil
}

// LoadCSV reads the launch table from r. Any missing column or malformed
// row fails the whole load.
func LoadCSV(r io.Reader) (*model.Dataset, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, goerr.New("dataset has no header row", goerr.T(model.ErrTagInvalidSchema))
		}
		return nil, goerr.Wrap(err, "failed to read CSV header", goerr.T(model.ErrTagInvalidSchema))
	}

	idx, err := newColumnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []model.LaunchRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read CSV row",
				goerr.T(model.ErrTagInvalidRow))
		}
		line, _ := reader.FieldPos(0)

		rec, err := idx.record(row)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid launch record",
				goerr.V("line", line),
				goerr.T(model.ErrTagInvalidRow))
		}
		records = append(records, rec)
	}

	ds, err := model.NewDataset(records)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build dataset")
	}

	return ds, nil
}

// LoadFile reads the launch table from a CSV file
func LoadFile(path string) (*model.Dataset, error) {
	if path == "" {
		return nil, goerr.New("dataset file path is required")
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "dataset file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to open dataset file", goerr.V("path", path))
	}
	defer f.Close()

	ds, err := LoadCSV(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset", goerr.V("path", path))
	}

	return ds, nil
}
