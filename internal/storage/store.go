package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	scalesFile   = "scales.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Variant   string    `json:"variant"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Step      float64   `json:"step"`
	Frames    int       `json:"frames"`
	Bars      []string  `json:"bars"`
	Heights   []float64 `json:"heights"`
}

// Frame is the state of every bar after one tick.
type Frame struct {
	Frame  int       `json:"frame"`
	Time   float64   `json:"time"`
	Scales []float64 `json:"scales"`
}

type Recording struct {
	Meta   RunMetadata `json:"meta"`
	Frames []Frame     `json:"frames"`
}

// Save writes the recording under a new run directory and returns its ID.
func (s *Store) Save(rec *Recording) (string, error) {
	meta := rec.Meta
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	meta.ID = fmt.Sprintf("%s_%d_%d", meta.Variant, meta.Seed, meta.Timestamp.UnixNano())
	meta.Frames = len(rec.Frames)
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, scalesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeScales(csvFile, meta.Bars, rec.Frames); err != nil {
		return "", err
	}
	rec.Meta = meta
	return meta.ID, nil
}

func writeScales(out io.Writer, bars []string, frames []Frame) error {
	w := csv.NewWriter(out)
	header := append([]string{"frame", "time"}, bars...)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, f := range frames {
		row := []string{strconv.Itoa(f.Frame), strconv.FormatFloat(f.Time, 'f', 6, 64)}
		for _, v := range f.Scales {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadScales reads the per-frame scales of a run. Rows that fail to parse
// are skipped.
func (s *Store) LoadScales(runID string) ([]Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, scalesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Frame{}, nil
	}

	frames := make([]Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		n, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		t, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		f := Frame{Frame: n, Time: t, Scales: make([]float64, 0, len(record)-2)}
		for _, field := range record[2:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			f.Scales = append(f.Scales, v)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Column extracts one bar's scale across frames.
func Column(frames []Frame, bar int) []float64 {
	out := make([]float64, 0, len(frames))
	for _, f := range frames {
		if bar >= 0 && bar < len(f.Scales) {
			out = append(out, f.Scales[bar])
		}
	}
	return out
}
