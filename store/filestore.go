package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/steellight541/cinema-app/model"
)

const (
	screeningsFile   = "screenings.json"
	reservationsFile = "reservations.json"
)

// FileStore keeps each collection in a JSON file under dir. A missing or
// empty file loads as an empty collection. Writes go through a temp file
// and a rename so a failed write leaves the previous snapshot intact.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) LoadScreenings() ([]model.Screening, error) {
	screenings := []model.Screening{}
	if err := f.read(screeningsFile, &screenings); err != nil {
		return nil, err
	}
	return screenings, nil
}

func (f *FileStore) SaveScreenings(screenings []model.Screening) error {
	return f.write(screeningsFile, screenings)
}

func (f *FileStore) LoadReservations() (map[string][]int, error) {
	reservations := map[string][]int{}
	if err := f.read(reservationsFile, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (f *FileStore) SaveReservations(reservations map[string][]int) error {
	return f.write(reservationsFile, reservations)
}

func (f *FileStore) read(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (f *FileStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(f.dir, name))
}
