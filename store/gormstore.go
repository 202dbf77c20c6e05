package store

import (
	"sort"
	"strconv"

	"gorm.io/gorm"

	"github.com/steellight541/cinema-app/model"
)

// reservationEntry flattens the user -> screening-ids index into rows.
// Position preserves booking order within a user's list.
type reservationEntry struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"index"`
	Position    int
	ScreeningID int
}

func (reservationEntry) TableName() string { return "reservation_entries" }

// GormStore keeps the same full-snapshot contract as FileStore on top of
// Postgres: every save replaces the whole collection in one transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&model.Screening{}, &reservationEntry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) LoadScreenings() ([]model.Screening, error) {
	screenings := []model.Screening{}
	if err := g.db.Order("id").Find(&screenings).Error; err != nil {
		return nil, err
	}
	return screenings, nil
}

func (g *GormStore) SaveScreenings(screenings []model.Screening) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.Screening{}).Error; err != nil {
			return err
		}
		if len(screenings) == 0 {
			return nil
		}
		return tx.Create(&screenings).Error
	})
}

func (g *GormStore) LoadReservations() (map[string][]int, error) {
	entries := []reservationEntry{}
	if err := g.db.Order("user_id, position").Find(&entries).Error; err != nil {
		return nil, err
	}
	reservations := map[string][]int{}
	for _, e := range entries {
		reservations[e.UserID] = append(reservations[e.UserID], e.ScreeningID)
	}
	return reservations, nil
}

func (g *GormStore) SaveReservations(reservations map[string][]int) error {
	users := make([]string, 0, len(reservations))
	for user := range reservations {
		users = append(users, user)
	}
	// numeric user ids first, stable replay order for the insert
	sort.Slice(users, func(i, j int) bool {
		a, errA := strconv.Atoi(users[i])
		b, errB := strconv.Atoi(users[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return users[i] < users[j]
	})

	entries := []reservationEntry{}
	for _, user := range users {
		for pos, screeningID := range reservations[user] {
			entries = append(entries, reservationEntry{
				UserID:      user,
				Position:    pos,
				ScreeningID: screeningID,
			})
		}
	}
	return g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&reservationEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}
