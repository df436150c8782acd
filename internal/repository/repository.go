package repository

import (
	"gasops/internal/models"

	"gorm.io/gorm"
)

// Repository is the uniform store for one operational record type.
// Records are append-only at this level; the few types that support
// updates (pembayaran, karyawan) get those in their handlers.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// Create inserts the record and fills in its generated ID and CreatedAt.
// Constraint violations propagate; a record is either fully created or
// not created at all.
func (r *Repository[T]) Create(rec *T) error {
	return r.db.Create(rec).Error
}

// List returns all rows in insertion order, optionally restricted by
// exact-match filters. Nil filter values are skipped.
func (r *Repository[T]) List(filters map[string]any) ([]T, error) {
	var out []T
	q := r.db.Model(new(T))
	for col, val := range filters {
		if val == nil {
			continue
		}
		q = q.Where(map[string]any{col: val})
	}
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads one row or gorm.ErrRecordNotFound.
func (r *Repository[T]) GetByID(id uint) (*T, error) {
	var rec T
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateKirim stamps the site on a shipment record before insert. The
// site comes from the route, not from the form.
func CreateKirim(db *gorm.DB, rec *models.LaporanKirim, lokasi string) error {
	rec.Lokasi = lokasi
	return db.Create(rec).Error
}

// CreateBongkar is CreateKirim for unload records.
func CreateBongkar(db *gorm.DB, rec *models.LaporanBongkar, lokasi string) error {
	rec.Lokasi = lokasi
	return db.Create(rec).Error
}
