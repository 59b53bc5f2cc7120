package repository

import "gorm.io/gorm"

// base provides the CRUD shape shared by every entity repository. Per-entity
// repositories embed it and add relation-aware finders on top.
type base[M any] struct {
	db *gorm.DB
}

func (r base[M]) Create(m *M) error {
	return r.db.Create(m).Error
}

func (r base[M]) Save(m *M) error {
	return r.db.Save(m).Error
}

func (r base[M]) Delete(id uint) error {
	var m M
	return r.db.Delete(&m, id).Error
}

// Get loads a row by primary key without expanding relations.
func (r base[M]) Get(id uint) (*M, error) {
	var m M
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Exists reports whether a row with the given primary key is present.
func (r base[M]) Exists(id uint) (bool, error) {
	var m M
	var count int64
	if err := r.db.Model(&m).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
