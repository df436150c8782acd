package models

import "time"

type ProduksiMulai struct {
	ID             uint       `gorm:"primaryKey"`
	KepalaProduksi string     `gorm:"size:100;not null"`
	Tanggal        *time.Time `gorm:"type:date"`
	NamaDriver     string     `gorm:"size:100;not null"`
	JamMulai       string     `gorm:"size:5"`
	Shift          string     `gorm:"size:50"`
	CreatedAt      time.Time
}

type ProduksiSelesai struct {
	ID             uint       `gorm:"primaryKey"`
	KepalaProduksi string     `gorm:"size:100;not null"`
	Tanggal        *time.Time `gorm:"type:date"`
	JamSelesai     string     `gorm:"size:5"`
	TabungKosong   int        `gorm:"not null"`
	Tabung12       int        `gorm:"column:tabung_12;not null"`
	Tabung50       int        `gorm:"column:tabung_50;not null"`
	Keterangan     string     `gorm:"type:text"`
	CreatedAt      time.Time
}
