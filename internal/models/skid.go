package models

import "time"

// Skid movement logs. Depot and Laut are the Merak side, Lumbung is the
// Semarang warehouse. Jam* fields hold a validated "HH:MM" string.

type SkidMasukDepot struct {
	ID         uint       `gorm:"primaryKey"`
	NamaDriver string     `gorm:"size:100;not null"`
	PlatMobil  string     `gorm:"size:50"`
	Tanggal    *time.Time `gorm:"type:date"`
	Rit        int        `gorm:"not null"`
	JamMasuk   string     `gorm:"size:5"`
	CreatedAt  time.Time
}

type SkidKeluarDepot struct {
	ID         uint       `gorm:"primaryKey"`
	NamaDriver string     `gorm:"size:100;not null"`
	PlatMobil  string     `gorm:"size:50"`
	Tanggal    *time.Time `gorm:"type:date"`
	JamKeluar  string     `gorm:"size:5"`
	JumlahSPA  int        `gorm:"column:jumlah_spa;not null"`
	FotoSPA    string     `gorm:"column:foto_spa;size:255"`
	CreatedAt  time.Time
}

type SkidMasukLaut struct {
	ID             uint       `gorm:"primaryKey"`
	NamaDriver     string     `gorm:"size:100;not null"`
	PlatMobil      string     `gorm:"size:50"`
	Tanggal        *time.Time `gorm:"type:date"`
	JamMasuk       string     `gorm:"size:5"`
	PetugasLoading string     `gorm:"size:100;not null"`
	CreatedAt      time.Time
}

type SkidKeluarLaut struct {
	ID         uint       `gorm:"primaryKey"`
	NamaDriver string     `gorm:"size:100;not null"`
	PlatMobil  string     `gorm:"size:50"`
	Tanggal    *time.Time `gorm:"type:date"`
	JamKeluar  string     `gorm:"size:5"`
	Catatan    string     `gorm:"type:text"`
	Media      string     `gorm:"size:255"`
	CreatedAt  time.Time
}

type SkidMasukLumbung struct {
	ID             uint       `gorm:"primaryKey"`
	NamaDriver     string     `gorm:"size:100;not null"`
	PlatMobil      string     `gorm:"size:50"`
	Tanggal        *time.Time `gorm:"type:date"`
	JamMasuk       string     `gorm:"size:5"`
	PetugasLoading string     `gorm:"size:100"`
	CreatedAt      time.Time
}

type SkidKeluarLumbung struct {
	ID         uint       `gorm:"primaryKey"`
	NamaDriver string     `gorm:"size:100;not null"`
	PlatMobil  string     `gorm:"size:50"`
	Tanggal    *time.Time `gorm:"type:date"`
	JamKeluar  string     `gorm:"size:5"`
	Catatan    string     `gorm:"type:text"`
	Media      string     `gorm:"size:255"`
	CreatedAt  time.Time
}
