package models

import "time"

type SebelumLoading struct {
	ID              uint       `gorm:"primaryKey"`
	PenanggungJawab string     `gorm:"size:100;not null"`
	Tanggal         *time.Time `gorm:"type:date"`
	NamaDriver      string     `gorm:"size:100;not null"`
	JamMulai        string     `gorm:"size:5"`
	NettoSPA        int        `gorm:"column:netto_spa;not null"`
	RotogenKanan    int
	RotogenKiri     int
	VideoKiri       string `gorm:"size:255"`
	VideoKanan      string `gorm:"size:255"`
	CreatedAt       time.Time
}

type SesudahLoading struct {
	ID              uint       `gorm:"primaryKey"`
	PenanggungJawab string     `gorm:"size:100;not null"`
	Tanggal         *time.Time `gorm:"type:date"`
	JamSelesai      string     `gorm:"size:5"`
	VideoKiri       string     `gorm:"size:255"`
	VideoKanan      string     `gorm:"size:255"`
	CreatedAt       time.Time
}
