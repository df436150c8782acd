package models

import "time"

const (
	StatusPaid      = "Paid"
	StatusBelumPaid = "Belum Paid"
)

// PembayaranAgen is the agent payment ledger. Unlike the movement logs
// it supports partial updates: field staff may only attach proof of
// payment (which flips the status to Paid), admins may edit anything.
type PembayaranAgen struct {
	ID                uint       `gorm:"primaryKey"`
	NamaAgen          string     `gorm:"size:100;not null"`
	HargaPertabung    float64    `gorm:"not null"`
	JenisTabung       string     `gorm:"size:20;not null"`
	NamaDriver        string     `gorm:"size:100;not null"`
	TanggalPengiriman *time.Time `gorm:"type:date"`
	JumlahTurun       int        `gorm:"not null"`
	Bukti             string     `gorm:"size:200"`
	Status            string     `gorm:"size:20;default:Belum Paid"`
	CreatedAt         time.Time
}
