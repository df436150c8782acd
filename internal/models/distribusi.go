package models

import "time"

// The business runs from exactly two sites. Distribution records carry
// the site they belong to; it is stamped server-side, never taken from
// the submitted form.
const (
	LokasiMerak    = "merak"
	LokasiSemarang = "semarang"
)

type LaporanKirim struct {
	ID               uint       `gorm:"primaryKey"`
	Lokasi           string     `gorm:"size:50;not null"`
	Tanggal          *time.Time `gorm:"type:date"`
	NamaDriver       string     `gorm:"size:100;not null"`
	PlatMobil        string     `gorm:"size:50;not null"`
	JamBerangkat     string     `gorm:"size:5"`
	Kapasitas        int        `gorm:"not null"`
	JenisTabung      string     `gorm:"size:50;not null"`
	JumlahDibawa     int        `gorm:"not null"`
	JumlahTurun      int
	Tujuan           string `gorm:"size:100;not null"`
	Alamat           string `gorm:"type:text"`
	KondisiTabung    string `gorm:"size:100;not null"`
	Keterangan       string `gorm:"type:text"`
	VerifikasiBarang string `gorm:"size:255"`
	CreatedAt        time.Time
}

type LaporanBongkar struct {
	ID              uint       `gorm:"primaryKey"`
	Lokasi          string     `gorm:"size:50;not null"`
	Tanggal         *time.Time `gorm:"type:date"`
	NamaDriver      string     `gorm:"size:100;not null"`
	JamBongkar      string     `gorm:"size:5"`
	JenisTabung     string     `gorm:"size:50;not null"`
	JumlahTerbawa   int        `gorm:"not null"`
	JumlahTurun     int        `gorm:"not null"`
	SisaDibawa      int        `gorm:"not null"`
	JumlahKosong    int        `gorm:"not null"`
	KondisiTabung   string     `gorm:"size:100;not null"`
	NamaPangkalan   string     `gorm:"size:100;not null"`
	AlamatPangkalan string     `gorm:"type:text"`
	Catatan         string     `gorm:"type:text"`
	Media           string     `gorm:"size:255"`
	CreatedAt       time.Time
}
