package models

type Karyawan struct {
	ID         uint   `gorm:"primaryKey"`
	NIK        string `gorm:"column:nik;uniqueIndex;size:50;not null"`
	Nama       string `gorm:"size:100;not null"`
	Jabatan    string `gorm:"size:100;not null"`
	Kontak     string `gorm:"size:50"`
	Keterangan string `gorm:"type:text"`
}

func (Karyawan) TableName() string { return "karyawan" }
