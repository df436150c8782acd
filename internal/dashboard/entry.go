package dashboard

import (
	"time"

	"gasops/internal/models"
)

// Entry is the uniform display row the two site dashboards render. It is
// derived per request and never persisted. Every record kind has its own
// mapping function below; a field a kind does not have keeps the
// placeholder newEntry put there, so a typo in a field name is a compile
// error rather than a silently empty column.
type Entry struct {
	ID      uint   `json:"id"`
	Jenis   string `json:"jenis"`
	Lokasi  string `json:"lokasi"`

	Tanggal   *time.Time `json:"tanggal"`
	CreatedAt time.Time  `json:"created_at"`

	PenanggungJawab string `json:"penanggung_jawab"`
	NamaDriver      string `json:"nama_driver"`
	PlatMobil       string `json:"plat_mobil"`
	PetugasLoading  string `json:"petugas_loading"`
	KepalaProduksi  string `json:"kepala_produksi"`

	Rit          int    `json:"rit"`
	JamMasuk     string `json:"jam_masuk"`
	JamKeluar    string `json:"jam_keluar"`
	JamMulai     string `json:"jam_mulai"`
	JamSelesai   string `json:"jam_selesai"`
	JamBerangkat string `json:"jam_berangkat"`
	JamBongkar   string `json:"jam_bongkar"`

	JumlahSPA     int `json:"jumlah_spa"`
	NettoSPA      int `json:"netto_spa"`
	RotogenKanan  int `json:"rotogen_kanan"`
	RotogenKiri   int `json:"rotogen_kiri"`
	TabungKosong  int `json:"tabung_kosong"`
	Tabung12      int `json:"tabung_12"`
	Tabung50      int `json:"tabung_50"`
	Kapasitas     int `json:"kapasitas"`
	JumlahDibawa  int `json:"jumlah_dibawa"`
	JumlahTurun   int `json:"jumlah_turun"`
	JumlahTerbawa int `json:"jumlah_terbawa"`
	SisaDibawa    int `json:"sisa_dibawa"`
	JumlahKosong  int `json:"jumlah_kosong"`

	JenisTabung     string `json:"jenis_tabung"`
	Tujuan          string `json:"tujuan"`
	Alamat          string `json:"alamat"`
	KondisiTabung   string `json:"kondisi_tabung"`
	NamaPangkalan   string `json:"nama_pangkalan"`
	AlamatPangkalan string `json:"alamat_pangkalan"`
	Keterangan      string `json:"keterangan"`

	FotoSPA          string `json:"foto_spa"`
	VideoKiri        string `json:"video_kiri"`
	VideoKanan       string `json:"video_kanan"`
	Media            string `json:"media"`
	VerifikasiBarang string `json:"verifikasi_barang"`
}

// sortTime is the display timestamp: the explicit record date when set,
// the creation timestamp otherwise. The zero time sorts last.
func (e Entry) sortTime() time.Time {
	if e.Tanggal != nil {
		return *e.Tanggal
	}
	return e.CreatedAt
}

func newEntry(jenis, lokasi string) Entry {
	return Entry{
		Jenis:           jenis,
		Lokasi:          lokasi,
		PenanggungJawab: "-",
		NamaDriver:      "-",
		PlatMobil:       "-",
		PetugasLoading:  "-",
		KepalaProduksi:  "-",
		JenisTabung:     "-",
		Tujuan:          "-",
		Alamat:          "-",
		KondisiTabung:   "-",
		NamaPangkalan:   "-",
		AlamatPangkalan: "-",
		Keterangan:      "-",
	}
}

func fromSkidMasukDepot(r models.SkidMasukDepot) Entry {
	e := newEntry("Skid Masuk Depot", models.LokasiMerak)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.NamaDriver = r.NamaDriver
	if r.PlatMobil != "" {
		e.PlatMobil = r.PlatMobil
	}
	e.Rit = r.Rit
	e.JamMasuk = r.JamMasuk
	return e
}

func fromSkidKeluarDepot(r models.SkidKeluarDepot) Entry {
	e := newEntry("Skid Keluar Depot", models.LokasiMerak)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.NamaDriver = r.NamaDriver
	if r.PlatMobil != "" {
		e.PlatMobil = r.PlatMobil
	}
	e.JamKeluar = r.JamKeluar
	e.JumlahSPA = r.JumlahSPA
	e.FotoSPA = r.FotoSPA
	return e
}

func fromSkidMasukLaut(r models.SkidMasukLaut) Entry {
	e := newEntry("Skid Masuk Laut", models.LokasiMerak)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.NamaDriver = r.NamaDriver
	if r.PlatMobil != "" {
		e.PlatMobil = r.PlatMobil
	}
	e.JamMasuk = r.JamMasuk
	e.PetugasLoading = r.PetugasLoading
	return e
}

func fromSkidKeluarLaut(r models.SkidKeluarLaut) Entry {
	e := newEntry("Skid Keluar Laut", models.LokasiMerak)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.NamaDriver = r.NamaDriver
	if r.PlatMobil != "" {
		e.PlatMobil = r.PlatMobil
	}
	e.JamKeluar = r.JamKeluar
	if r.Catatan != "" {
		e.Keterangan = r.Catatan
	}
	e.Media = r.Media
	return e
}

func fromSkidMasukLumbung(r models.SkidMasukLumbung) Entry {
	e := newEntry("Skid Masuk Lumbung", models.LokasiSemarang)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.NamaDriver = r.NamaDriver
	if r.PlatMobil != "" {
		e.PlatMobil = r.PlatMobil
	}
	e.JamMasuk = r.JamMasuk
	if r.PetugasLoading != "" {
		e.PetugasLoading = r.PetugasLoading
	}
	return e
}

func fromSkidKeluarLumbung(r models.SkidKeluarLumbung) Entry {
	e := newEntry("Skid Keluar Lumbung", models.LokasiSemarang)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.NamaDriver = r.NamaDriver
	if r.PlatMobil != "" {
		e.PlatMobil = r.PlatMobil
	}
	e.JamKeluar = r.JamKeluar
	if r.Catatan != "" {
		e.Keterangan = r.Catatan
	}
	e.Media = r.Media
	return e
}

func fromSebelumLoading(r models.SebelumLoading, lokasi string) Entry {
	e := newEntry("Sebelum Loading", lokasi)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.PenanggungJawab = r.PenanggungJawab
	e.NamaDriver = r.NamaDriver
	e.JamMulai = r.JamMulai
	e.NettoSPA = r.NettoSPA
	e.RotogenKanan = r.RotogenKanan
	e.RotogenKiri = r.RotogenKiri
	e.VideoKiri = r.VideoKiri
	e.VideoKanan = r.VideoKanan
	return e
}

func fromSesudahLoading(r models.SesudahLoading, lokasi string) Entry {
	e := newEntry("Sesudah Loading", lokasi)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.PenanggungJawab = r.PenanggungJawab
	e.JamSelesai = r.JamSelesai
	e.VideoKiri = r.VideoKiri
	e.VideoKanan = r.VideoKanan
	return e
}

func fromProduksiMulai(r models.ProduksiMulai, lokasi string) Entry {
	e := newEntry("Produksi Mulai", lokasi)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.KepalaProduksi = r.KepalaProduksi
	e.NamaDriver = r.NamaDriver
	e.JamMulai = r.JamMulai
	return e
}

func fromProduksiSelesai(r models.ProduksiSelesai, lokasi string) Entry {
	e := newEntry("Produksi Selesai", lokasi)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.KepalaProduksi = r.KepalaProduksi
	e.JamSelesai = r.JamSelesai
	e.TabungKosong = r.TabungKosong
	e.Tabung12 = r.Tabung12
	e.Tabung50 = r.Tabung50
	if r.Keterangan != "" {
		e.Keterangan = r.Keterangan
	}
	return e
}

func fromLaporanKirim(r models.LaporanKirim, lokasi string) Entry {
	e := newEntry("Laporan Kirim", lokasi)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.NamaDriver = r.NamaDriver
	e.PlatMobil = r.PlatMobil
	e.JamBerangkat = r.JamBerangkat
	e.Kapasitas = r.Kapasitas
	e.JenisTabung = r.JenisTabung
	e.JumlahDibawa = r.JumlahDibawa
	e.JumlahTurun = r.JumlahTurun
	e.Tujuan = r.Tujuan
	if r.Alamat != "" {
		e.Alamat = r.Alamat
	}
	e.KondisiTabung = r.KondisiTabung
	if r.Keterangan != "" {
		e.Keterangan = r.Keterangan
	}
	e.VerifikasiBarang = r.VerifikasiBarang
	return e
}

func fromLaporanBongkar(r models.LaporanBongkar, lokasi string) Entry {
	e := newEntry("Laporan Bongkar", lokasi)
	e.ID = r.ID
	e.Tanggal = r.Tanggal
	e.CreatedAt = r.CreatedAt
	e.NamaDriver = r.NamaDriver
	e.JamBongkar = r.JamBongkar
	e.JenisTabung = r.JenisTabung
	e.JumlahTerbawa = r.JumlahTerbawa
	e.JumlahTurun = r.JumlahTurun
	e.SisaDibawa = r.SisaDibawa
	e.JumlahKosong = r.JumlahKosong
	e.KondisiTabung = r.KondisiTabung
	e.NamaPangkalan = r.NamaPangkalan
	if r.AlamatPangkalan != "" {
		e.AlamatPangkalan = r.AlamatPangkalan
	}
	if r.Catatan != "" {
		e.Keterangan = r.Catatan
	}
	e.Media = r.Media
	return e
}
