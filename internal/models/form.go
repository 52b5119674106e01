package models

// FormSubmission holds one completed consultation registration, forwarded to
// the spreadsheet webhook and then discarded. Field names follow the sheet's
// column layout.
type FormSubmission struct {
	Timestamp string `json:"timestamp"`
	Nomor     string `json:"nomor"`
	Nama      string `json:"nama"`
	Unit      string `json:"unit"`
	Jabatan   string `json:"jabatan"`
	Waktu     string `json:"waktu"`
	Layanan   string `json:"layanan"`
	Metode    string `json:"metode"`
}
