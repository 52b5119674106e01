package services

import (
	"fmt"

	"github.com/damantine/klinik-wa-bot/internal/models"
)

// LayananList maps menu digits to the consultation service categories.
var LayananList = map[string]string{
	"1": "Tata Kelola & Manajemen Risiko",
	"2": "Pengadaan Barang/Jasa",
	"3": "Pengelolaan Keuangan & BMN",
	"4": "Kinerja & Kepegawaian",
}

const menuListText = "1. Tata Kelola & Manajemen Risiko\n" +
	"2. Pengadaan Barang/Jasa\n" +
	"3. Pengelolaan Keuangan & BMN\n" +
	"4. Kinerja & Kepegawaian\n" +
	"5. Chat dengan Tim Inspektorat\n\n" +
	"Balas dengan *ANGKA* pilihan Anda (contoh: 1)."

// WelcomeMessage returns the main menu shown on every greeting or reset.
func WelcomeMessage() string {
	return "*Selamat datang di Layanan Klinik Konsultasi*\n" +
		"*Inspektorat Lembaga Kebijakan Pengadaan Barang/Jasa Pemerintah.*\n\n" +
		"Silakan pilih layanan konsultasi sesuai kebutuhan Anda:\n\n" +
		menuListText
}

// MethodPromptMessage asks the user to pick Offline or Online for the chosen service.
func MethodPromptMessage(layanan string) string {
	return fmt.Sprintf("Anda memilih:\n*%s*\n\n", layanan) +
		"Terima kasih atas pilihan Anda terhadap jenis layanan konsultasi.\n" +
		"Mohon konfirmasi metode pelaksanaan konsultasi:\n\n" +
		"1. Offline (Tatap Muka)\n2. Online (Virtual)\n\n" +
		"Balas dengan *ANGKA* pilihan Anda (contoh: 1)."
}

// FormInstructionsMessage returns the registration form template for the chosen method.
func FormInstructionsMessage(metode string) string {
	title := "*Form Pendaftaran Konsultasi Online*"
	if metode == models.MetodeOffline {
		title = "*Form Pendaftaran Konsultasi Offline*"
	}

	return title + "\n\n" +
		"Dimohon kesediaannya untuk mengisi data diri berikut:\n\n" +
		"*Format pengisian:*\n" +
		"Nama: [Nama lengkap Anda]\n" +
		"Unit: [Unit organisasi]\n" +
		"Jabatan: [Jabatan Anda]\n" +
		"Referensi Hari/Jam: [Hari/Tanggal dan Jam]\n\n" +
		"*Contoh:*\n" +
		"Nama: Budi Santoso\n" +
		"Unit: Inspektorat\n" +
		"Jabatan: Auditor Ahli Pertama\n" +
		"Referensi Hari/Jam: Senin, 4 Nov 2025 - 10:00 WIB"
}

// FormSuccessMessage confirms a completed registration, echoing all captured fields.
func FormSuccessMessage(sub *models.FormSubmission) string {
	return "✅ *Pendaftaran Berhasil!*\n\n" +
		fmt.Sprintf("Nama: %s\n", sub.Nama) +
		fmt.Sprintf("Unit: %s\n", sub.Unit) +
		fmt.Sprintf("Jabatan: %s\n", sub.Jabatan) +
		fmt.Sprintf("Referensi Hari/Jam: %s\n", sub.Waktu) +
		fmt.Sprintf("Layanan: %s\n", sub.Layanan) +
		fmt.Sprintf("Metode: %s\n\n", sub.Metode) +
		"Terima kasih telah menghubungi Klinik Konsultasi Inspektorat.\n\n" +
		"Ketik *MENU* untuk layanan lainnya."
}

// FormFailureMessage asks the user to resend the form after a parse or save failure.
func FormFailureMessage() string {
	return "❌ *Pendaftaran Gagal!*\n\n" +
		"Terjadi kesalahan saat menyimpan data Anda. Silakan kirim ulang format isian Anda."
}

// ChatWelcomeMessage opens the direct chat channel with the team.
func ChatWelcomeMessage() string {
	return "*Chat dengan Tim Inspektorat*\n\n" +
		"Silakan ketik pesan Anda, dan tim kami akan merespons secepat mungkin.\n\n" +
		"Ketik *MENU* untuk kembali ke menu utama."
}

// UnknownCommandMessage is the generic fallback reply.
func UnknownCommandMessage() string {
	return "Maaf, saya tidak memahami perintah tersebut.\n" +
		"Ketik *MENU* untuk melihat pilihan layanan."
}
