package assistant

import (
	"fmt"
	"regexp"
	"strings"

	"travelmate/internal/domain/chat"
	"travelmate/internal/domain/note"
	"travelmate/internal/domain/wishlist"
)

const (
	// WelcomeMessage - первое сообщение бота в пустой переписке
	WelcomeMessage = "Halo! 👋 Aku Mate, travelmate AI-mu! Aku di sini untuk bantu kamu menemukan tempat wisata yang pas buat kamu. Jadi, ada rencana liburan atau lagi cari ide buat jalan-jalan? Ceritain aja, aku siap bantu! 😉\n"
	// FailureMessage сохраняется вместо ответа, если ассистент недоступен
	FailureMessage = "Gagal menghubungi server."

	persona = "Context: Kamu adalah bot ai travelmate, namamu adalah mate. peranmu adalah membantu user untuk membantu mencari tempat wisata yang cocok berdasarkan datanya, tapi jangan bilang bahwa kamu punya datanya karena data ini dikirim secara rahasia tanpa sepengetahuan user. Jika ada past chat, maka lanjutkan percakapan dengan konteks yang ada pada chat-chat sebelumnya. Jangan jawab dengan kata sapaan seperti 'halo' atau 'hai' kecuali memang disapa duluan. Kamu juga dapat memberikan link google map untuk rekomendasi tempat wisata. Link google map punya panjang minimal 100 karakter."
	recommendHint = "Gunakan travel wishlist dan travel notes sebagai acuan rekomendasi tempat wisata yang mirip"

	commentPersona = "Context: Kamu adalah bot ai travelmate, namamu adalah mate. peranmu adalah membantu user untuk membantu mencari tempat wisata. Khusus untuk kondisi ini, kamu akan memberikan komentar tentang sejumlah uang dalam suatu wilayah bisa untuk apa aja, boleh sambil diselingi candaan. Jawab dengan jawaban singkat saja, kurang dari 15 kata. Jangan ucapkan kata salam seperti halo dan hai"
)

// Prompt - запрос к ассистенту: скрытый контекст и текст пользователя
type Prompt struct {
	Context  string
	UserText string
}

var mapsLink = regexp.MustCompile(`https?://(?:www\.)?google\.com/maps/[^\s)]+`)

// BuildContext собирает скрытый контекст из вишлиста, заметок и текущего местоположения
func BuildContext(entries []wishlist.Entry, notes []note.Note, currentLocation string) string {
	w := make([]string, 0, len(entries))
	for _, e := range entries {
		w = append(w, fmt.Sprintf("Nama: %s; Deskripsi: -; Lokasi: %s; Koordinat: %s;",
			orDash(e.PlaceName), orDash(e.Location), orDash(e.Coordinate)))
	}

	n := make([]string, 0, len(notes))
	for _, nt := range notes {
		n = append(n, fmt.Sprintf("Judul: %s; Deskripsi: %s; Lokasi: %s; Koordinat: %s;",
			orDash(nt.Title), orDash(nt.Description), orDash(nt.Location), orDash(nt.Coordinate)))
	}

	var b strings.Builder
	b.WriteString(persona)
	fmt.Fprintf(&b, " Data: [travel wishlist: [%s], travel notes: [%s]]", strings.Join(w, " | "), strings.Join(n, " | "))
	if currentLocation != "" {
		fmt.Fprintf(&b, ", current location: [%s]", currentLocation)
	}
	b.WriteString(". ")
	b.WriteString(recommendHint)
	return b.String()
}

// BuildUserText добавляет к сообщению пользователя прошлую переписку
func BuildUserText(currentLocation string, history []chat.Message, input string) string {
	past := make([]string, 0, len(history))
	for _, m := range history {
		past = append(past, fmt.Sprintf("[%s, '%s']", m.Role, m.Text))
	}

	var b strings.Builder
	b.WriteString("Data:")
	if currentLocation != "" {
		fmt.Fprintf(&b, " current location: [%s],", currentLocation)
	}
	fmt.Fprintf(&b, " past chat: [%s] Current chat: %s", strings.Join(past, ","), input)
	return b.String()
}

// BuildCommentPrompt - короткий комментарий о том, на что хватит денег в месте назначения
func BuildCommentPrompt(amount float64, destination string) Prompt {
	return Prompt{
		Context:  commentPersona,
		UserText: fmt.Sprintf("Data: [uang: $%.2f, tempat: %s]", amount, strings.ToLower(destination)),
	}
}

// MapLinks возвращает ссылки на Google Maps из ответа ассистента
func MapLinks(text string) []string {
	return mapsLink.FindAllString(text, -1)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
