package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/bowlingnoi/line-chatbot/internal/features/tracking/domain"
)

// renderedHistoryLimit caps history entries in the chat message; the
// record itself keeps more.
const renderedHistoryLimit = 3

// contactFooter closes every tracking reply.
const contactFooter = "📞 สอบถามเพิ่มเติม: โทร 02-0966494 | LINE: @mysave"

// eventTimeLayout is the upstream timestamp format.
const eventTimeLayout = "2006-01-02 15:04"

var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var thaiMonthsShort = [...]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// formatThaiTime renders a timestamp in the Thai civil convention:
// Buddhist-era year, full month name, 24-hour clock.
func formatThaiTime(raw string) string {
	t, err := time.Parse(eventTimeLayout, raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%d %s %d เวลา %02d:%02d น.",
		t.Day(), thaiMonths[t.Month()-1], t.Year()+543, t.Hour(), t.Minute())
}

// formatEnglishTime renders a timestamp as a Gregorian calendar line.
func formatEnglishTime(raw string) string {
	t, err := time.Parse(eventTimeLayout, raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%d %s %d, %02d:%02d",
		t.Day(), t.Month().String(), t.Year(), t.Hour(), t.Minute())
}

// formatShortTime renders a compact date for history lines.
func formatShortTime(raw string) string {
	t, err := time.Parse(eventTimeLayout, raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%d %s %02d:%02d",
		t.Day(), thaiMonthsShort[t.Month()-1], t.Hour(), t.Minute())
}

// Render produces the bilingual multi-line chat message for a record.
// It never fails: found=false records render the not-found guidance with
// the embedded error reason.
func Render(record domain.TrackingRecord) string {
	if !record.Found {
		return renderNotFound(record)
	}

	label := domain.LookupStatus(record.Status)

	var b strings.Builder
	fmt.Fprintf(&b, "%s สถานะพัสดุ / Package Status\n\n", label.Icon)
	fmt.Fprintf(&b, "🔢 เลขพัสดุ: %s\n", record.TrackingNumber)
	fmt.Fprintf(&b, "📦 ขนส่งโดย: %s\n\n", record.Courier)

	b.WriteString("📍 สถานะปัจจุบัน / Current Status:\n")
	fmt.Fprintf(&b, "%s\n%s\n", record.StatusLocalized, record.StatusDisplay)
	if record.Location != "" {
		fmt.Fprintf(&b, "📌 %s\n", record.Location)
	}

	fmt.Fprintf(&b, "\n📅 อัปเดตล่าสุด: %s\n", formatThaiTime(record.Timestamp))
	fmt.Fprintf(&b, "📅 Last update: %s\n", formatEnglishTime(record.Timestamp))

	if record.Remark != "" {
		fmt.Fprintf(&b, "\n📝 หมายเหตุ: %s\n", record.Remark)
	}
	if record.Status == domain.StatusDelivered && record.Signature != "" {
		fmt.Fprintf(&b, "\n✍️ เซ็นรับโดย / Signed by: %s\n", record.Signature)
	}

	if len(record.History) > 0 {
		b.WriteString("\n🕓 ประวัติล่าสุด / Recent History:\n")
		for i, entry := range record.History {
			if i == renderedHistoryLimit {
				break
			}
			fmt.Fprintf(&b, "%d) %s — %s\n", i+1, formatShortTime(entry.Timestamp), entry.Status)
			if entry.Location != "" {
				fmt.Fprintf(&b, "   %s\n", entry.Location)
			}
		}
	}

	b.WriteString("\n" + contactFooter)
	return b.String()
}

// renderNotFound builds the bilingual not-found reply with retry guidance.
func renderNotFound(record domain.TrackingRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ขออภัยค่ะ ไม่พบข้อมูลพัสดุหมายเลข %s\n", record.TrackingNumber)
	fmt.Fprintf(&b, "(%s)\n\n", record.Error)
	b.WriteString("กรุณาตรวจสอบ:\n")
	b.WriteString("• เลขพัสดุถูกต้องหรือไม่\n")
	b.WriteString("• พัสดุอาจยังไม่ถูกสแกนเข้าระบบ (รอ 2-4 ชม.)\n\n")
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "Sorry, we could not find tracking number %s\n", record.TrackingNumber)
	fmt.Fprintf(&b, "(%s)\n\n", record.Error)
	b.WriteString("Please check that the number is correct; new shipments can take 2-4 hours to appear.\n\n")
	b.WriteString(contactFooter)
	return b.String()
}
