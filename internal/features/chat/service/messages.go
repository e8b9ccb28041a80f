package service

// Canned bilingual replies for the routing branches that do not consult
// a collaborator. Thai first, English after the divider.

const trackingPromptReply = `📦 กรุณาระบุเลขพัสดุที่ต้องการติดตามค่ะ

ตัวอย่าง:
• TH1234567890
• ABC12345678

หรือส่งข้อความ: "ติดตาม TH1234567890"

---

📦 Please provide your tracking number

Example:
• TH1234567890
• ABC12345678

Or send: "track TH1234567890"`

const invalidFormatReplyTemplate = `❌ รูปแบบเลขพัสดุไม่ถูกต้อง: %s

กรุณาตรวจสอบและส่งใหม่อีกครั้งค่ะ

---

❌ Invalid tracking number format: %s

Please check and try again.`

const escalationReply = `สวัสดีค่ะ 👋

คำถามของคุณต้องให้ทีมงานช่วยตอบโดยตรง
เราได้รับข้อความแล้ว และจะติดต่อกลับภายใน 1-2 ชั่วโมงทำการค่ะ

📞 ช่องทางติดต่อด่วน:
• โทร: 02-0966494 (จ-ศ 8:00-18:00)
• LINE OA: @mysave
• Email: support@mysave.cc

ขอบคุณที่ใช้บริการ MYSAVE ค่ะ 💚

---

Hello! 👋

Your question requires our team to answer directly.
We've received your message and will contact you within 1-2 business hours.

📞 For urgent matters:
• Call: 02-0966494 (Mon-Fri 8:00-18:00)
• LINE OA: @mysave
• Email: support@mysave.cc

Thank you for using MYSAVE 💚`

const errorReply = `ขอโทษค่ะ เกิดข้อผิดพลาดชั่วคราว กรุณาลองใหม่อีกครั้งหรือติดต่อทีมงานของเราค่ะ

Sorry, an error occurred. Please try again or contact our support team.`

const welcomeMessage = `สวัสดีค่ะ! ยินดีต้อนรับสู่ MYSAVE Customer Service Bot 📦

ฉันสามารถช่วยคุณได้:
📦 ราคาและบริการจัดส่ง
⏰ ระยะเวลาการจัดส่ง
📍 ติดตามพัสดุ (ส่งเลขพัสดุมาได้เลย)
💳 สมัครบัญชี COD
✅ ยืนยันตัวตน
📄 เอกสารที่ต้องใช้

ถามคำถามได้เลยค่ะ! 😊

---

Hello! Welcome to MYSAVE Customer Service Bot 📦

I can help you with:
📦 Shipping rates & services
⏰ Delivery times
📍 Package tracking (just send your tracking number)
💳 COD account registration
✅ Identity verification
📄 Required documents

Feel free to ask me anything! 😊`

const contactCardMessage = `📞 ช่องทางติดต่อทีมงาน MYSAVE:

• โทร: 02-0966494 (จ-ศ 8:00-18:00)
• LINE OA: @mysave
• Email: support@mysave.cc
• Facebook: facebook.com/mysave

เราพร้อมให้บริการคุณค่ะ! 😊

---

📞 Contact MYSAVE Support:

• Call: 02-0966494 (Mon-Fri 8:00-18:00)
• LINE OA: @mysave
• Email: support@mysave.cc
• Facebook: facebook.com/mysave

We're here to help! 😊`
